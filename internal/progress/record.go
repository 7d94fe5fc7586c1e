package progress

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used for WorkoutSetRecord.WorkoutDate.
const DateLayout = "2006-01-02"

// WorkoutSetRecord is a single logged set. A workout is not an entity of its own,
// it is the group of all sets sharing the same WorkoutDate.
type WorkoutSetRecord struct {
	WorkoutDate        string   `json:"workoutDate"`
	Category           string   `json:"category"`
	ExerciseID         *string  `json:"exerciseId,omitempty"`
	ExerciseName       string   `json:"exerciseName,omitempty"`
	CustomExerciseName *string  `json:"customExerciseName,omitempty"`
	SetNumber          int      `json:"setNumber"`
	WeightKg           *float64 `json:"weightKg,omitempty"`
	Reps               int      `json:"reps"`
}

// ExerciseKey identifies the exercise a set belongs to. A custom name wins
// over the catalog name, the catalog id is the last resort.
func (r WorkoutSetRecord) ExerciseKey() string {
	if r.CustomExerciseName != nil {
		if name := strings.TrimSpace(*r.CustomExerciseName); name != "" {
			return name
		}
	}
	if r.ExerciseName != "" {
		return r.ExerciseName
	}
	if r.ExerciseID != nil {
		return *r.ExerciseID
	}
	return ""
}

// Weight returns the set weight, or 0 for bodyweight sets.
func (r WorkoutSetRecord) Weight() float64 {
	if r.WeightKg == nil {
		return 0
	}
	return *r.WeightKg
}

// parseDay parses a calendar date into a UTC midnight.
func parseDay(date string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// calendarDay drops the clock part of t, keeping its calendar date in t's location.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

func distinctDates(records []WorkoutSetRecord) []string {
	seen := make(map[string]struct{}, len(records))
	dates := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.WorkoutDate]; ok {
			continue
		}
		seen[r.WorkoutDate] = struct{}{}
		dates = append(dates, r.WorkoutDate)
	}
	return dates
}
