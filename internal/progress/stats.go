package progress

import (
	"sort"
	"time"
)

// HeavyLiftKg is the weight from which a set counts as a heavy lift.
const HeavyLiftKg = 100

// Stats are the aggregates the XP engine and the achievements are derived from.
type Stats struct {
	TotalSets       int                `json:"totalSets"`
	WorkoutDays     int                `json:"workoutDays"`
	MaxWeightKg     float64            `json:"maxWeightKg"`
	TotalVolumeKg   float64            `json:"totalVolumeKg"`
	HeavySets       int                `json:"heavySets"`
	PersonalRecords int                `json:"personalRecords"`
	CurrentStreak   int                `json:"currentStreak"`
	PersonalBests   map[string]float64 `json:"personalBests"`
}

// ComputeStats aggregates the records in a single pass, plus the per-exercise
// personal record walk and the streak.
func ComputeStats(records []WorkoutSetRecord, today time.Time, toleranceDays int) Stats {
	dates := distinctDates(records)
	stats := Stats{
		TotalSets:     len(records),
		WorkoutDays:   len(dates),
		CurrentStreak: CurrentStreak(dates, today, toleranceDays),
		PersonalBests: make(map[string]float64),
	}

	for _, r := range records {
		w := r.Weight()
		if w > stats.MaxWeightKg {
			stats.MaxWeightKg = w
		}
		if w >= HeavyLiftKg {
			stats.HeavySets++
		}
		stats.TotalVolumeKg += w * float64(r.Reps)

		if r.WeightKg == nil {
			continue
		}
		key := r.ExerciseKey()
		if best, ok := stats.PersonalBests[key]; !ok || w > best {
			stats.PersonalBests[key] = w
		}
	}

	stats.PersonalRecords = CountPersonalRecords(records)
	return stats
}

// CountPersonalRecords counts, per exercise, every time a weight strictly beats
// the best weight logged before it. The first weight logged for an exercise is
// its baseline and never counts. Bodyweight sets are skipped.
func CountPersonalRecords(records []WorkoutSetRecord) int {
	byExercise := make(map[string][]WorkoutSetRecord)
	for _, r := range records {
		if r.WeightKg == nil {
			continue
		}
		key := r.ExerciseKey()
		byExercise[key] = append(byExercise[key], r)
	}

	prs := 0
	for _, sets := range byExercise {
		sort.SliceStable(sets, func(i, j int) bool {
			if sets[i].WorkoutDate != sets[j].WorkoutDate {
				return sets[i].WorkoutDate < sets[j].WorkoutDate
			}
			return sets[i].SetNumber < sets[j].SetNumber
		})

		best := sets[0].Weight()
		for _, s := range sets[1:] {
			if w := s.Weight(); w > best {
				prs++
				best = w
			}
		}
	}

	return prs
}
