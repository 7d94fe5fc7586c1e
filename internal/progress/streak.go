package progress

import (
	"sort"
	"time"
)

// DefaultStreakToleranceDays is the largest gap, in days, between two workouts
// that still keeps a streak alive.
const DefaultStreakToleranceDays = 4

// CurrentStreak returns the number of distinct workout days in the most recent
// unbroken run of workouts. Two workouts belong to the same run when they are at
// most toleranceDays apart, and the run is only current if the last workout is at
// most toleranceDays before today. Dates that don't parse as YYYY-MM-DD are ignored.
func CurrentStreak(dates []string, today time.Time, toleranceDays int) int {
	if toleranceDays <= 0 {
		toleranceDays = DefaultStreakToleranceDays
	}

	seen := make(map[time.Time]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, date := range dates {
		day, ok := parseDay(date)
		if !ok {
			continue
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0
	}

	// most recent first
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	if daysBetween(days[0], calendarDay(today)) > toleranceDays {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i], days[i-1]) > toleranceDays {
			break
		}
		streak++
	}

	return streak
}
