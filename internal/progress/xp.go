package progress

import (
	"math"
	"time"
)

// XP awarded per unit of each source.
const (
	XPPerSet            = 10
	XPPerWorkoutDay     = 50
	XPPerPersonalRecord = 100
	XPPerStreakDay      = 5
	XPPerHeavyLift      = 25
)

type XPBreakdown struct {
	Sets            int `json:"sets"`
	WorkoutDays     int `json:"workoutDays"`
	PersonalRecords int `json:"personalRecords"`
	StreakBonus     int `json:"streakBonus"`
	HeavyLifts      int `json:"heavyLifts"`
}

func (b XPBreakdown) Total() int {
	return b.Sets + b.WorkoutDays + b.PersonalRecords + b.StreakBonus + b.HeavyLifts
}

type XPResult struct {
	TotalXP          int         `json:"totalXp"`
	CurrentLevel     XPLevel     `json:"currentLevel"`
	NextLevel        *XPLevel    `json:"nextLevel"`
	ProgressToNext   float64     `json:"progressToNext"`
	XPToNext         int         `json:"xpToNext"`
	XPInCurrentLevel int         `json:"xpInCurrentLevel"`
	Breakdown        XPBreakdown `json:"breakdown"`
}

// ComputeXP scores the whole record history and resolves the level it reaches.
func ComputeXP(records []WorkoutSetRecord, today time.Time, toleranceDays int) XPResult {
	return xpFromStats(ComputeStats(records, today, toleranceDays))
}

func xpFromStats(stats Stats) XPResult {
	breakdown := XPBreakdown{
		Sets:            stats.TotalSets * XPPerSet,
		WorkoutDays:     stats.WorkoutDays * XPPerWorkoutDay,
		PersonalRecords: stats.PersonalRecords * XPPerPersonalRecord,
		StreakBonus:     stats.CurrentStreak * XPPerStreakDay,
		HeavyLifts:      stats.HeavySets * XPPerHeavyLift,
	}
	total := breakdown.Total()
	current := LevelFor(total)

	res := XPResult{
		TotalXP:          total,
		CurrentLevel:     current,
		XPInCurrentLevel: total - current.MinXP,
		Breakdown:        breakdown,
	}

	next, ok := nextLevel(current)
	if !ok {
		res.ProgressToNext = 100
		return res
	}

	levelRange := next.MinXP - current.MinXP
	res.NextLevel = &next
	res.XPToNext = next.MinXP - total
	res.ProgressToNext = math.Min(100, float64(res.XPInCurrentLevel)/float64(levelRange)*100)

	return res
}
