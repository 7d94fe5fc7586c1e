package progress

import (
	"math"
	"time"
)

type achievementMetric int

const (
	metricWorkoutDays achievementMetric = iota
	metricMaxWeight
	metricTotalSets
	metricStreak
)

type Achievement struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress"`
	Target      float64 `json:"target"`
}

type AchievementsResult struct {
	Achievements  []Achievement `json:"achievements"`
	UnlockedCount int           `json:"unlockedCount"`
	TotalCount    int           `json:"totalCount"`
}

type achievementDef struct {
	achievement Achievement
	metric      achievementMetric
}

var achievementCatalog = [...]achievementDef{
	{Achievement{ID: "first-workout", Title: "First Workout", Description: "Log your first workout", Icon: "🎯", Target: 1}, metricWorkoutDays},
	{Achievement{ID: "week-warrior", Title: "Week Warrior", Description: "Work out on 7 different days", Icon: "📅", Target: 7}, metricWorkoutDays},
	{Achievement{ID: "month-master", Title: "Month Master", Description: "Work out on 30 different days", Icon: "🗓️", Target: 30}, metricWorkoutDays},
	{Achievement{ID: "century-club", Title: "Century Club", Description: "Lift 100 kg in a single set", Icon: "💯", Target: 100}, metricMaxWeight},
	{Achievement{ID: "heavy-lifter", Title: "Heavy Lifter", Description: "Lift 150 kg in a single set", Icon: "🏋️", Target: 150}, metricMaxWeight},
	{Achievement{ID: "set-master", Title: "Set Master", Description: "Complete 100 sets", Icon: "✅", Target: 100}, metricTotalSets},
	{Achievement{ID: "streak-3", Title: "On Fire", Description: "Reach a 3 workout streak", Icon: "🔥", Target: 3}, metricStreak},
	{Achievement{ID: "streak-7", Title: "Unstoppable", Description: "Reach a 7 workout streak", Icon: "⚡", Target: 7}, metricStreak},
	{Achievement{ID: "streak-30", Title: "Iron Will", Description: "Reach a 30 workout streak", Icon: "🏅", Target: 30}, metricStreak},
}

// AchievementCatalog returns every achievement in display order, all locked.
func AchievementCatalog() []Achievement {
	out := make([]Achievement, len(achievementCatalog))
	for i, def := range achievementCatalog {
		out[i] = def.achievement
	}
	return out
}

// EvaluateAchievements annotates the catalog with the unlock state the records reach.
func EvaluateAchievements(records []WorkoutSetRecord, today time.Time, toleranceDays int) AchievementsResult {
	return achievementsFromStats(ComputeStats(records, today, toleranceDays))
}

func achievementsFromStats(stats Stats) AchievementsResult {
	res := AchievementsResult{
		Achievements: make([]Achievement, len(achievementCatalog)),
		TotalCount:   len(achievementCatalog),
	}

	for i, def := range achievementCatalog {
		a := def.achievement
		value := stats.metricValue(def.metric)
		a.Unlocked = value >= a.Target
		a.Progress = math.Min(value, a.Target)
		if a.Unlocked {
			res.UnlockedCount++
		}
		res.Achievements[i] = a
	}

	return res
}

func (s Stats) metricValue(m achievementMetric) float64 {
	switch m {
	case metricWorkoutDays:
		return float64(s.WorkoutDays)
	case metricMaxWeight:
		return s.MaxWeightKg
	case metricTotalSets:
		return float64(s.TotalSets)
	case metricStreak:
		return float64(s.CurrentStreak)
	default:
		return 0
	}
}
