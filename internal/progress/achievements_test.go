package progress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymprogress/internal/progress"
)

var catalogIDs = []string{
	"first-workout", "week-warrior", "month-master",
	"century-club", "heavy-lifter", "set-master",
	"streak-3", "streak-7", "streak-30",
}

func achievementsByID(res progress.AchievementsResult) map[string]progress.Achievement {
	byID := make(map[string]progress.Achievement, len(res.Achievements))
	for _, a := range res.Achievements {
		byID[a.ID] = a
	}
	return byID
}

func TestAchievementCatalog(t *testing.T) {
	catalog := progress.AchievementCatalog()
	require.Len(t, catalog, len(catalogIDs))

	for i, a := range catalog {
		assert.Equal(t, catalogIDs[i], a.ID)
		assert.False(t, a.Unlocked)
		assert.Zero(t, a.Progress)
		assert.Positive(t, a.Target)
	}

	catalog[0].Unlocked = true
	assert.False(t, progress.AchievementCatalog()[0].Unlocked)
}

func TestEvaluateAchievements_Empty(t *testing.T) {
	res := progress.EvaluateAchievements(nil, mustDay(t, "2024-01-10"), 4)

	assert.Equal(t, 9, res.TotalCount)
	assert.Zero(t, res.UnlockedCount)
	require.Len(t, res.Achievements, 9)
	for i, a := range res.Achievements {
		assert.Equal(t, catalogIDs[i], a.ID)
		assert.False(t, a.Unlocked)
		assert.Zero(t, a.Progress)
	}
}

func TestEvaluateAchievements_WeightProgressIsClamped(t *testing.T) {
	records := []progress.WorkoutSetRecord{
		weightedSet("2024-01-10", "deadlift", 1, 120, 3),
	}

	res := progress.EvaluateAchievements(records, mustDay(t, "2024-01-10"), 4)
	byID := achievementsByID(res)

	assert.True(t, byID["century-club"].Unlocked)
	assert.Equal(t, 100.0, byID["century-club"].Progress)
	assert.False(t, byID["heavy-lifter"].Unlocked)
	assert.Equal(t, 120.0, byID["heavy-lifter"].Progress)
	assert.True(t, byID["first-workout"].Unlocked)
	assert.Equal(t, 1.0, byID["week-warrior"].Progress)
	assert.Equal(t, 1.0, byID["set-master"].Progress)
	assert.Equal(t, 1.0, byID["streak-3"].Progress)
	assert.Equal(t, 2, res.UnlockedCount)
}

func TestEvaluateAchievements_StreakAndDays(t *testing.T) {
	dates := []string{
		"2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07",
		"2024-01-08", "2024-01-09", "2024-01-10",
	}
	var records []progress.WorkoutSetRecord
	for _, d := range dates {
		records = append(records, bodyweightSet(d, "push-up", 1, 20))
	}

	res := progress.EvaluateAchievements(records, mustDay(t, "2024-01-10"), 4)
	byID := achievementsByID(res)

	assert.True(t, byID["week-warrior"].Unlocked)
	assert.Equal(t, 7.0, byID["week-warrior"].Progress)
	assert.True(t, byID["streak-3"].Unlocked)
	assert.True(t, byID["streak-7"].Unlocked)
	assert.False(t, byID["streak-30"].Unlocked)
	assert.Equal(t, 7.0, byID["streak-30"].Progress)
	assert.False(t, byID["month-master"].Unlocked)
	assert.Zero(t, byID["century-club"].Progress)

	unlocked := 0
	for _, a := range res.Achievements {
		assert.LessOrEqual(t, a.Progress, a.Target)
		assert.Equal(t, a.Progress >= a.Target, a.Unlocked)
		if a.Unlocked {
			unlocked++
		}
	}
	assert.Equal(t, unlocked, res.UnlockedCount)
	assert.Equal(t, 4, unlocked)
}
