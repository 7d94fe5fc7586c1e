package workouts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/gymprogress/internal/progress"
)

func TestValidateSet(t *testing.T) {
	exerciseID := "deadlift"
	blank := "  "
	custom := "Snatch Grip Deadlift"
	negative := -5.0

	valid := progress.WorkoutSetRecord{
		WorkoutDate: "2024-01-10",
		ExerciseID:  &exerciseID,
		SetNumber:   1,
		Reps:        5,
	}
	require.NoError(t, validateSet(valid))

	customOnly := valid
	customOnly.ExerciseID = nil
	customOnly.CustomExerciseName = &custom
	assert.NoError(t, validateSet(customOnly))

	cases := map[string]func(s *progress.WorkoutSetRecord){
		"bad date":        func(s *progress.WorkoutSetRecord) { s.WorkoutDate = "10.01.2024" },
		"zero set number": func(s *progress.WorkoutSetRecord) { s.SetNumber = 0 },
		"negative reps":   func(s *progress.WorkoutSetRecord) { s.Reps = -1 },
		"negative weight": func(s *progress.WorkoutSetRecord) { s.WeightKg = &negative },
		"no exercise":     func(s *progress.WorkoutSetRecord) { s.ExerciseID = nil; s.CustomExerciseName = &blank },
		"both exercises":  func(s *progress.WorkoutSetRecord) { s.CustomExerciseName = &custom },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			set := valid
			mutate(&set)
			assert.ErrorIs(t, validateSet(set), ErrInvalidSet)
		})
	}
}
