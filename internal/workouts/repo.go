package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/gymprogress/internal/progress"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"
)

var (
	ErrUnknownExercise = errors.New("unknown exercise")
	ErrInvalidSet      = errors.New("invalid workout set")
	ErrDuplicateSet    = errors.New("set number already logged for this exercise and date")
)

// Repo reads and writes logged workout sets. Catalog exercise names are
// resolved here, so records leave the repo ready for the progress engine.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, set progress.WorkoutSetRecord) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	if err := validateSet(set); err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO workout_sets
				(user_id, workout_date, category, exercise_id, custom_exercise_name, set_number, weight_kg, reps)
				VALUES ($1::uuid, $2::date, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		userID.String(), set.WorkoutDate, set.Category, set.ExerciseID, set.CustomExerciseName,
		set.SetNumber, set.WeightKg, set.Reps,
	).Scan(&id); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return 0, ErrUnknownExercise
		}
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrDuplicateSet
		}
		if pkg.IsCheckViolationError(err) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidSet, err)
		}
		return 0, fmt.Errorf("insert workout set: %w", err)
	}

	span.SetAttributes(attribute.Int64("workout_set.id", id))
	return id, nil
}

// ListAll returns every set the user logged, oldest first.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) (_ []progress.WorkoutSetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				to_char(ws.workout_date, 'YYYY-MM-DD'), ws.category, ws.exercise_id, COALESCE(e.name, ''),
				ws.custom_exercise_name, ws.set_number, ws.weight_kg, ws.reps
			FROM workout_sets ws
			LEFT JOIN exercises e ON e.id = ws.exercise_id
			WHERE ws.user_id = $1::uuid
			ORDER BY ws.workout_date, ws.set_number, ws.id;`,
		userID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (progress.WorkoutSetRecord, error) {
		var rec progress.WorkoutSetRecord
		err := row.Scan(
			&rec.WorkoutDate, &rec.Category, &rec.ExerciseID, &rec.ExerciseName,
			&rec.CustomExerciseName, &rec.SetNumber, &rec.WeightKg, &rec.Reps,
		)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect workout sets: %w", err)
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func validateSet(set progress.WorkoutSetRecord) error {
	if _, err := time.Parse(progress.DateLayout, set.WorkoutDate); err != nil {
		return fmt.Errorf("%w: workout date %q", ErrInvalidSet, set.WorkoutDate)
	}
	if set.SetNumber < 1 {
		return fmt.Errorf("%w: set number %d", ErrInvalidSet, set.SetNumber)
	}
	if set.Reps < 0 {
		return fmt.Errorf("%w: reps %d", ErrInvalidSet, set.Reps)
	}
	if set.WeightKg != nil && *set.WeightKg < 0 {
		return fmt.Errorf("%w: weight %.2f", ErrInvalidSet, *set.WeightKg)
	}
	if set.ExerciseID == nil && (set.CustomExerciseName == nil || strings.TrimSpace(*set.CustomExerciseName) == "") {
		return fmt.Errorf("%w: exercise id or custom name required", ErrInvalidSet)
	}
	if set.ExerciseID != nil && set.CustomExerciseName != nil {
		return fmt.Errorf("%w: exercise id and custom name are mutually exclusive", ErrInvalidSet)
	}
	return nil
}
