package store

import (
	"context"
	"fmt"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/jmoiron/sqlx"
)

const workoutColumns = `id, user_id, date, duration_minutes, calories_burned, notes`

// workoutExerciseSelect joins each entry with its exercise so the exercise
// fields scan into WorkoutExercise.Exercise.
const workoutExerciseSelect = `
	SELECT we.id, we.workout_id, we.exercise_id, we.sets, we.reps, we.weight,
	       we.duration_minutes, we.notes,
	       e.id AS "exercise.id", e.name AS "exercise.name",
	       e.description AS "exercise.description", e.category AS "exercise.category",
	       e.muscle_group AS "exercise.muscle_group",
	       e.difficulty_level AS "exercise.difficulty_level"
	FROM workout_exercises we
	JOIN exercises e ON e.id = we.exercise_id`

// CreateWorkout stores a new workout. The returned workout has no exercises.
func (s *SQLStore) CreateWorkout(ctx context.Context, w types.Workout) (*types.Workout, error) {
	w.ID = newID()
	w.Date = w.Date.UTC()

	err := namedExec(ctx, s.db, nil, `
		INSERT INTO workouts (id, user_id, date, duration_minutes, calories_burned, notes)
		VALUES (:id, :user_id, :date, :duration_minutes, :calories_burned, :notes)
	`, w)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	w.Exercises = []types.WorkoutExercise{}
	return &w, nil
}

// GetWorkout retrieves a workout with its exercise entries in creation order.
func (s *SQLStore) GetWorkout(ctx context.Context, id string) (*types.Workout, error) {
	return getWorkout(ctx, s.db, id)
}

func getWorkout(ctx context.Context, q sqlx.ExtContext, id string) (*types.Workout, error) {
	var w types.Workout
	query := q.Rebind(`SELECT ` + workoutColumns + ` FROM workouts WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &w, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	entries := []types.WorkoutExercise{}
	query = q.Rebind(workoutExerciseSelect + ` WHERE we.workout_id = ? ORDER BY we.id`)
	if err := sqlx.SelectContext(ctx, q, &entries, query, id); err != nil {
		return nil, fmt.Errorf("list workout exercises: %w", err)
	}
	w.Exercises = entries

	return &w, nil
}

// UpdateWorkout replaces the workout's own fields. Its exercise entries are
// left as they are.
func (s *SQLStore) UpdateWorkout(ctx context.Context, id string, w types.Workout) (*types.Workout, error) {
	w.ID = id
	w.Date = w.Date.UTC()

	var updated *types.Workout
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := namedExec(ctx, tx, ErrWorkoutNotFound, `
			UPDATE workouts
			SET date = :date, duration_minutes = :duration_minutes,
			    calories_burned = :calories_burned, notes = :notes
			WHERE id = :id
		`, w)
		if err != nil {
			return wrapUnlessNotFound("update workout", err)
		}

		updated, err = getWorkout(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteWorkout removes a workout together with its exercise entries.
func (s *SQLStore) DeleteWorkout(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM workout_exercises WHERE workout_id = ?`), id); err != nil {
			return fmt.Errorf("delete workout exercises: %w", err)
		}

		err := execAffecting(ctx, tx, ErrWorkoutNotFound, `DELETE FROM workouts WHERE id = ?`, id)
		return wrapUnlessNotFound("delete workout", err)
	})
}

// AddWorkoutExercise appends an exercise entry to a workout. Both the
// workout and the referenced exercise must exist.
func (s *SQLStore) AddWorkoutExercise(ctx context.Context, we types.WorkoutExercise) (*types.WorkoutExercise, error) {
	we.ID = newID()

	var created types.WorkoutExercise
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "workouts", we.WorkoutID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrWorkoutNotFound
		}

		ok, err = exists(ctx, tx, "exercises", we.ExerciseID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExerciseNotFound
		}

		err = namedExec(ctx, tx, nil, `
			INSERT INTO workout_exercises (id, workout_id, exercise_id, sets, reps, weight, duration_minutes, notes)
			VALUES (:id, :workout_id, :exercise_id, :sets, :reps, :weight, :duration_minutes, :notes)
		`, we)
		if err != nil {
			return fmt.Errorf("insert workout exercise: %w", err)
		}

		query := tx.Rebind(workoutExerciseSelect + ` WHERE we.id = ?`)
		if err := sqlx.GetContext(ctx, tx, &created, query, we.ID); err != nil {
			return fmt.Errorf("get workout exercise: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// RemoveWorkoutExercise deletes one entry from a workout.
func (s *SQLStore) RemoveWorkoutExercise(ctx context.Context, workoutID, entryID string) error {
	err := execAffecting(ctx, s.db, ErrWorkoutExerciseNotFound,
		`DELETE FROM workout_exercises WHERE id = ? AND workout_id = ?`, entryID, workoutID)
	return wrapUnlessNotFound("delete workout exercise", err)
}
