package store

import (
	"context"
	"fmt"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/jmoiron/sqlx"
)

const exerciseColumns = `id, name, description, category, muscle_group, difficulty_level`

// CreateExercise stores a new exercise and returns it with its assigned ID.
func (s *SQLStore) CreateExercise(ctx context.Context, e types.Exercise) (*types.Exercise, error) {
	e.ID = newID()

	err := namedExec(ctx, s.db, nil, `
		INSERT INTO exercises (id, name, description, category, muscle_group, difficulty_level)
		VALUES (:id, :name, :description, :category, :muscle_group, :difficulty_level)
	`, e)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	return &e, nil
}

// GetExercise retrieves an exercise by ID.
func (s *SQLStore) GetExercise(ctx context.Context, id string) (*types.Exercise, error) {
	return getExercise(ctx, s.db, id)
}

func getExercise(ctx context.Context, q sqlx.ExtContext, id string) (*types.Exercise, error) {
	var e types.Exercise
	query := q.Rebind(`SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &e, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return &e, nil
}

// ListExercises returns one page of exercises in creation order, filtered by
// exact category and muscle group when those are set.
func (s *SQLStore) ListExercises(ctx context.Context, filter types.ExerciseFilter) ([]types.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE 1 = 1`
	var args []any

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, filter.Category)
	}
	if filter.MuscleGroup != "" {
		query += ` AND muscle_group = ?`
		args = append(args, filter.MuscleGroup)
	}
	query += ` ORDER BY id LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Skip)

	exercises := []types.Exercise{}
	if err := sqlx.SelectContext(ctx, s.db, &exercises, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// UpdateExercise replaces every mutable field of an exercise.
func (s *SQLStore) UpdateExercise(ctx context.Context, id string, e types.Exercise) (*types.Exercise, error) {
	e.ID = id

	var updated *types.Exercise
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := namedExec(ctx, tx, ErrExerciseNotFound, `
			UPDATE exercises
			SET name = :name, description = :description, category = :category,
			    muscle_group = :muscle_group, difficulty_level = :difficulty_level
			WHERE id = :id
		`, e)
		if err != nil {
			return wrapUnlessNotFound("update exercise", err)
		}

		updated, err = getExercise(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteExercise removes an exercise. Deletion is refused with
// ErrExerciseInUse while any workout entry or personal record references it.
func (s *SQLStore) DeleteExercise(ctx context.Context, id string) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		var refs int
		err := sqlx.GetContext(ctx, tx, &refs, tx.Rebind(`
			SELECT
				(SELECT COUNT(*) FROM workout_exercises WHERE exercise_id = ?) +
				(SELECT COUNT(*) FROM personal_records WHERE exercise_id = ?)
		`), id, id)
		if err != nil {
			return fmt.Errorf("count exercise references: %w", err)
		}
		if refs > 0 {
			return ErrExerciseInUse
		}

		err = execAffecting(ctx, tx, ErrExerciseNotFound, `DELETE FROM exercises WHERE id = ?`, id)
		return wrapUnlessNotFound("delete exercise", err)
	})
}
