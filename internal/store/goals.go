package store

import (
	"context"
	"fmt"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/jmoiron/sqlx"
)

const goalColumns = `id, user_id, name, description, target_value, current_value, deadline, status, category`

// CreateGoal stores a new goal.
func (s *SQLStore) CreateGoal(ctx context.Context, g types.Goal) (*types.Goal, error) {
	g.ID = newID()
	g.Deadline = g.Deadline.UTC()
	if g.Status == "" {
		g.Status = types.GoalInProgress
	}

	err := namedExec(ctx, s.db, nil, `
		INSERT INTO goals (id, user_id, name, description, target_value, current_value, deadline, status, category)
		VALUES (:id, :user_id, :name, :description, :target_value, :current_value, :deadline, :status, :category)
	`, g)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &g, nil
}

func getGoal(ctx context.Context, q sqlx.ExtContext, id string) (*types.Goal, error) {
	var g types.Goal
	query := q.Rebind(`SELECT ` + goalColumns + ` FROM goals WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &g, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}
	return &g, nil
}

// ListGoals returns a user's goals, optionally narrowed to one status.
func (s *SQLStore) ListGoals(ctx context.Context, filter types.GoalFilter) ([]types.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = ?`
	args := []any{filter.UserID}

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY id`

	goals := []types.Goal{}
	if err := sqlx.SelectContext(ctx, s.db, &goals, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

// UpdateGoalProgress sets a goal's current value and completes the goal when
// the value reaches its target. The read and write share one transaction.
func (s *SQLStore) UpdateGoalProgress(ctx context.Context, id string, currentValue float64) (*types.Goal, error) {
	var updated *types.Goal
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		g, err := getGoal(ctx, tx, id)
		if err != nil {
			return err
		}

		g.ApplyProgress(currentValue)

		err = namedExec(ctx, tx, ErrGoalNotFound, `
			UPDATE goals SET current_value = :current_value, status = :status WHERE id = :id
		`, g)
		if err != nil {
			return wrapUnlessNotFound("update goal progress", err)
		}

		updated = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateGoal replaces every mutable field of a goal. Ownership does not change.
func (s *SQLStore) UpdateGoal(ctx context.Context, id string, g types.Goal) (*types.Goal, error) {
	g.ID = id
	g.Deadline = g.Deadline.UTC()
	if g.Status == "" {
		g.Status = types.GoalInProgress
	}

	var updated *types.Goal
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := namedExec(ctx, tx, ErrGoalNotFound, `
			UPDATE goals
			SET name = :name, description = :description, target_value = :target_value,
			    current_value = :current_value, deadline = :deadline, status = :status,
			    category = :category
			WHERE id = :id
		`, g)
		if err != nil {
			return wrapUnlessNotFound("update goal", err)
		}

		updated, err = getGoal(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteGoal removes a goal.
func (s *SQLStore) DeleteGoal(ctx context.Context, id string) error {
	err := execAffecting(ctx, s.db, ErrGoalNotFound, `DELETE FROM goals WHERE id = ?`, id)
	return wrapUnlessNotFound("delete goal", err)
}
