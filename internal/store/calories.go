package store

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/jmoiron/sqlx"
)

const calorieLogColumns = `id, user_id, date, calories_consumed, protein_grams, carbs_grams, fat_grams, notes`

// CreateCalorieLog stores a new calorie log.
func (s *SQLStore) CreateCalorieLog(ctx context.Context, l types.CalorieLog) (*types.CalorieLog, error) {
	l.ID = newID()
	l.Date = l.Date.UTC()

	err := namedExec(ctx, s.db, nil, `
		INSERT INTO calorie_logs (id, user_id, date, calories_consumed, protein_grams, carbs_grams, fat_grams, notes)
		VALUES (:id, :user_id, :date, :calories_consumed, :protein_grams, :carbs_grams, :fat_grams, :notes)
	`, l)
	if err != nil {
		return nil, fmt.Errorf("insert calorie log: %w", err)
	}

	return &l, nil
}

func getCalorieLog(ctx context.Context, q sqlx.ExtContext, id string) (*types.CalorieLog, error) {
	var l types.CalorieLog
	query := q.Rebind(`SELECT ` + calorieLogColumns + ` FROM calorie_logs WHERE id = ?`)
	if err := sqlx.GetContext(ctx, q, &l, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrCalorieLogNotFound
		}
		return nil, fmt.Errorf("get calorie log: %w", err)
	}
	return &l, nil
}

// ListCalorieLogs returns a user's logs ordered by date, bounded inclusively
// by the filter's start and end when set.
func (s *SQLStore) ListCalorieLogs(ctx context.Context, filter types.CalorieLogFilter) ([]types.CalorieLog, error) {
	query := `SELECT ` + calorieLogColumns + ` FROM calorie_logs WHERE user_id = ?`
	args := []any{filter.UserID}

	if filter.Start != nil {
		query += ` AND date >= ?`
		args = append(args, filter.Start.UTC())
	}
	if filter.End != nil {
		query += ` AND date <= ?`
		args = append(args, filter.End.UTC())
	}
	query += ` ORDER BY date, id`

	logs := []types.CalorieLog{}
	if err := sqlx.SelectContext(ctx, s.db, &logs, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list calorie logs: %w", err)
	}
	return logs, nil
}

// CalorieSummary aggregates a user's logs between start and end inclusive.
// Missing macronutrients count as zero.
func (s *SQLStore) CalorieSummary(ctx context.Context, userID int64, start, end time.Time) (*types.CalorieSummary, error) {
	start, end = start.UTC(), end.UTC()

	var totals types.CalorieTotals
	query := s.db.Rebind(`
		SELECT COUNT(*) AS log_count,
		       COALESCE(SUM(calories_consumed), 0) AS calories,
		       COALESCE(SUM(COALESCE(protein_grams, 0)), 0) AS protein,
		       COALESCE(SUM(COALESCE(carbs_grams, 0)), 0) AS carbs,
		       COALESCE(SUM(COALESCE(fat_grams, 0)), 0) AS fat
		FROM calorie_logs
		WHERE user_id = ? AND date >= ? AND date <= ?`)
	if err := sqlx.GetContext(ctx, s.db, &totals, query, userID, start, end); err != nil {
		return nil, fmt.Errorf("summarize calorie logs: %w", err)
	}

	return types.NewCalorieSummary(userID, start, end, totals), nil
}

// UpdateCalorieLog replaces every mutable field of a calorie log.
func (s *SQLStore) UpdateCalorieLog(ctx context.Context, id string, l types.CalorieLog) (*types.CalorieLog, error) {
	l.ID = id
	l.Date = l.Date.UTC()

	var updated *types.CalorieLog
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := namedExec(ctx, tx, ErrCalorieLogNotFound, `
			UPDATE calorie_logs
			SET date = :date, calories_consumed = :calories_consumed,
			    protein_grams = :protein_grams, carbs_grams = :carbs_grams,
			    fat_grams = :fat_grams, notes = :notes
			WHERE id = :id
		`, l)
		if err != nil {
			return wrapUnlessNotFound("update calorie log", err)
		}

		updated, err = getCalorieLog(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCalorieLog removes a calorie log.
func (s *SQLStore) DeleteCalorieLog(ctx context.Context, id string) error {
	err := execAffecting(ctx, s.db, ErrCalorieLogNotFound, `DELETE FROM calorie_logs WHERE id = ?`, id)
	return wrapUnlessNotFound("delete calorie log", err)
}
