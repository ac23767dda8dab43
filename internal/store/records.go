package store

import (
	"context"
	"fmt"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/jmoiron/sqlx"
)

const recordSelect = `
	SELECT pr.id, pr.user_id, pr.exercise_id, pr.value, pr.date_achieved, pr.notes,
	       e.id AS "exercise.id", e.name AS "exercise.name",
	       e.description AS "exercise.description", e.category AS "exercise.category",
	       e.muscle_group AS "exercise.muscle_group",
	       e.difficulty_level AS "exercise.difficulty_level"
	FROM personal_records pr
	JOIN exercises e ON e.id = pr.exercise_id`

// CreatePersonalRecord stores a new record. The referenced exercise must exist.
func (s *SQLStore) CreatePersonalRecord(ctx context.Context, pr types.PersonalRecord) (*types.PersonalRecord, error) {
	pr.ID = newID()
	pr.DateAchieved = pr.DateAchieved.UTC()

	var created *types.PersonalRecord
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "exercises", pr.ExerciseID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExerciseNotFound
		}

		err = namedExec(ctx, tx, nil, `
			INSERT INTO personal_records (id, user_id, exercise_id, value, date_achieved, notes)
			VALUES (:id, :user_id, :exercise_id, :value, :date_achieved, :notes)
		`, pr)
		if err != nil {
			return fmt.Errorf("insert personal record: %w", err)
		}

		created, err = getPersonalRecord(ctx, tx, pr.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func getPersonalRecord(ctx context.Context, q sqlx.ExtContext, id string) (*types.PersonalRecord, error) {
	var pr types.PersonalRecord
	query := q.Rebind(recordSelect + ` WHERE pr.id = ?`)
	if err := sqlx.GetContext(ctx, q, &pr, query, id); err != nil {
		if isNoRows(err) {
			return nil, ErrPersonalRecordNotFound
		}
		return nil, fmt.Errorf("get personal record: %w", err)
	}
	return &pr, nil
}

// ListExerciseRecords returns a user's records for one exercise, best value
// first. Ties keep creation order.
func (s *SQLStore) ListExerciseRecords(ctx context.Context, exerciseID string, userID int64) ([]types.PersonalRecord, error) {
	records := []types.PersonalRecord{}
	query := s.db.Rebind(recordSelect + `
		WHERE pr.exercise_id = ? AND pr.user_id = ?
		ORDER BY pr.value DESC, pr.id ASC`)
	if err := sqlx.SelectContext(ctx, s.db, &records, query, exerciseID, userID); err != nil {
		return nil, fmt.Errorf("list personal records: %w", err)
	}
	return records, nil
}

// UpdatePersonalRecord replaces every mutable field of a record. The new
// exercise reference must exist.
func (s *SQLStore) UpdatePersonalRecord(ctx context.Context, id string, pr types.PersonalRecord) (*types.PersonalRecord, error) {
	pr.ID = id
	pr.DateAchieved = pr.DateAchieved.UTC()

	var updated *types.PersonalRecord
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := exists(ctx, tx, "personal_records", id)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPersonalRecordNotFound
		}

		ok, err = exists(ctx, tx, "exercises", pr.ExerciseID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrExerciseNotFound
		}

		err = namedExec(ctx, tx, ErrPersonalRecordNotFound, `
			UPDATE personal_records
			SET exercise_id = :exercise_id, value = :value,
			    date_achieved = :date_achieved, notes = :notes
			WHERE id = :id
		`, pr)
		if err != nil {
			return wrapUnlessNotFound("update personal record", err)
		}

		updated, err = getPersonalRecord(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePersonalRecord removes a record.
func (s *SQLStore) DeletePersonalRecord(ctx context.Context, id string) error {
	err := execAffecting(ctx, s.db, ErrPersonalRecordNotFound, `DELETE FROM personal_records WHERE id = ?`, id)
	return wrapUnlessNotFound("delete personal record", err)
}
