package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrExerciseInUse = errors.New("exercise is referenced by workouts or personal records")
)

// Entity-specific not-found errors. Each wraps ErrNotFound.
var (
	ErrExerciseNotFound        = fmt.Errorf("exercise %w", ErrNotFound)
	ErrWorkoutNotFound         = fmt.Errorf("workout %w", ErrNotFound)
	ErrWorkoutExerciseNotFound = fmt.Errorf("workout exercise %w", ErrNotFound)
	ErrGoalNotFound            = fmt.Errorf("goal %w", ErrNotFound)
	ErrPersonalRecordNotFound  = fmt.Errorf("personal record %w", ErrNotFound)
	ErrCalorieLogNotFound      = fmt.Errorf("calorie log %w", ErrNotFound)
)

// ErrSnapshotUnsupported is returned when the active driver cannot write a
// file snapshot.
var ErrSnapshotUnsupported = errors.New("snapshots are only supported for sqlite")
