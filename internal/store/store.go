package store

import (
	"context"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
)

// Store defines the interface contract for all fitness record storage.
// Write methods commit at most one transaction; update methods replace every
// mutable field from the supplied value.
type Store interface {
	CreateExercise(ctx context.Context, e types.Exercise) (*types.Exercise, error)
	GetExercise(ctx context.Context, id string) (*types.Exercise, error)
	ListExercises(ctx context.Context, filter types.ExerciseFilter) ([]types.Exercise, error)
	UpdateExercise(ctx context.Context, id string, e types.Exercise) (*types.Exercise, error)
	DeleteExercise(ctx context.Context, id string) error

	CreateWorkout(ctx context.Context, w types.Workout) (*types.Workout, error)
	GetWorkout(ctx context.Context, id string) (*types.Workout, error)
	UpdateWorkout(ctx context.Context, id string, w types.Workout) (*types.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
	AddWorkoutExercise(ctx context.Context, we types.WorkoutExercise) (*types.WorkoutExercise, error)
	RemoveWorkoutExercise(ctx context.Context, workoutID, entryID string) error

	CreateGoal(ctx context.Context, g types.Goal) (*types.Goal, error)
	ListGoals(ctx context.Context, filter types.GoalFilter) ([]types.Goal, error)
	UpdateGoalProgress(ctx context.Context, id string, currentValue float64) (*types.Goal, error)
	UpdateGoal(ctx context.Context, id string, g types.Goal) (*types.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	CreatePersonalRecord(ctx context.Context, pr types.PersonalRecord) (*types.PersonalRecord, error)
	ListExerciseRecords(ctx context.Context, exerciseID string, userID int64) ([]types.PersonalRecord, error)
	UpdatePersonalRecord(ctx context.Context, id string, pr types.PersonalRecord) (*types.PersonalRecord, error)
	DeletePersonalRecord(ctx context.Context, id string) error

	CreateCalorieLog(ctx context.Context, l types.CalorieLog) (*types.CalorieLog, error)
	ListCalorieLogs(ctx context.Context, filter types.CalorieLogFilter) ([]types.CalorieLog, error)
	CalorieSummary(ctx context.Context, userID int64, start, end time.Time) (*types.CalorieSummary, error)
	UpdateCalorieLog(ctx context.Context, id string, l types.CalorieLog) (*types.CalorieLog, error)
	DeleteCalorieLog(ctx context.Context, id string) error

	Ping(ctx context.Context) error
	Close() error
}
