package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundErrors_WrapErrNotFound(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrExerciseNotFound", ErrExerciseNotFound, "exercise not found"},
		{"ErrWorkoutNotFound", ErrWorkoutNotFound, "workout not found"},
		{"ErrWorkoutExerciseNotFound", ErrWorkoutExerciseNotFound, "workout exercise not found"},
		{"ErrGoalNotFound", ErrGoalNotFound, "goal not found"},
		{"ErrPersonalRecordNotFound", ErrPersonalRecordNotFound, "personal record not found"},
		{"ErrCalorieLogNotFound", ErrCalorieLogNotFound, "calorie log not found"},
	}

	for _, s := range sentinels {
		t.Run(s.name, func(t *testing.T) {
			if !errors.Is(s.err, ErrNotFound) {
				t.Errorf("errors.Is(%s, ErrNotFound) = false, want true", s.name)
			}
			if s.err.Error() != s.msg {
				t.Errorf("Error() = %q, want %q", s.err.Error(), s.msg)
			}
		})
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	for _, sentinel := range []error{ErrNotFound, ErrExerciseInUse, ErrGoalNotFound} {
		wrapped := fmt.Errorf("operation failed: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is should return true for wrapped %v", sentinel)
		}
	}
}

func TestErrExerciseInUse_IsNotNotFound(t *testing.T) {
	if errors.Is(ErrExerciseInUse, ErrNotFound) {
		t.Error("ErrExerciseInUse must not match ErrNotFound")
	}
}
