package types

import (
	"encoding/json"
	"time"
)

// Creation shapes. Every create and replace-all update decodes one of these;
// required numeric fields are pointers so a missing value can be told apart
// from a zero.

// ExerciseInput is the payload for creating or replacing an exercise.
type ExerciseInput struct {
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Category        string  `json:"category"`
	MuscleGroup     string  `json:"muscle_group"`
	DifficultyLevel string  `json:"difficulty_level"`
}

// Exercise converts the payload into an unsaved Exercise.
func (in ExerciseInput) Exercise() Exercise {
	return Exercise{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		MuscleGroup:     in.MuscleGroup,
		DifficultyLevel: in.DifficultyLevel,
	}
}

// WorkoutInput is the payload for creating or replacing a workout.
type WorkoutInput struct {
	Date            time.Time `json:"date"`
	DurationMinutes *int      `json:"duration_minutes"`
	CaloriesBurned  *int      `json:"calories_burned"`
	Notes           *string   `json:"notes"`
}

// Workout converts the payload into an unsaved Workout owned by userID.
func (in WorkoutInput) Workout(userID int64) Workout {
	return Workout{
		UserID:          userID,
		Date:            in.Date.UTC(),
		DurationMinutes: derefInt(in.DurationMinutes),
		CaloriesBurned:  in.CaloriesBurned,
		Notes:           in.Notes,
		Exercises:       []WorkoutExercise{},
	}
}

// WorkoutExerciseInput is the payload for adding an exercise to a workout.
type WorkoutExerciseInput struct {
	ExerciseID      string   `json:"exercise_id"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationMinutes *int     `json:"duration_minutes"`
	Notes           *string  `json:"notes"`
}

// WorkoutExercise converts the payload into an unsaved entry of workoutID.
func (in WorkoutExerciseInput) WorkoutExercise(workoutID string) WorkoutExercise {
	return WorkoutExercise{
		WorkoutID:       workoutID,
		ExerciseID:      in.ExerciseID,
		Sets:            in.Sets,
		Reps:            in.Reps,
		Weight:          in.Weight,
		DurationMinutes: in.DurationMinutes,
		Notes:           in.Notes,
	}
}

// GoalInput is the payload for creating or replacing a goal.
type GoalInput struct {
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	TargetValue  *float64   `json:"target_value"`
	CurrentValue *float64   `json:"current_value"`
	Deadline     time.Time  `json:"deadline"`
	Category     string     `json:"category"`
	Status       GoalStatus `json:"status"`
}

// Goal converts the payload into an unsaved Goal owned by userID, applying
// the defaults: current value 0 and status in_progress.
func (in GoalInput) Goal(userID int64) Goal {
	status := in.Status
	if status == "" {
		status = GoalInProgress
	}
	var current float64
	if in.CurrentValue != nil {
		current = *in.CurrentValue
	}
	var target float64
	if in.TargetValue != nil {
		target = *in.TargetValue
	}
	return Goal{
		UserID:       userID,
		Name:         in.Name,
		Description:  in.Description,
		TargetValue:  target,
		CurrentValue: current,
		Deadline:     in.Deadline.UTC(),
		Status:       status,
		Category:     in.Category,
	}
}

// PersonalRecordInput is the payload for creating or replacing a record.
type PersonalRecordInput struct {
	ExerciseID   string    `json:"exercise_id"`
	Value        *float64  `json:"value"`
	DateAchieved time.Time `json:"date_achieved"`
	Notes        *string   `json:"notes"`
}

// PersonalRecord converts the payload into an unsaved record owned by userID.
func (in PersonalRecordInput) PersonalRecord(userID int64) PersonalRecord {
	var value float64
	if in.Value != nil {
		value = *in.Value
	}
	return PersonalRecord{
		UserID:       userID,
		ExerciseID:   in.ExerciseID,
		Value:        value,
		DateAchieved: in.DateAchieved.UTC(),
		Notes:        in.Notes,
	}
}

// CalorieLogInput is the payload for creating or replacing a calorie log.
type CalorieLogInput struct {
	Date             time.Time `json:"date"`
	CaloriesConsumed *int      `json:"calories_consumed"`
	ProteinGrams     *float64  `json:"protein_grams"`
	CarbsGrams       *float64  `json:"carbs_grams"`
	FatGrams         *float64  `json:"fat_grams"`
	Notes            *string   `json:"notes"`
}

// CalorieLog converts the payload into an unsaved log owned by userID.
func (in CalorieLogInput) CalorieLog(userID int64) CalorieLog {
	return CalorieLog{
		UserID:           userID,
		Date:             in.Date.UTC(),
		CaloriesConsumed: derefInt(in.CaloriesConsumed),
		ProteinGrams:     in.ProteinGrams,
		CarbsGrams:       in.CarbsGrams,
		FatGrams:         in.FatGrams,
		Notes:            in.Notes,
	}
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Request bodies accept any of DateLayouts for their date fields. Each
// UnmarshalJSON decodes the body into the plain struct with the date field
// shadowed by a Timestamp.

// UnmarshalJSON implements json.Unmarshaler for WorkoutInput.
func (in *WorkoutInput) UnmarshalJSON(data []byte) error {
	type plain WorkoutInput
	aux := struct {
		*plain
		Date Timestamp `json:"date"`
	}{plain: (*plain)(in), Date: Timestamp(in.Date)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	in.Date = aux.Date.Time()
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for GoalInput.
func (in *GoalInput) UnmarshalJSON(data []byte) error {
	type plain GoalInput
	aux := struct {
		*plain
		Deadline Timestamp `json:"deadline"`
	}{plain: (*plain)(in), Deadline: Timestamp(in.Deadline)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	in.Deadline = aux.Deadline.Time()
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for PersonalRecordInput.
func (in *PersonalRecordInput) UnmarshalJSON(data []byte) error {
	type plain PersonalRecordInput
	aux := struct {
		*plain
		DateAchieved Timestamp `json:"date_achieved"`
	}{plain: (*plain)(in), DateAchieved: Timestamp(in.DateAchieved)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	in.DateAchieved = aux.DateAchieved.Time()
	return nil
}

// UnmarshalJSON implements json.Unmarshaler for CalorieLogInput.
func (in *CalorieLogInput) UnmarshalJSON(data []byte) error {
	type plain CalorieLogInput
	aux := struct {
		*plain
		Date Timestamp `json:"date"`
	}{plain: (*plain)(in), Date: Timestamp(in.Date)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	in.Date = aux.Date.Time()
	return nil
}
