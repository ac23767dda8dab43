package validation

import (
	"github.com/hyperengineering/fitlog/internal/types"
)

const (
	// MaxNameLength bounds short labels: names, categories, muscle groups.
	MaxNameLength = 200
	// MaxTextLength bounds free-text descriptions and notes.
	MaxTextLength = 4000
)

func validateText(c *Collector, field, value string, max int) {
	c.Add(ValidateUTF8(field, value))
	c.Add(ValidateNoNullBytes(field, value))
	c.Add(ValidateMaxLength(field, value, max))
}

func validateRequiredText(c *Collector, field, value string) {
	if err := ValidateRequired(field, value); err != nil {
		c.Add(err)
		return
	}
	validateText(c, field, value, MaxNameLength)
}

func validateOptionalText(c *Collector, field string, value *string) {
	if value != nil {
		validateText(c, field, *value, MaxTextLength)
	}
}

func validateReference(c *Collector, field, value string) {
	if err := ValidateRequired(field, value); err != nil {
		c.Add(err)
		return
	}
	c.Add(ValidateULID(field, value))
}

// ValidateExerciseInput checks an exercise creation shape.
func ValidateExerciseInput(in types.ExerciseInput) []ValidationError {
	var c Collector
	validateRequiredText(&c, "name", in.Name)
	validateOptionalText(&c, "description", in.Description)
	validateRequiredText(&c, "category", in.Category)
	validateRequiredText(&c, "muscle_group", in.MuscleGroup)
	validateRequiredText(&c, "difficulty_level", in.DifficultyLevel)
	return c.Errors()
}

// ValidateWorkoutInput checks a workout creation shape.
func ValidateWorkoutInput(in types.WorkoutInput) []ValidationError {
	var c Collector
	c.Add(ValidateTime("date", in.Date))
	c.Add(ValidatePresent("duration_minutes", in.DurationMinutes != nil))
	c.Add(ValidateNonNegative("duration_minutes", in.DurationMinutes))
	c.Add(ValidateNonNegative("calories_burned", in.CaloriesBurned))
	validateOptionalText(&c, "notes", in.Notes)
	return c.Errors()
}

// ValidateWorkoutExerciseInput checks a workout entry creation shape.
func ValidateWorkoutExerciseInput(in types.WorkoutExerciseInput) []ValidationError {
	var c Collector
	validateReference(&c, "exercise_id", in.ExerciseID)
	c.Add(ValidateNonNegative("sets", in.Sets))
	c.Add(ValidateNonNegative("reps", in.Reps))
	c.Add(ValidateNonNegative("weight", in.Weight))
	c.Add(ValidateNonNegative("duration_minutes", in.DurationMinutes))
	validateOptionalText(&c, "notes", in.Notes)
	return c.Errors()
}

// ValidateGoalInput checks a goal creation shape. An empty status is
// accepted and later defaults to in_progress.
func ValidateGoalInput(in types.GoalInput) []ValidationError {
	var c Collector
	validateRequiredText(&c, "name", in.Name)
	validateOptionalText(&c, "description", in.Description)
	c.Add(ValidatePresent("target_value", in.TargetValue != nil))
	c.Add(ValidateTime("deadline", in.Deadline))
	validateRequiredText(&c, "category", in.Category)
	if in.Status != "" {
		c.Add(ValidateGoalStatus("status", string(in.Status)))
	}
	return c.Errors()
}

// ValidateGoalStatus checks a status value against the known goal states.
func ValidateGoalStatus(field, status string) *ValidationError {
	return ValidateEnum(field, status, types.GoalStatuses())
}

// ValidatePersonalRecordInput checks a personal record creation shape.
func ValidatePersonalRecordInput(in types.PersonalRecordInput) []ValidationError {
	var c Collector
	validateReference(&c, "exercise_id", in.ExerciseID)
	c.Add(ValidatePresent("value", in.Value != nil))
	c.Add(ValidateTime("date_achieved", in.DateAchieved))
	validateOptionalText(&c, "notes", in.Notes)
	return c.Errors()
}

// ValidateCalorieLogInput checks a calorie log creation shape.
func ValidateCalorieLogInput(in types.CalorieLogInput) []ValidationError {
	var c Collector
	c.Add(ValidateTime("date", in.Date))
	c.Add(ValidatePresent("calories_consumed", in.CaloriesConsumed != nil))
	c.Add(ValidateNonNegative("calories_consumed", in.CaloriesConsumed))
	c.Add(ValidateNonNegative("protein_grams", in.ProteinGrams))
	c.Add(ValidateNonNegative("carbs_grams", in.CarbsGrams))
	c.Add(ValidateNonNegative("fat_grams", in.FatGrams))
	validateOptionalText(&c, "notes", in.Notes)
	return c.Errors()
}
