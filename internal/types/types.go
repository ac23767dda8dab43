package types

import (
	"time"
)

// GoalStatus is the lifecycle state of a goal
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalCompleted  GoalStatus = "completed"
	GoalFailed     GoalStatus = "failed"
)

// GoalStatuses lists every accepted goal status in display order.
func GoalStatuses() []string {
	return []string{string(GoalInProgress), string(GoalCompleted), string(GoalFailed)}
}

// Exercise is a catalogued movement that workouts and records point at.
type Exercise struct {
	ID              string  `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Description     *string `db:"description" json:"description"`
	Category        string  `db:"category" json:"category"`
	MuscleGroup     string  `db:"muscle_group" json:"muscle_group"`
	DifficultyLevel string  `db:"difficulty_level" json:"difficulty_level"`
}

// Workout is a dated training session owned by a user.
type Workout struct {
	ID              string            `db:"id" json:"id"`
	UserID          int64             `db:"user_id" json:"user_id"`
	Date            time.Time         `db:"date" json:"date"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	CaloriesBurned  *int              `db:"calories_burned" json:"calories_burned"`
	Notes           *string           `db:"notes" json:"notes"`
	Exercises       []WorkoutExercise `db:"-" json:"exercises"`
}

// WorkoutExercise is one exercise performed inside a workout, with the
// per-instance performance data.
type WorkoutExercise struct {
	ID              string   `db:"id" json:"id"`
	WorkoutID       string   `db:"workout_id" json:"workout_id"`
	ExerciseID      string   `db:"exercise_id" json:"exercise_id"`
	Sets            *int     `db:"sets" json:"sets"`
	Reps            *int     `db:"reps" json:"reps"`
	Weight          *float64 `db:"weight" json:"weight"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes"`
	Notes           *string  `db:"notes" json:"notes"`
	Exercise        Exercise `db:"exercise" json:"exercise"`
}

// Goal is a user-defined target metric with a deadline.
type Goal struct {
	ID           string     `db:"id" json:"id"`
	UserID       int64      `db:"user_id" json:"user_id"`
	Name         string     `db:"name" json:"name"`
	Description  *string    `db:"description" json:"description"`
	TargetValue  float64    `db:"target_value" json:"target_value"`
	CurrentValue float64    `db:"current_value" json:"current_value"`
	Deadline     time.Time  `db:"deadline" json:"deadline"`
	Status       GoalStatus `db:"status" json:"status"`
	Category     string     `db:"category" json:"category"`
}

// ApplyProgress records a new current value. Reaching the target completes
// the goal; falling short leaves the status untouched.
func (g *Goal) ApplyProgress(value float64) {
	g.CurrentValue = value
	if value >= g.TargetValue {
		g.Status = GoalCompleted
	}
}

// PersonalRecord is a best value a user achieved for an exercise.
type PersonalRecord struct {
	ID           string    `db:"id" json:"id"`
	UserID       int64     `db:"user_id" json:"user_id"`
	ExerciseID   string    `db:"exercise_id" json:"exercise_id"`
	Value        float64   `db:"value" json:"value"`
	DateAchieved time.Time `db:"date_achieved" json:"date_achieved"`
	Notes        *string   `db:"notes" json:"notes"`
	Exercise     Exercise  `db:"exercise" json:"exercise"`
}

// CalorieLog is a dated entry of consumed calories and macronutrients.
type CalorieLog struct {
	ID               string    `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	Date             time.Time `db:"date" json:"date"`
	CaloriesConsumed int       `db:"calories_consumed" json:"calories_consumed"`
	ProteinGrams     *float64  `db:"protein_grams" json:"protein_grams"`
	CarbsGrams       *float64  `db:"carbs_grams" json:"carbs_grams"`
	FatGrams         *float64  `db:"fat_grams" json:"fat_grams"`
	Notes            *string   `db:"notes" json:"notes"`
}

// DefaultExerciseLimit is the page size when a listing names no limit.
const DefaultExerciseLimit = 100

// ExerciseFilter narrows an exercise listing. Empty strings match everything.
type ExerciseFilter struct {
	Category    string
	MuscleGroup string
	Skip        int
	Limit       int
}

// GoalFilter narrows a goal listing to one user and optionally one status.
type GoalFilter struct {
	UserID int64
	Status GoalStatus
}

// CalorieLogFilter narrows a calorie log listing. Nil bounds are open.
type CalorieLogFilter struct {
	UserID int64
	Start  *time.Time
	End    *time.Time
}

// CalorieTotals holds the raw sums for a user's logs inside a date window.
type CalorieTotals struct {
	LogCount int     `db:"log_count"`
	Calories int64   `db:"calories"`
	Protein  float64 `db:"protein"`
	Carbs    float64 `db:"carbs"`
	Fat      float64 `db:"fat"`
}

// CalorieSummary is the aggregate returned for a date window.
type CalorieSummary struct {
	UserID           int64     `json:"user_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Days             int       `json:"days"`
	LogCount         int       `json:"log_count"`
	TotalCalories    int64     `json:"total_calories"`
	AvgDailyCalories float64   `json:"avg_daily_calories"`
	TotalProtein     float64   `json:"total_protein"`
	TotalCarbs       float64   `json:"total_carbs"`
	TotalFat         float64   `json:"total_fat"`
}

// DefaultSummaryWindow is used when a summary request has no end date.
const DefaultSummaryWindow = 7 * 24 * time.Hour

// SummaryDays returns the number of whole days between start and end, never
// less than one. A same-day window averages over a single day.
func SummaryDays(start, end time.Time) int {
	days := int(end.Sub(start) / (24 * time.Hour))
	if days < 1 {
		return 1
	}
	return days
}

// NewCalorieSummary derives the averaged summary from raw totals.
func NewCalorieSummary(userID int64, start, end time.Time, totals CalorieTotals) *CalorieSummary {
	days := SummaryDays(start, end)
	return &CalorieSummary{
		UserID:           userID,
		StartDate:        start,
		EndDate:          end,
		Days:             days,
		LogCount:         totals.LogCount,
		TotalCalories:    totals.Calories,
		AvgDailyCalories: float64(totals.Calories) / float64(days),
		TotalProtein:     totals.Protein,
		TotalCarbs:       totals.Carbs,
		TotalFat:         totals.Fat,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// MessageResponse confirms an operation that has no entity to return.
type MessageResponse struct {
	Message string `json:"message"`
}
