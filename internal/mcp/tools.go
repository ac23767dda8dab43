package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hyperengineering/fitlog/internal/types"
	"github.com/hyperengineering/fitlog/internal/validation"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler errors are returned to the client as tool results with IsError
// set, never as protocol errors.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_exercise",
		Description: "Add an exercise to the shared catalog",
	}, s.handleCreateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally filtered by category or muscle group",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout session for a user",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get a workout with every exercise performed in it",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_workout_exercise",
		Description: "Record an exercise performed inside an existing workout",
	}, s.handleAddWorkoutExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_goal",
		Description: "Create a fitness goal with a target value and deadline",
	}, s.handleCreateGoal)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List a user's goals, optionally filtered by status",
	}, s.handleListGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal_progress",
		Description: "Set a goal's current value; reaching the target marks it completed",
	}, s.handleUpdateGoalProgress)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_personal_record",
		Description: "Record a personal best for an exercise",
	}, s.handleCreatePersonalRecord)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise_records",
		Description: "List a user's personal records for an exercise, best first",
	}, s.handleGetExerciseRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_calories",
		Description: "Log calories and macronutrients consumed on a date",
	}, s.handleLogCalories)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calorie_summary",
		Description: "Summarize calorie intake over a date window (defaults to one week)",
	}, s.handleCalorieSummary)
}

// Tool input types

type createExerciseInput struct {
	Name            string  `json:"name" jsonschema:"Exercise name"`
	Description     *string `json:"description,omitempty" jsonschema:"Optional description"`
	Category        string  `json:"category" jsonschema:"Category such as strength or cardio"`
	MuscleGroup     string  `json:"muscle_group" jsonschema:"Primary muscle group"`
	DifficultyLevel string  `json:"difficulty_level" jsonschema:"Difficulty such as beginner or advanced"`
}

type listExercisesInput struct {
	Category    string `json:"category,omitempty" jsonschema:"Only exercises in this category"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Only exercises for this muscle group"`
	Skip        int    `json:"skip,omitempty" jsonschema:"Number of exercises to skip"`
	Limit       *int   `json:"limit,omitempty" jsonschema:"Max results (default 100)"`
}

type logWorkoutInput struct {
	UserID          int64   `json:"user_id" jsonschema:"Owning user"`
	Date            string  `json:"date" jsonschema:"Workout date (YYYY-MM-DD or RFC 3339)"`
	DurationMinutes *int    `json:"duration_minutes" jsonschema:"Duration in minutes"`
	CaloriesBurned  *int    `json:"calories_burned,omitempty" jsonschema:"Calories burned"`
	Notes           *string `json:"notes,omitempty" jsonschema:"Workout notes"`
}

type getWorkoutInput struct {
	ID string `json:"id" jsonschema:"Workout ID"`
}

type addWorkoutExerciseInput struct {
	WorkoutID       string   `json:"workout_id" jsonschema:"Workout ID"`
	ExerciseID      string   `json:"exercise_id" jsonschema:"Exercise ID"`
	Sets            *int     `json:"sets,omitempty" jsonschema:"Sets performed"`
	Reps            *int     `json:"reps,omitempty" jsonschema:"Reps per set"`
	Weight          *float64 `json:"weight,omitempty" jsonschema:"Weight used"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" jsonschema:"Duration in minutes"`
	Notes           *string  `json:"notes,omitempty" jsonschema:"Entry notes"`
}

type createGoalInput struct {
	UserID       int64    `json:"user_id" jsonschema:"Owning user"`
	Name         string   `json:"name" jsonschema:"Goal name"`
	Description  *string  `json:"description,omitempty" jsonschema:"Optional description"`
	TargetValue  *float64 `json:"target_value" jsonschema:"Value that completes the goal"`
	CurrentValue *float64 `json:"current_value,omitempty" jsonschema:"Starting value (default 0)"`
	Deadline     string   `json:"deadline" jsonschema:"Deadline (YYYY-MM-DD or RFC 3339)"`
	Category     string   `json:"category" jsonschema:"Goal category"`
	Status       string   `json:"status,omitempty" jsonschema:"in_progress, completed or failed (default in_progress)"`
}

type listGoalsInput struct {
	UserID int64  `json:"user_id" jsonschema:"Owning user"`
	Status string `json:"status,omitempty" jsonschema:"Only goals with this status"`
}

type updateGoalProgressInput struct {
	ID           string  `json:"id" jsonschema:"Goal ID"`
	CurrentValue float64 `json:"current_value" jsonschema:"New current value"`
}

type createPersonalRecordInput struct {
	UserID       int64    `json:"user_id" jsonschema:"Owning user"`
	ExerciseID   string   `json:"exercise_id" jsonschema:"Exercise ID"`
	Value        *float64 `json:"value" jsonschema:"Record value"`
	DateAchieved string   `json:"date_achieved" jsonschema:"Date achieved (YYYY-MM-DD or RFC 3339)"`
	Notes        *string  `json:"notes,omitempty" jsonschema:"Record notes"`
}

type getExerciseRecordsInput struct {
	UserID     int64  `json:"user_id" jsonschema:"Owning user"`
	ExerciseID string `json:"exercise_id" jsonschema:"Exercise ID"`
}

type logCaloriesInput struct {
	UserID           int64    `json:"user_id" jsonschema:"Owning user"`
	Date             string   `json:"date" jsonschema:"Log date (YYYY-MM-DD or RFC 3339)"`
	CaloriesConsumed *int     `json:"calories_consumed" jsonschema:"Calories consumed"`
	ProteinGrams     *float64 `json:"protein_grams,omitempty" jsonschema:"Protein in grams"`
	CarbsGrams       *float64 `json:"carbs_grams,omitempty" jsonschema:"Carbohydrates in grams"`
	FatGrams         *float64 `json:"fat_grams,omitempty" jsonschema:"Fat in grams"`
	Notes            *string  `json:"notes,omitempty" jsonschema:"Log notes"`
}

type calorieSummaryInput struct {
	UserID    int64  `json:"user_id" jsonschema:"Owning user"`
	StartDate string `json:"start_date" jsonschema:"Window start (YYYY-MM-DD or RFC 3339)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Window end, inclusive (default start plus 7 days)"`
}

// invalidInputError reports every validation failure of one tool call.
type invalidInputError struct {
	errs []validation.ValidationError
}

func (e *invalidInputError) Error() string {
	parts := make([]string, len(e.errs))
	for i, ve := range e.errs {
		parts[i] = ve.Error()
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// checkInput returns an error when c holds validation failures.
func checkInput(c *validation.Collector) error {
	if c.HasErrors() {
		return &invalidInputError{errs: c.Errors()}
	}
	return nil
}

// parseDate parses a date argument, leaving a zero time when value is empty
// so the required-field check reports it.
func parseDate(c *validation.Collector, field, value string) time.Time {
	if strings.TrimSpace(value) == "" {
		return time.Time{}
	}
	t, verr := validation.ParseDate(field, value)
	c.Add(verr)
	return t
}

// Tool handlers

func (s *Server) handleCreateExercise(ctx context.Context, req *mcp.CallToolRequest, input createExerciseInput) (*mcp.CallToolResult, any, error) {
	in := types.ExerciseInput{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		MuscleGroup:     input.MuscleGroup,
		DifficultyLevel: input.DifficultyLevel,
	}
	var c validation.Collector
	c.AddAll(validation.ValidateExerciseInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	exercise, err := s.store.CreateExercise(ctx, in.Exercise())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil, exercise, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	c.Add(validation.ValidateNonNegative("skip", &input.Skip))
	c.Add(validation.ValidateNonNegative("limit", input.Limit))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}
	limit := types.DefaultExerciseLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	exercises, err := s.store.ListExercises(ctx, types.ExerciseFilter{
		Category:    input.Category,
		MuscleGroup: input.MuscleGroup,
		Skip:        input.Skip,
		Limit:       limit,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return nil, exercises, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	in := types.WorkoutInput{
		Date:            parseDate(&c, "date", input.Date),
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
	}
	c.AddAll(validation.ValidateWorkoutInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	workout, err := s.store.CreateWorkout(ctx, in.Workout(input.UserID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log workout: %w", err)
	}
	return nil, workout, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input getWorkoutInput) (*mcp.CallToolResult, any, error) {
	workout, err := s.store.GetWorkout(ctx, input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return nil, workout, nil
}

func (s *Server) handleAddWorkoutExercise(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutExerciseInput) (*mcp.CallToolResult, any, error) {
	in := types.WorkoutExerciseInput{
		ExerciseID:      input.ExerciseID,
		Sets:            input.Sets,
		Reps:            input.Reps,
		Weight:          input.Weight,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
	}
	var c validation.Collector
	c.Add(validation.ValidateRequired("workout_id", input.WorkoutID))
	c.AddAll(validation.ValidateWorkoutExerciseInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	entry, err := s.store.AddWorkoutExercise(ctx, in.WorkoutExercise(input.WorkoutID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to add exercise to workout: %w", err)
	}
	return nil, entry, nil
}

func (s *Server) handleCreateGoal(ctx context.Context, req *mcp.CallToolRequest, input createGoalInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	in := types.GoalInput{
		Name:         input.Name,
		Description:  input.Description,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Deadline:     parseDate(&c, "deadline", input.Deadline),
		Category:     input.Category,
		Status:       types.GoalStatus(input.Status),
	}
	c.AddAll(validation.ValidateGoalInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	goal, err := s.store.CreateGoal(ctx, in.Goal(input.UserID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create goal: %w", err)
	}
	return nil, goal, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	if input.Status != "" {
		c.Add(validation.ValidateGoalStatus("status", input.Status))
	}
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	goals, err := s.store.ListGoals(ctx, types.GoalFilter{
		UserID: input.UserID,
		Status: types.GoalStatus(input.Status),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return nil, goals, nil
}

func (s *Server) handleUpdateGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input updateGoalProgressInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	c.Add(validation.ValidateFinite("current_value", input.CurrentValue))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	goal, err := s.store.UpdateGoalProgress(ctx, input.ID, input.CurrentValue)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update goal progress: %w", err)
	}
	return nil, goal, nil
}

func (s *Server) handleCreatePersonalRecord(ctx context.Context, req *mcp.CallToolRequest, input createPersonalRecordInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	in := types.PersonalRecordInput{
		ExerciseID:   input.ExerciseID,
		Value:        input.Value,
		DateAchieved: parseDate(&c, "date_achieved", input.DateAchieved),
		Notes:        input.Notes,
	}
	c.AddAll(validation.ValidatePersonalRecordInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	record, err := s.store.CreatePersonalRecord(ctx, in.PersonalRecord(input.UserID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create personal record: %w", err)
	}
	return nil, record, nil
}

func (s *Server) handleGetExerciseRecords(ctx context.Context, req *mcp.CallToolRequest, input getExerciseRecordsInput) (*mcp.CallToolResult, any, error) {
	records, err := s.store.ListExerciseRecords(ctx, input.ExerciseID, input.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list personal records: %w", err)
	}
	return nil, records, nil
}

func (s *Server) handleLogCalories(ctx context.Context, req *mcp.CallToolRequest, input logCaloriesInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	in := types.CalorieLogInput{
		Date:             parseDate(&c, "date", input.Date),
		CaloriesConsumed: input.CaloriesConsumed,
		ProteinGrams:     input.ProteinGrams,
		CarbsGrams:       input.CarbsGrams,
		FatGrams:         input.FatGrams,
		Notes:            input.Notes,
	}
	c.AddAll(validation.ValidateCalorieLogInput(in))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	log, err := s.store.CreateCalorieLog(ctx, in.CalorieLog(input.UserID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to log calories: %w", err)
	}
	return nil, log, nil
}

func (s *Server) handleCalorieSummary(ctx context.Context, req *mcp.CallToolRequest, input calorieSummaryInput) (*mcp.CallToolResult, any, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("start_date", input.StartDate))
	start := parseDate(&c, "start_date", input.StartDate)
	end := start.Add(types.DefaultSummaryWindow)
	if input.EndDate != "" {
		end = parseDate(&c, "end_date", input.EndDate)
	}
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}
	c.Add(validation.ValidateDateRange("end_date", start, end))
	if err := checkInput(&c); err != nil {
		return nil, nil, err
	}

	summary, err := s.store.CalorieSummary(ctx, input.UserID, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize calories: %w", err)
	}
	return nil, summary, nil
}
