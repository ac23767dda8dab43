package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperengineering/fitlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server on stdin/stdout.

Logs are written to stderr so they never interleave with protocol traffic.

AVAILABLE TOOLS:

  create_exercise         Add an exercise to the catalog
  list_exercises          List catalog exercises
  log_workout             Log a workout session
  get_workout             Get a workout with its exercises
  add_workout_exercise    Add an exercise to a workout
  create_goal             Create a goal
  list_goals              List a user's goals
  update_goal_progress    Record progress on a goal
  create_personal_record  Record a personal best
  get_exercise_records    List personal records for an exercise
  log_calories            Log calorie intake
  calorie_summary         Summarize intake over a date window`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	cfg, log, err := bootstrap(os.Stderr)
	if err != nil {
		return err
	}
	defer log.Close()

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	return mcp.NewServer(db, Version).Serve(ctx)
}
