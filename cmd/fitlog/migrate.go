package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/hyperengineering/fitlog/internal/store"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long:  "Apply, roll back, or inspect schema migrations for the configured database.",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE:  withMigrationStore(runMigrateUp),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE:  withMigrationStore(runMigrateDown),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current schema version",
	Args:  cobra.NoArgs,
	RunE:  withMigrationStore(runMigrateStatus),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// withMigrationStore opens the configured store for a migrate subcommand.
// Logs go to stderr so stdout carries only the command's result.
func withMigrationStore(fn func(ctx context.Context, cmd *cobra.Command, db *store.SQLStore) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer log.Close()

		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		return fn(cmd.Context(), cmd, db)
	}
}

func runMigrateUp(ctx context.Context, cmd *cobra.Command, db *store.SQLStore) error {
	if err := db.Migrate(ctx); err != nil {
		return err
	}
	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Schema up to date (version %d)\n", version)
	return nil
}

func runMigrateDown(ctx context.Context, cmd *cobra.Command, db *store.SQLStore) error {
	if err := db.MigrateDown(ctx); err != nil {
		return err
	}
	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "✓ Rolled back to version %d\n", version)
	return nil
}

func runMigrateStatus(ctx context.Context, cmd *cobra.Command, db *store.SQLStore) error {
	version, err := db.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	if version == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No migrations applied. Run `fitlog migrate up`.")
		return nil
	}
	color.New(color.Faint).Fprintf(cmd.OutOrStdout(), "Schema version: %d (%s)\n", version, db.Driver())
	return nil
}
