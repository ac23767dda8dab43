package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hyperengineering/fitlog/migrations"
	"github.com/pressly/goose/v3"
)

// gooseDialects maps database drivers to goose dialect names.
var gooseDialects = map[string]string{
	DriverSQLite:   "sqlite3",
	DriverPostgres: "postgres",
}

// setupGoose points goose at the embedded migrations with the driver's dialect.
func setupGoose(driver string) error {
	// Disable goose's default logging to avoid stdout noise
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations.FS)

	dialect, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("unsupported driver %q", driver)
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return nil
}

// RunMigrations applies all pending database migrations.
// It is an explicit deployment step; opening a store never migrates.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	if err := setupGoose(driver); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB, driver string) error {
	if err := setupGoose(driver); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, "."); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}
	return nil
}

// SchemaVersion returns the currently applied migration version.
func SchemaVersion(ctx context.Context, db *sql.DB, driver string) (int64, error) {
	if err := setupGoose(driver); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Migrate applies pending migrations to the store's database.
func (s *SQLStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.db.DB, s.driver)
}

// MigrateDown rolls back the store's most recent migration.
func (s *SQLStore) MigrateDown(ctx context.Context) error {
	return MigrateDown(ctx, s.db.DB, s.driver)
}

// SchemaVersion returns the store's applied migration version.
func (s *SQLStore) SchemaVersion(ctx context.Context) (int64, error) {
	return SchemaVersion(ctx, s.db.DB, s.driver)
}
