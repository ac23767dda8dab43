package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// SQLStore is the relational Store implementation. Queries are written with
// '?' placeholders and rebound for the active driver.
type SQLStore struct {
	db     *sqlx.DB
	driver string
}

var _ Store = (*SQLStore)(nil)

// Open connects to the database and configures the pool for the driver.
// It does not run migrations.
func Open(driver, dsn string) (*SQLStore, error) {
	switch driver {
	case DriverSQLite:
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		// One connection: SQLite has a single writer and pragmas are per-connection.
		db.SetMaxOpenConns(1)
		if err := enablePragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable pragmas: %w", err)
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	slog.Info("database connected", "driver", driver)
	return &SQLStore{db: db, driver: driver}, nil
}

// ensureSQLiteDir creates the parent directory of a file-backed database.
func ensureSQLiteDir(dsn string) error {
	path, _, _ := strings.Cut(dsn, "?")
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}
	return nil
}

// enablePragmas sets SQLite pragmas for optimal performance and safety.
func enablePragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Driver returns the database/sql driver name in use.
func (s *SQLStore) Driver() string {
	return s.driver
}

// Ping verifies the database is reachable.
func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func newID() string {
	return ulid.Make().String()
}

// withTx runs fn inside a transaction. The transaction is rolled back on any
// error and committed exactly once otherwise.
func (s *SQLStore) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// exists reports whether a row with id is present in table. table must be a
// trusted constant.
func exists(ctx context.Context, q sqlx.ExtContext, table, id string) (bool, error) {
	var n int
	query := q.Rebind("SELECT COUNT(*) FROM " + table + " WHERE id = ?")
	if err := sqlx.GetContext(ctx, q, &n, query, id); err != nil {
		return false, fmt.Errorf("check %s existence: %w", table, err)
	}
	return n > 0, nil
}

// execAffecting runs a write and maps zero affected rows to notFound.
func execAffecting(ctx context.Context, q sqlx.ExtContext, notFound error, query string, args ...any) error {
	result, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// namedExec runs a named statement built from a struct's db tags.
func namedExec(ctx context.Context, q sqlx.ExtContext, notFound error, query string, arg any) error {
	bound, args, err := q.BindNamed(query, arg)
	if err != nil {
		return fmt.Errorf("bind named query: %w", err)
	}
	result, err := q.ExecContext(ctx, bound, args...)
	if err != nil {
		return err
	}
	if notFound == nil {
		return nil
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

// isNoRows reports whether err is database/sql's empty-result error.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// wrapUnlessNotFound adds operation context to unexpected errors while
// passing sentinel not-found errors through unchanged.
func wrapUnlessNotFound(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
