package main

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

// executeCmd runs the root command with args against a temp SQLite database
// and returns captured stdout.
func executeCmd(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("FITLOG_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("FITLOG_DB_DRIVER", "sqlite")
	t.Setenv("FITLOG_DB_DSN", dsn)
	t.Setenv("FITLOG_LOG_FORMAT", "text")
	t.Setenv("SENTRY_DSN", "")

	// bootstrap replaces the default logger
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	rootCmd.SetOut(nil)
	rootCmd.SetErr(nil)
	rootCmd.SetArgs(nil)

	return outBuf.String(), err
}

func TestMigrate_UpStatusDown(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "fitlog.db")

	// Fresh database reports nothing applied
	out, err := executeCmd(t, dsn, "migrate", "status")
	if err != nil {
		t.Fatalf("migrate status error = %v", err)
	}
	if !strings.Contains(out, "No migrations applied") {
		t.Errorf("status on fresh db = %q", out)
	}

	out, err = executeCmd(t, dsn, "migrate", "up")
	if err != nil {
		t.Fatalf("migrate up error = %v", err)
	}
	if !strings.Contains(out, "Schema up to date (version 1)") {
		t.Errorf("migrate up output = %q", out)
	}

	// Up is idempotent
	if _, err := executeCmd(t, dsn, "migrate", "up"); err != nil {
		t.Fatalf("second migrate up error = %v", err)
	}

	out, err = executeCmd(t, dsn, "migrate", "status")
	if err != nil {
		t.Fatalf("migrate status error = %v", err)
	}
	if !strings.Contains(out, "Schema version: 1 (sqlite)") {
		t.Errorf("status after up = %q", out)
	}

	out, err = executeCmd(t, dsn, "migrate", "down")
	if err != nil {
		t.Fatalf("migrate down error = %v", err)
	}
	if !strings.Contains(out, "Rolled back to version 0") {
		t.Errorf("migrate down output = %q", out)
	}
}

func TestMigrate_InvalidConfig(t *testing.T) {
	t.Setenv("FITLOG_DB_DRIVER", "mysql")

	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"migrate", "status"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for unsupported driver, got nil")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCmd(t, filepath.Join(t.TempDir(), "unused.db"), "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if out != "fitlog "+Version+"\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestSnapshotCommand_LocalOnly(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "fitlog.db")
	t.Setenv("FITLOG_SNAPSHOT_DIR", filepath.Join(dir, "snapshots"))
	t.Setenv("FITLOG_SNAPSHOT_BUCKET", "")

	if _, err := executeCmd(t, dsn, "migrate", "up"); err != nil {
		t.Fatalf("migrate up error = %v", err)
	}

	out, err := executeCmd(t, dsn, "snapshot")
	if err != nil {
		t.Fatalf("snapshot error = %v", err)
	}
	if !strings.Contains(out, "Snapshot written to "+filepath.Join(dir, "snapshots", "fitlog-")) {
		t.Errorf("snapshot output = %q", out)
	}
	if strings.Contains(out, "Uploaded") {
		t.Errorf("snapshot without bucket should not upload: %q", out)
	}

	// A second snapshot in the same second gets its own file
	if _, err := executeCmd(t, dsn, "snapshot"); err != nil {
		t.Fatalf("second snapshot error = %v", err)
	}
	files, err := filepath.Glob(filepath.Join(dir, "snapshots", "fitlog-*.db"))
	if err != nil || len(files) != 2 {
		t.Errorf("snapshot files = %v (err %v), want 2", files, err)
	}
}
