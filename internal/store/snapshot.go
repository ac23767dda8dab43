package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// WriteSnapshot writes a consistent copy of the database to path using
// VACUUM INTO. The target must not exist. Postgres deployments should use
// pg_dump and get ErrSnapshotUnsupported.
func (s *SQLStore) WriteSnapshot(ctx context.Context, path string) error {
	if s.driver != DriverSQLite {
		return ErrSnapshotUnsupported
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
