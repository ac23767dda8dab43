package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
)

// Source writes a consistent database copy to a file path.
type Source interface {
	WriteSnapshot(ctx context.Context, path string) error
}

// Result describes a completed snapshot.
type Result struct {
	Path      string    `json:"path"`
	ObjectKey string    `json:"object_key,omitempty"`
	URL       string    `json:"url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Uploaded  bool      `json:"uploaded"`
}

// Service writes snapshots into a local directory and hands them to an
// Uploader.
type Service struct {
	source   Source
	uploader Uploader
	dir      string
	now      func() time.Time
	newID    func() string
}

// NewService creates a Service writing snapshot files under dir.
func NewService(source Source, uploader Uploader, dir string) *Service {
	return &Service{
		source:   source,
		uploader: uploader,
		dir:      dir,
		now:      time.Now,
		newID:    func() string { return ulid.Make().String() },
	}
}

// Create writes a new snapshot and uploads it when storage is configured.
func (s *Service) Create(ctx context.Context) (*Result, error) {
	name := fileName(s.now(), s.newID())
	path := filepath.Join(s.dir, name)

	if err := s.source.WriteSnapshot(ctx, path); err != nil {
		return nil, err
	}
	slog.Info("snapshot written", "path", path)

	key := objectKey(name)
	if err := s.uploader.Upload(ctx, key, path); err != nil {
		return nil, err
	}

	url, expiry, err := s.uploader.PresignedURL(ctx, key)
	if errors.Is(err, ErrNotConfigured) {
		return &Result{Path: path}, nil
	}
	if err != nil {
		return nil, err
	}
	slog.Info("snapshot uploaded", "key", key)

	return &Result{
		Path:      path,
		ObjectKey: key,
		URL:       url,
		ExpiresAt: expiry,
		Uploaded:  true,
	}, nil
}

// fileName is sortable by creation time. The id keeps snapshots taken in
// the same second apart.
func fileName(t time.Time, id string) string {
	return fmt.Sprintf("fitlog-%s-%s.db", t.UTC().Format("20060102T150405Z"), id)
}

// objectKey returns the S3 object key for a snapshot file.
func objectKey(name string) string {
	return "snapshots/" + name
}
