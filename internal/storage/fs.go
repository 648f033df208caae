package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FSStore stores objects as files under a root directory. It exists for
// local development and tests; PresignGet returns the stable file path
// since the filesystem has no notion of expiring URLs.
type FSStore struct {
	root string
}

// NewFSStore creates a filesystem-backed store rooted at dir.
func NewFSStore(dir string) (*FSStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage root directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", dir, err)
	}
	return &FSStore{root: dir}, nil
}

// Get reads the file stored under key.
func (s *FSStore) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Put writes body to the file under key, creating parent directories as needed.
func (s *FSStore) Put(_ context.Context, key string, body []byte, _ string) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// PresignGet returns the absolute path of the stored file.
func (s *FSStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	abs, err := filepath.Abs(s.path(key))
	if err != nil {
		return "", fmt.Errorf("failed to resolve path for %s: %w", key, err)
	}
	return abs, nil
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}
