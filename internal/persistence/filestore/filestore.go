// Package filestore implements persistence.Medium as one JSON document per key
// inside a directory.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/afero"

	"example.com/fitpulse/internal/persistence"
)

const fileExt = ".json"

// Medium keeps each key in <dir>/<key>.json.
type Medium struct {
	fs     afero.Fs
	dir    string
	mu     sync.Mutex
	closed bool
}

// New prepares dir on fs and returns a Medium rooted there.
func New(fs afero.Fs, dir string) (*Medium, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &Medium{fs: fs, dir: dir}, nil
}

// NewOS returns a Medium on the host filesystem.
func NewOS(dir string) (*Medium, error) {
	return New(afero.NewOsFs(), dir)
}

func (m *Medium) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(m.dir, key+fileExt), nil
}

// Get implements persistence.Medium.
func (m *Medium) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, persistence.ErrUnavailable
	}
	path, err := m.path(key)
	if err != nil {
		return nil, err
	}

	value, err := afero.ReadFile(m.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return value, nil
}

// Set writes to a temporary file and renames it over the target.
func (m *Medium) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrUnavailable
	}
	path, err := m.path(key)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := afero.WriteFile(m.fs, tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := m.fs.Rename(tmp, path); err != nil {
		_ = m.fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Delete implements persistence.Medium.
func (m *Medium) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return persistence.ErrUnavailable
	}
	path, err := m.path(key)
	if err != nil {
		return err
	}

	if err := m.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Close marks the medium unavailable.
func (m *Medium) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
