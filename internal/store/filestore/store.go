// Package filestore implements the catalog store as flat JSON files, one
// array per collection, mirroring the layout of the original file-backed
// deployment. Every write rewrites the whole collection file; a mutex
// serializes writers within the process, and concurrent external writers are
// an accepted last-writer-wins limitation.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	appsFile     = "apps.json"
	badgesFile   = "badges.json"
	usersFile    = "users.json"
	settingsFile = "settings.json"
)

// Store provides JSON-file persistence for apps, badges, users and settings.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// Open creates a Store rooted at dir, creating the directory if absent.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Name identifies the backend for startup logging.
func (s *Store) Name() string {
	return "file"
}

// Close is a no-op; files are closed after every operation.
func (s *Store) Close() error {
	return nil
}

// EnsureSchema is a no-op: the file store is schema-less by construction.
func (s *Store) EnsureSchema(ctx context.Context) error {
	return nil
}

// readJSON loads a collection file into out. A missing file leaves out at
// its zero value rather than failing, matching first-run behavior.
func (s *Store) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
