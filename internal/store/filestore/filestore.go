// Package filestore keeps site content as one JSON document per entity.
//
// Every write replaces the whole document. There is no locking: two writers
// racing on the same document lose one update. The site assumes a single
// admin at a time.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"chitrakala-api/internal/domain/content"
)

const (
	docUsers    = "users"
	docArtworks = "artworks"
	docAbout    = "about"
	docContact  = "contact"
	docSettings = "settings"
)

type Store struct {
	dir string
}

var _ content.Store = (*Store)(nil)

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// readEntity decodes the named document into v. A missing document is
// reported as found=false with no error; callers pick the default.
func (s *Store) readEntity(name string, v any) (bool, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s.json: %w", name, err)
	}
	return true, nil
}

func (s *Store) writeEntity(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	return os.WriteFile(s.path(name), data, 0644)
}

// RemoveUsers deletes users.json so the default admin is recreated.
func (s *Store) RemoveUsers() error {
	err := os.Remove(s.path(docUsers))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) Close() error { return nil }
