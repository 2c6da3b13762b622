// Package session persists the one durable key that lets a returning
// visitor skip onboarding: the matricule.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Store holds the durable session identifier in a single file.
type Store struct {
	path string
}

// NewStore scopes the store to a file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save writes the identifier. Idempotent; overwrites any previous value.
func (s *Store) Save(identifier string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(identifier), 0o600)
}

// Load reads the stored identifier. It never fails: any read problem is
// reported as "no session".
func (s *Store) Load() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", false
	}
	return id, true
}

// Clear deletes the identifier. Idempotent.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
