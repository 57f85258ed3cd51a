// Package session owns the persisted identity record and the running
// session state derived from it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LEEJEHEON/moneycheck/internal/common"
)

const identityFile = "identity.json"

// Identity is the durable record written at login and cleared at logout:
// who the user is, the server-issued role flag, and the session cookie.
type Identity struct {
	Username      string `json:"username"`
	SessionCookie string `json:"session_cookie"`
	UserID        int    `json:"user_id"`
	IsAdmin       bool   `json:"is_admin"`
}

// Store reads and writes the identity record under a config directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, identityFile)
}

// Load reads the persisted identity. Returns common.ErrNoIdentity when no
// identity has been saved.
func (s *Store) Load() (*Identity, error) {
	raw, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNoIdentity
		}
		return nil, fmt.Errorf("failed to read identity: %w", err)
	}

	var id Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return nil, fmt.Errorf("failed to decode identity: %w", err)
	}

	if id.Username == "" || id.SessionCookie == "" {
		return nil, common.ErrNoIdentity
	}

	return &id, nil
}

// Save persists the identity record, creating the directory if needed.
func (s *Store) Save(id Identity) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	raw, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}

	if err := os.WriteFile(s.path(), raw, 0o600); err != nil {
		return fmt.Errorf("failed to write identity: %w", err)
	}

	return nil
}

// Clear removes the persisted identity. Clearing an absent identity is not
// an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	return nil
}
