// Package sessionfile persists the session triple as a small JSON file.
//
// Writes are atomic: the new content goes to a .tmp file first and then
// replaces the real file with os.Rename, so a crash mid-write can never
// leave a torn triple behind.
package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ombank/teller/internal/domain"
)

// storedSession is the on-disk representation of the session triple.
type storedSession struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Store implements domain.SessionRepository on top of a single JSON file.
type Store struct {
	path string
}

var _ domain.SessionRepository = (*Store)(nil)

// NewStore creates a session store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted triple. A missing file yields an
// unauthenticated zero session and no error.
func (s *Store) Load() (domain.Session, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("failed to open session file: %w", err)
	}
	defer f.Close()

	var stored storedSession
	if err := json.NewDecoder(f).Decode(&stored); err != nil {
		return domain.Session{}, fmt.Errorf("failed to decode session file: %w", err)
	}

	// The role is trusted as previously stored; restore never contacts
	// the server.
	return domain.Session{
		Token:         stored.Token,
		Username:      stored.Username,
		Role:          domain.RoleFromAdminFlag(stored.IsAdmin),
		Authenticated: stored.Token != "",
	}, nil
}

// Save writes the full triple atomically via a temp file and rename.
func (s *Store) Save(session domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	stored := storedSession{
		Token:    session.Token,
		Username: session.Username,
		IsAdmin:  session.Role == domain.RoleAdmin,
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create session temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stored); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close session temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Clear removes the persisted triple. Removing an absent file is not an
// error, which makes logout idempotent.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
