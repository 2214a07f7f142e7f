// Package session persists the authenticated API session on disk.
// The session file is the single source of truth for "logged in":
// absence, corruption, or an empty token all mean unauthenticated.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultFileName is the session file name under the user's home directory.
const DefaultFileName = ".aktus_session"

// Session is the locally persisted proof of authentication: the token
// issued at login and the base URL it was issued for.
type Session struct {
	Token   string `json:"token"`
	BaseURL string `json:"base_url"`
}

// ExpiresAt reports the token expiry when the token happens to be a
// readable JWT. The claim is parsed without signature verification and is
// used only for status display, never for authorization decisions.
// Opaque tokens report no expiry.
func (s *Session) ExpiresAt() (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Store reads and writes the session file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore places the session file in the user's home directory.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return NewStore(filepath.Join(home, DefaultFileName)), nil
}

// Path returns the location of the session file.
func (st *Store) Path() string {
	return st.path
}

// Save writes the session atomically, replacing any previous one.
func (st *Store) Save(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// target so a crash never leaves a half-written session behind.
	tmp, err := os.CreateTemp(filepath.Dir(st.path), filepath.Base(st.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set session file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Rename(tmpName, st.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

// Load returns the stored session, or nil when no usable session exists.
// A missing, unreadable, or corrupt file is treated as "not logged in"
// rather than an error; the caller's remedy is the same either way.
func (st *Store) Load() *Session {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.Token == "" {
		return nil
	}
	return &sess
}

// Clear deletes the session file. Clearing an absent session is a no-op.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
