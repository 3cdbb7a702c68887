// Package session holds the client-side identity: a locally issued mock JWT
// and the user it names. Authentication is mocked locally; the token shape
// matches what the platform gateway would issue so the backend headers stay
// identical when a real identity provider is wired in.
//
// A Session is passed explicitly into every store and client call. Nothing in
// this repository reads identity from ambient global state.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Session identifies the logged-in user for backend calls.
type Session struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ErrNoSession is returned when no user is logged in.
var ErrNoSession = errors.New("not logged in")

// Present reports whether a user is logged in with an unexpired token. This
// is the only identity fact the rest of the client consumes as a gate.
func (s *Session) Present() bool {
	return s != nil && s.UserID != "" && s.Token != "" && time.Now().Before(s.ExpiresAt)
}

// userNamespace seeds deterministic user IDs so repeated logins with the
// same email map to the same backend user.
var userNamespace = uuid.MustParse("7b09e5a4-3f0c-4a11-9c5e-2d8a41f6b0d3")

// Login performs the local mock login: any credentials are accepted and a
// signed session token is issued for a deterministic user ID.
func Login(email, name string, cfg Config) (*Session, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if name == "" {
		name = "Demo User"
	}
	userID := "user-" + uuid.NewSHA1(userNamespace, []byte(email)).String()

	expires := time.Now().Add(cfg.TokenTTL)
	token, err := issueToken(userID, email, name, expires, cfg)
	if err != nil {
		return nil, fmt.Errorf("issuing session token: %w", err)
	}

	return &Session{
		UserID:    userID,
		Email:     email,
		Name:      name,
		Token:     token,
		ExpiresAt: expires,
	}, nil
}

// Store persists sessions in a file under the user config directory.
type Store struct {
	path string
}

// NewStore returns a Store rooted at dir, or at the default config location
// when dir is empty.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("finding config directory: %w", err)
		}
		dir = filepath.Join(base, "fitctl")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, "session.json")}, nil
}

// Load reads the persisted session. Returns ErrNoSession when none is stored
// or the stored token has expired.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		// Treat a corrupt session file as logged out.
		return nil, ErrNoSession
	}
	if !s.Present() {
		return nil, ErrNoSession
	}
	return &s, nil
}

// Save persists the session for later invocations.
func (st *Store) Save(s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is not an
// error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
