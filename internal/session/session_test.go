package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_DeterministicUserID(t *testing.T) {
	cfg := DefaultConfig()

	first, err := Login("ana@example.com", "Ana", cfg)
	require.NoError(t, err)
	second, err := Login("ana@example.com", "Ana", cfg)
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID, "same email maps to the same user")
	assert.NotEqual(t, first.UserID, mustLogin(t, "ben@example.com").UserID)
}

func TestLogin_RequiresEmail(t *testing.T) {
	_, err := Login("", "Ana", DefaultConfig())
	assert.Error(t, err)
}

func TestLogin_DefaultsName(t *testing.T) {
	s := mustLogin(t, "ana@example.com")
	assert.Equal(t, "Demo User", s.Name)
}

func TestLogin_TokenRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	s, err := Login("ana@example.com", "Ana", cfg)
	require.NoError(t, err)

	claims, err := ParseToken(s.Token, cfg)
	require.NoError(t, err)
	assert.Equal(t, s.UserID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.WithinDuration(t, s.ExpiresAt, claims.ExpiresAt, time.Second)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	s := mustLogin(t, "ana@example.com")

	other := DefaultConfig()
	other.Secret = "different-secret"
	_, err := ParseToken(s.Token, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	cfg := DefaultConfig()
	for _, token := range []string{"", "   ", "not.a.jwt"} {
		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestParseToken_RejectsExpired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TokenTTL = -time.Hour

	s, err := Login("ana@example.com", "Ana", cfg)
	require.NoError(t, err)

	_, err = ParseToken(s.Token, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession_Present(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.Present())
	assert.False(t, (&Session{}).Present())

	expired := mustLogin(t, "ana@example.com")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.False(t, expired.Present())

	assert.True(t, mustLogin(t, "ana@example.com").Present())
}

func TestStore_SaveLoadClear(t *testing.T) {
	store := testStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	s := mustLogin(t, "ana@example.com")
	require.NoError(t, store.Save(s))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, s.UserID, loaded.UserID)
	assert.Equal(t, s.Token, loaded.Token)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)

	// Clearing an already-clear store is fine.
	assert.NoError(t, store.Clear())
}

func TestStore_Load_CorruptFileMeansLoggedOut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{broken"), 0o600))
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestStore_Load_ExpiredSessionMeansLoggedOut(t *testing.T) {
	store := testStore(t)

	s := mustLogin(t, "ana@example.com")
	s.ExpiresAt = time.Now().Add(-time.Minute)
	require.NoError(t, store.Save(s))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoSession)
}

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func mustLogin(t *testing.T, email string) *Session {
	t.Helper()
	s, err := Login(email, "", DefaultConfig())
	require.NoError(t, err)
	return s
}
