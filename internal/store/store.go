// Package store maintains the in-memory mirror of the current user's
// activities. The activity service is the source of truth; the mirror is
// mutated only after the service confirms a write, so a rejected write never
// needs a rollback.
//
// The store is confined to the single logical thread of control driving the
// client: one user action runs to completion before the next is processed,
// and no other goroutine touches the mirror.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/openfit/fitctl/internal/api"
	"github.com/openfit/fitctl/internal/domain"
	"github.com/openfit/fitctl/internal/session"
)

var (
	// ErrLoadFailed indicates the initial mirror load did not complete; the
	// mirror keeps its previous contents.
	ErrLoadFailed = errors.New("loading activities failed")

	// ErrCreateFailed indicates a create was rejected; the mirror is
	// unchanged.
	ErrCreateFailed = errors.New("tracking activity failed")

	// ErrUpdateFailed indicates an update was rejected; the mirror is
	// unchanged.
	ErrUpdateFailed = errors.New("updating activity failed")

	// ErrDeleteFailed indicates a delete was rejected; the mirror is
	// unchanged.
	ErrDeleteFailed = errors.New("deleting activity failed")
)

// IsNotFound reports whether err was ultimately caused by an unknown
// activity ID.
func IsNotFound(err error) bool {
	return errors.Is(err, api.ErrNotFound)
}

// Store is the client-held mirror of server-side activity data.
type Store struct {
	client     api.Client
	activities []domain.Activity
	loaded     bool
}

// New creates an empty Store backed by client. Call Load to populate it.
func New(client api.Client) *Store {
	return &Store{client: client}
}

// Loaded reports whether Load has completed at least once.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Load replaces the mirror with the server's current activity list. On
// failure the mirror keeps its last-known-good contents.
func (s *Store) Load(ctx context.Context, sess *session.Session, filter api.ListFilter) error {
	activities, err := s.client.List(ctx, sess, filter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	s.activities = activities
	s.loaded = true
	return nil
}

// List returns a snapshot of the mirror, newest first: server-defined order
// from the initial load, with activities created since prepended.
func (s *Store) List() []domain.Activity {
	out := make([]domain.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Create submits the draft and, once the server confirms, prepends the
// returned activity (with its server-assigned ID) to the mirror.
func (s *Store) Create(ctx context.Context, sess *session.Session, draft domain.Draft) (*domain.Activity, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	created, err := s.client.Create(ctx, sess, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateFailed, err)
	}

	s.activities = append([]domain.Activity{*created}, s.activities...)
	return created, nil
}

// Update sends the full replacement draft and, once the server confirms,
// replaces the matching mirror entry in place, preserving its position. An
// ID unknown to the server fails with a not-found cause.
func (s *Store) Update(ctx context.Context, sess *session.Session, id string, draft domain.Draft) (*domain.Activity, error) {
	if err := draft.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	updated, err := s.client.Update(ctx, sess, id, draft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	replaced := false
	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities[i] = *updated
			replaced = true
			break
		}
	}
	if !replaced {
		// The server knew an ID the mirror did not (stale partial load);
		// surface the confirmed record rather than dropping it.
		s.activities = append([]domain.Activity{*updated}, s.activities...)
	}
	return updated, nil
}

// Remove requests deletion and, once the server confirms, removes the
// matching mirror entry.
func (s *Store) Remove(ctx context.Context, sess *session.Session, id string) error {
	if err := s.client.Delete(ctx, sess, id); err != nil {
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}

	for i := range s.activities {
		if s.activities[i].ID == id {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			break
		}
	}
	return nil
}
