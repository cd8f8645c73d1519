package session

import (
	"fmt"
	"sync"

	"github.com/jonathan/jobdeck/internal/types"
)

// Store holds the current session in memory, backed by a Storage port.
// Persistence is write-through: SetToken and SetUser save durably before
// mutating in-memory state, so a crash never leaves the two out of sync in
// the direction of a phantom session. Last write wins; there is no token
// refresh, expiry tracking, or cross-process synchronization.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	state   State
}

// NewStore creates a Store and loads any persisted session from storage.
func NewStore(storage Storage) (*Store, error) {
	s := &Store{storage: storage}

	loaded, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if loaded != nil {
		s.state = *loaded
	}
	return s, nil
}

// Token returns the current bearer token, or "" when logged out. Satisfies
// the api client's TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns the current user, or nil when none has been fetched.
func (s *Store) User() *types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User
}

// IsAuthenticated reports whether a token is present.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetToken persists the token, then updates in-memory state.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Token = token
	if err := s.storage.Save(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// SetUser persists the user profile alongside the token.
func (s *Store) SetUser(user *types.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.User = user
	if err := s.storage.Save(&next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// Logout clears durable storage and in-memory state.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.state = State{}
	return nil
}
