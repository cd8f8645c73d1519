// Package session holds the authenticated session (token + user profile)
// across pages and CLI invocations, persisted so a restart does not lose it.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobdeck/internal/types"
)

// State is the persisted session payload.
type State struct {
	Token string      `json:"token"`
	User  *types.User `json:"user,omitempty"`
}

// Storage is the persistence port for session state. Implementations must
// make Save durable before returning; the store writes through synchronously.
type Storage interface {
	// Load returns the persisted state, or nil when none exists.
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// FileStorage persists session state as a JSON file, the CLI analogue of
// browser local storage.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultSessionPath returns the per-user session file location.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "jobdeck", "session.json"), nil
}

// Load reads the session file. A missing file is not an error; it means no
// session has been established yet.
func (f *FileStorage) Load() (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file %s: %w", f.path, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", f.path, err)
	}
	return &state, nil
}

// Save writes the session file, creating parent directories as needed. The
// file is written 0600 since it carries the bearer token.
func (f *FileStorage) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", f.path, err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent file is a no-op.
func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file %s: %w", f.path, err)
	}
	return nil
}

// MemoryStorage is an in-memory Storage for tests.
type MemoryStorage struct {
	state *State
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Load returns the stored state.
func (m *MemoryStorage) Load() (*State, error) {
	if m.state == nil {
		return nil, nil
	}
	copied := *m.state
	return &copied, nil
}

// Save stores a copy of the state.
func (m *MemoryStorage) Save(state *State) error {
	copied := *state
	m.state = &copied
	return nil
}

// Clear drops the stored state.
func (m *MemoryStorage) Clear() error {
	m.state = nil
	return nil
}
