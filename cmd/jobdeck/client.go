package main

import (
	"fmt"
	"os"

	"github.com/jonathan/jobdeck/internal/api"
	"github.com/jonathan/jobdeck/internal/session"
)

// backendURL resolves the backend base URL from the flag, falling back to the
// JOBDECK_API_URL environment variable, then the built-in default.
func backendURL(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("JOBDECK_API_URL"); env != "" {
		return env
	}
	return api.DefaultBaseURL
}

// openSession opens the per-user session store used by every command.
func openSession() (*session.Store, error) {
	path, err := session.DefaultSessionPath()
	if err != nil {
		return nil, err
	}
	store, err := session.NewStore(session.NewFileStorage(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// newClient builds an API client wired to the session's token.
func newClient(apiURL string, store *session.Store) *api.Client {
	return api.New(backendURL(apiURL), api.WithTokenSource(store))
}
