package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a backend-reported failure: any non-2xx response. The status and
// backend detail are carried unchanged to the caller; the client never
// retries, remaps, or swallows them. Policy (such as redirecting on 401)
// lives with the caller.
type Error struct {
	StatusCode int
	Detail     string
	RequestID  string
}

func (e *Error) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("backend error: status %d: %s (request %s)", e.StatusCode, e.Detail, e.RequestID)
	}
	return fmt.Sprintf("backend error: status %d: %s", e.StatusCode, e.Detail)
}

// IsUnauthorized reports whether err is a backend 401. Pages treat this as
// the signal to redirect to the login screen.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
