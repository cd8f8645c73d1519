// Package api is the typed HTTP client for the jobdeck backend. Every
// backend resource operation maps to exactly one HTTP call with typed
// request and response shapes. The client attaches the current bearer token
// when one is present and propagates backend failures unchanged; there is no
// retry, backoff, or caching at this layer.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobdeck/schemas"
)

// DefaultBaseURL is the backend base URL used when none is configured.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// DefaultTimeout bounds a single request. Requests are additionally tied to
// the caller's context, so an abandoned page tears its requests down with it.
const DefaultTimeout = 30 * time.Second

// TokenSource supplies the current bearer token. An empty string means the
// request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the backend API client. Use the resource methods (Login, ListJobs,
// SendEmail, ...) rather than calling do directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	strict     bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource attaches a bearer token source, typically the session store.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithStrictValidation makes the client validate response bodies against the
// bundled JSON Schemas before decoding. Intended for development and tests;
// the default is off so an additive backend change cannot break the client.
func WithStrictValidation() Option {
	return func(c *Client) { c.strict = true }
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues one request. body (when non-nil) is JSON-encoded; out (when
// non-nil) receives the decoded 2xx response. schemaName (when non-empty and
// strict mode is on) names the response schema to validate against.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, schemaName string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(respBody),
			RequestID:  requestID,
		}
	}

	if out == nil {
		return nil
	}

	if c.strict && schemaName != "" {
		if err := schemas.ValidateResponse(schemaName, respBody); err != nil {
			return fmt.Errorf("response for %s %s failed schema validation: %w", method, path, err)
		}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response for %s %s: %w", method, path, err)
	}
	return nil
}

// errorDetail pulls the backend's structured detail message out of an error
// body, falling back to the raw body when it is not the expected JSON shape.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = "(empty response body)"
	}
	return detail
}
