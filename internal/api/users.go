package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobdeck/internal/types"
)

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, nil, &user, "user"); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile updates the current user's profile and returns the new state.
func (c *Client) UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var user types.User
	if err := c.do(ctx, http.MethodPut, "/users/me", nil, req, &user, "user"); err != nil {
		return nil, err
	}
	return &user, nil
}
