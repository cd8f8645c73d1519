package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobdeck/internal/types"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*types.LoginResponse, error) {
	req := types.LoginRequest{Email: email, Password: password}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var resp types.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, &req, &resp, "login_response"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (*types.User, error) {
	req := types.RegisterRequest{Email: email, Password: password, FullName: fullName}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var user types.User
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, &req, &user, "user"); err != nil {
		return nil, err
	}
	return &user, nil
}
