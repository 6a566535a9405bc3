package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token. Public: the token, if any,
// is never sent.
func (c *Client) Login(ctx context.Context, credentials *Credentials) (*AuthResponse, error) {
	response := &AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/login", credentials, response, false); err != nil {
		return nil, err
	}
	return response, nil
}

// Signup registers a new account and returns its first session.
func (c *Client) Signup(ctx context.Context, request *SignupRequest) (*AuthResponse, error) {
	response := &AuthResponse{}
	if err := c.do(ctx, http.MethodPost, "/auth/signup", request, response, false); err != nil {
		return nil, err
	}
	return response, nil
}

// Me fetches the current-user profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	user := &User{}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, user, true); err != nil {
		return nil, err
	}
	return user, nil
}

// MyStats fetches the current user's dashboard counters.
func (c *Client) MyStats(ctx context.Context) (*UserStats, error) {
	stats := &UserStats{}
	if err := c.do(ctx, http.MethodGet, "/users/me/stats", nil, stats, true); err != nil {
		return nil, err
	}
	return stats, nil
}
