// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"context"
	"net/http"
)

// =============================================================================
// AUTH OPERATIONS
// =============================================================================

// Register creates a new account. On success the returned token is stored in
// the session, so the very next request is already authenticated.
func (c *Client) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	var result AuthResult
	req := registerRequest{Email: email, Name: name, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", req, &result); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

// Login authenticates an existing account. On success the returned token is
// stored in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	req := loginRequest{Email: email, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", req, &result); err != nil {
		return nil, err
	}
	if err := c.session.SetToken(result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the user for the current session token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile replaces the current user's academic profile.
func (c *Client) UpdateProfile(ctx context.Context, profile UserProfile) (*ProfileResult, error) {
	var result ProfileResult
	if err := c.doJSON(ctx, http.MethodPut, "/api/auth/profile", profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout discards the session token. Purely local: the backend keeps no
// session state to invalidate.
func (c *Client) Logout() error {
	return c.session.Clear()
}
