// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/peidid/advisor-tui/internal/session"
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the advising backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:8000)
	BaseURL string

	// Timeout for requests (default: 30s). Chat turns run the full
	// multi-agent workflow server-side, so this is deliberately generous.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the advising backend.
// It attaches the session's bearer token to every request that has one and
// stores the token returned by Login/Register back into the session.
//
// The Client is thread-safe for concurrent use.
//
// Example:
//
//	client := api.NewClient(nil, sess)
//	result, err := client.Login(ctx, "student@school.edu", "secret")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	session    *session.Store
}

// NewClient creates a backend client. A nil config uses defaults; a nil
// session store falls back to a memory-only store.
func NewClient(config *ClientConfig, sess *session.Store) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if sess == nil {
		sess = session.NewMemoryStore()
	}

	return &Client{
		config:  config,
		session: sess,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Session exposes the client's session store.
func (c *Client) Session() *session.Store {
	return c.session
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// REQUEST HELPER
// =============================================================================

// doJSON performs one request against the backend: JSON body in, JSON body
// out, bearer header when the session holds a token, non-2xx translated to
// *APIError. out may be nil when the response body is irrelevant.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return &APIError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return &APIError{Type: ErrTypeConnection, Message: ErrNotReachable.Message, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}
