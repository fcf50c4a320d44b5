// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"context"
	"net/http"
)

// =============================================================================
// CHAT
// =============================================================================

// SendChat submits a user message and returns the assistant's reply once the
// backend workflow completes. An empty conversationID starts a new
// conversation; the response carries the id the backend assigned.
func (c *Client) SendChat(ctx context.Context, message, conversationID string) (*ChatResponse, error) {
	var result ChatResponse
	req := chatRequest{Message: message, ConversationID: conversationID}
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckHealth reports backend liveness. Unauthenticated by design, but the
// bearer header is still attached when a token exists; the backend ignores it.
func (c *Client) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	var status HealthStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/health", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
