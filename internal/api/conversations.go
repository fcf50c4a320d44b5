// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"context"
	"net/http"
	"net/url"
)

// =============================================================================
// CONVERSATION OPERATIONS
// =============================================================================

// ListConversations returns the current user's conversations, newest first,
// without message bodies.
func (c *Client) ListConversations(ctx context.Context) ([]Conversation, error) {
	var result conversationList
	if err := c.doJSON(ctx, http.MethodGet, "/api/conversations", nil, &result); err != nil {
		return nil, err
	}
	return result.Conversations, nil
}

// CreateConversation creates an empty conversation. Title may be empty; the
// backend derives one from the first message.
func (c *Client) CreateConversation(ctx context.Context, title string) (*Conversation, error) {
	var conv Conversation
	req := createConversationRequest{Title: title}
	if err := c.doJSON(ctx, http.MethodPost, "/api/conversations", req, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// GetConversation fetches a single conversation with its full message list.
func (c *Client) GetConversation(ctx context.Context, id string) (*Conversation, error) {
	var conv Conversation
	if err := c.doJSON(ctx, http.MethodGet, "/api/conversations/"+url.PathEscape(id), nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, id string) error {
	var result deleteResult
	return c.doJSON(ctx, http.MethodDelete, "/api/conversations/"+url.PathEscape(id), nil, &result)
}
