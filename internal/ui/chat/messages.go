// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
//
// This file defines all Bubble Tea message types used by the controller.
// Messages are organized into the following categories:
//   - Bootstrap: Startup auth probe results
//   - Conversations: List, single fetch, and delete results
//   - Chat: Send results, success and failure
//
// Auth and profile results arrive as components.AuthSuccessMsg,
// components.AuthErrorMsg, components.ProfileSavedMsg and
// components.ProfileErrorMsg; the forms own those calls.
package chat

import (
	"github.com/peidid/advisor-tui/internal/api"
)

// =============================================================================
// BOOTSTRAP MESSAGES
// =============================================================================

// BootstrapMsg reports the startup auth probe. A nil User with a nil Err
// means no stored token existed; a non-nil Err means the stored token was
// rejected and must be discarded silently.
type BootstrapMsg struct {
	User *api.User
	Err  error
}

// =============================================================================
// CONVERSATION MESSAGES
// =============================================================================

// ConversationsLoadedMsg delivers the refreshed conversation list.
type ConversationsLoadedMsg struct {
	Conversations []api.Conversation
	Err           error
}

// ConversationLoadedMsg delivers a single conversation with messages.
type ConversationLoadedMsg struct {
	Conversation *api.Conversation
	Err          error
}

// ConversationAdoptedMsg delivers the record of a conversation the backend
// just created from a first send. Unlike ConversationLoadedMsg it must not
// touch the transcript or the agent strip; both already reflect the send.
type ConversationAdoptedMsg struct {
	Conversation *api.Conversation
	Err          error
}

// ConversationDeletedMsg reports a delete attempt for the given id.
type ConversationDeletedMsg struct {
	ID  string
	Err error
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// ChatResultMsg delivers the outcome of one send. WasNew records whether the
// send started a fresh conversation, which triggers a list refresh so the
// sidebar picks up the server-titled entry.
type ChatResultMsg struct {
	Response *api.ChatResponse
	WasNew   bool
	Err      error
}
