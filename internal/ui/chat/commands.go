// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peidid/advisor-tui/internal/api"
)

// Command timeout for everything except a chat turn. Chat turns rely on the
// client's own transport timeout since the workflow can be slow.
const requestTimeout = 15 * time.Second

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// bootstrapCmd probes the stored token on startup. No token yields an empty
// BootstrapMsg so the auth form opens immediately.
func bootstrapCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		if !client.Session().Authenticated() {
			return BootstrapMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			return BootstrapMsg{Err: err}
		}
		return BootstrapMsg{User: user}
	}
}

// loadConversationsCmd refreshes the sidebar list.
func loadConversationsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		conversations, err := client.ListConversations(ctx)
		return ConversationsLoadedMsg{Conversations: conversations, Err: err}
	}
}

// loadConversationCmd fetches one conversation with its messages.
func loadConversationCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		conversation, err := client.GetConversation(ctx, id)
		return ConversationLoadedMsg{Conversation: conversation, Err: err}
	}
}

// adoptConversationCmd fetches the record of a conversation the backend
// created from a first send, so the controller holds the real title and
// timestamps instead of a bare id.
func adoptConversationCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		conversation, err := client.GetConversation(ctx, id)
		return ConversationAdoptedMsg{Conversation: conversation, Err: err}
	}
}

// sendChatCmd submits one user message. conversationID is empty for the
// first message of a new conversation.
func sendChatCmd(client *api.Client, message, conversationID string) tea.Cmd {
	wasNew := conversationID == ""
	return func() tea.Msg {
		resp, err := client.SendChat(context.Background(), message, conversationID)
		return ChatResultMsg{Response: resp, WasNew: wasNew, Err: err}
	}
}

// deleteConversationCmd removes a conversation server-side.
func deleteConversationCmd(client *api.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := client.DeleteConversation(ctx, id)
		return ConversationDeletedMsg{ID: id, Err: err}
	}
}
