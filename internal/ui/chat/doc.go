// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
//
// The Model is a standard Bubble Tea root: Init fires the startup auth probe,
// Update is the only writer of chat state, and commands wrap API calls into
// messages. The controller owns all chat data (user, conversation list,
// transcript, send state); the components package owns presentation state.
//
// Failure handling is uniform: every backend error is logged once and
// converted into UI state — an inline form error, a status-line notice, or
// the fixed apology message for a failed send. Nothing is fatal after
// startup.
package chat
