// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
//
// Components own presentation state only: cursors, focus, collapse flags,
// in-flight indicators. Chat data lives in the controller; it flows in via
// setters and decisions flow out as Bubble Tea messages. The auth and
// profile forms are the exception in that they call the backend themselves
// and report only the outcome upward.
package components
