// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the advisor TUI.
//
// The package exposes adaptive colors (light/dark pairs) and a Theme struct
// bundling every lipgloss style the views use. Terminal capability is
// detected once at Theme construction via termenv; lipgloss degrades colors
// automatically for limited profiles.
//
// Agent badge colors are looked up by the registry color key ("blue",
// "green", "purple", "orange") so the registry stays free of lipgloss types.
package styles
