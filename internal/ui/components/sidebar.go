// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"strconv"
	"strings"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/ui/styles"
	"github.com/peidid/advisor-tui/internal/util"
)

// =============================================================================
// CONVERSATION SIDEBAR
// =============================================================================

// Sidebar lists the user's conversations with a movable cursor. It owns only
// presentation state (cursor, collapse); the controller owns the data and
// reacts to the ids the sidebar reports.
type Sidebar struct {
	conversations []api.Conversation
	cursor        int
	collapsed     bool
	width         int
	height        int
	activeID      string
	userName      string
	theme         *styles.Theme
}

// NewSidebar creates an empty sidebar.
func NewSidebar(theme *styles.Theme, width int) *Sidebar {
	if width < 20 {
		width = 20
	}
	return &Sidebar{width: width, theme: theme}
}

// SetConversations replaces the list, clamping the cursor.
func (s *Sidebar) SetConversations(conversations []api.Conversation) {
	s.conversations = conversations
	if s.cursor >= len(conversations) {
		s.cursor = len(conversations) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// SetActiveID marks the conversation currently open in the chat pane.
func (s *Sidebar) SetActiveID(id string) {
	s.activeID = id
}

// SetUserName sets the footer account label.
func (s *Sidebar) SetUserName(name string) {
	s.userName = name
}

// SetSize updates the rendered dimensions.
func (s *Sidebar) SetSize(width, height int) {
	if width >= 20 {
		s.width = width
	}
	s.height = height
}

// ToggleCollapsed flips sidebar visibility.
func (s *Sidebar) ToggleCollapsed() {
	s.collapsed = !s.collapsed
}

// Collapsed reports whether the sidebar is hidden.
func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}

// MoveUp moves the cursor toward the top.
func (s *Sidebar) MoveUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// MoveDown moves the cursor toward the bottom.
func (s *Sidebar) MoveDown() {
	if s.cursor < len(s.conversations)-1 {
		s.cursor++
	}
}

// SelectedID returns the conversation id under the cursor, or "".
func (s *Sidebar) SelectedID() string {
	if s.cursor < 0 || s.cursor >= len(s.conversations) {
		return ""
	}
	return s.conversations[s.cursor].ID
}

// View renders the sidebar column.
func (s *Sidebar) View() string {
	if s.collapsed {
		return ""
	}

	titleWidth := s.width - 4

	var b strings.Builder
	b.WriteString(s.theme.SidebarTitle.Render("Conversations"))
	b.WriteString("\n")

	if len(s.conversations) == 0 {
		b.WriteString(s.theme.SidebarMeta.Render("No conversations yet"))
		b.WriteString("\n")
	}

	for i, conv := range s.conversations {
		title := conv.Title
		if title == "" {
			title = "Untitled"
		}
		title = util.TruncateWidth(title, titleWidth)

		marker := "  "
		if conv.ID == s.activeID {
			marker = "> "
		}

		line := marker + title
		if i == s.cursor {
			b.WriteString(s.theme.SidebarItemSelected.Render(line))
		} else {
			b.WriteString(s.theme.SidebarItem.Render(line))
		}
		b.WriteString("\n")
		b.WriteString(s.theme.SidebarMeta.Render("  " + strconv.Itoa(conv.MessageCount) + " messages"))
		b.WriteString("\n")
	}

	body := b.String()

	footer := ""
	if s.userName != "" {
		footer = s.theme.SidebarFooter.Width(s.width - 2).Render(s.userName)
	}
	if footer != "" {
		body = body + "\n" + footer
	}

	return s.theme.Sidebar.Width(s.width).Render(body)
}
