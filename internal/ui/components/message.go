// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/model"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one chat turn. User messages hug the right with blue
// tones; assistant messages hug the left with markdown rendering and agent
// badges derived from metadata.
type MessageBubble struct {
	Message       api.Message
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
	markdown      *MarkdownRenderer
}

// NewMessageBubble creates a bubble for the given message.
func NewMessageBubble(msg api.Message, theme *styles.Theme, markdown *MarkdownRenderer) *MessageBubble {
	return &MessageBubble{
		Message:  msg,
		Width:    80,
		theme:    theme,
		markdown: markdown,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	switch b.Message.Role {
	case api.RoleUser:
		return b.renderUserBubble()
	case api.RoleAssistant:
		return b.renderAssistantBubble()
	default:
		// Unknown roles render as plain dimmed text rather than vanishing.
		return b.theme.MessageMeta.Render(b.Message.Content)
	}
}

// ==========================================================================
// USER BUBBLE
// ==========================================================================

func (b *MessageBubble) renderUserBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)
	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)

	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)
	header := b.theme.MessageMeta.Italic(true).Render("you" + b.timestampSuffix())

	block := lipgloss.JoinVertical(lipgloss.Right, header, bubble)
	return lipgloss.PlaceHorizontal(b.Width, lipgloss.Right, block)
}

// ==========================================================================
// ASSISTANT BUBBLE
// ==========================================================================

func (b *MessageBubble) renderAssistantBubble() string {
	content := b.Message.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}

	var rendered string
	if b.markdown != nil {
		rendered = b.markdown.Render(content)
	} else {
		rendered = wordWrap(content, maxContentWidth)
	}
	contentWidth := minInt(maxLineWidth(rendered)+4, b.Width-8)

	bubble := b.theme.AssistantBubble.Width(contentWidth).Render(rendered)
	header := b.theme.MessageMeta.Italic(true).Render("advisor" + b.timestampSuffix())

	result := lipgloss.JoinVertical(lipgloss.Left, header, bubble)

	if badges := b.renderAgentBadges(); badges != "" {
		result = lipgloss.JoinVertical(lipgloss.Left, result, badges)
	}
	return result
}

// timestampSuffix formats the message timestamp for the bubble header.
// Provisional messages have no timestamp and render without one.
func (b *MessageBubble) timestampSuffix() string {
	if !b.ShowTimestamp || b.Message.Timestamp == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, b.Message.Timestamp)
	if err != nil {
		return ""
	}
	return " " + ts.Local().Format("Jan 2 15:04")
}

// renderAgentBadges renders one colored badge per known agent in the
// message metadata. Identifiers missing from the registry are skipped
// without any placeholder, so new backend agents degrade quietly.
func (b *MessageBubble) renderAgentBadges() string {
	if b.Message.Metadata == nil || len(b.Message.Metadata.AgentsUsed) == 0 {
		return ""
	}

	var badges []string
	for _, id := range b.Message.Metadata.AgentsUsed {
		info, ok := model.LookupAgent(model.AgentID(id))
		if !ok {
			continue
		}
		badge := b.theme.AgentBadgeStyle(info.Color).Render(info.Icon + " " + info.Name)
		badges = append(badges, badge)
	}
	if len(badges) == 0 {
		return ""
	}
	return strings.Join(badges, " ")
}

// =============================================================================
// MESSAGE LIST
// =============================================================================

// MessageList renders a conversation transcript.
type MessageList struct {
	messages       []api.Message
	width          int
	showTimestamps bool
	theme          *styles.Theme
	markdown       *MarkdownRenderer
}

// NewMessageList creates an empty message list with markdown rendering and
// timestamps enabled.
func NewMessageList(theme *styles.Theme) *MessageList {
	return &MessageList{
		width:          80,
		showTimestamps: true,
		theme:          theme,
		markdown:       NewMarkdownRenderer(76),
	}
}

// SetMarkdown toggles markdown rendering of assistant replies.
func (ml *MessageList) SetMarkdown(enabled bool) {
	if enabled && ml.markdown == nil {
		ml.markdown = NewMarkdownRenderer(ml.width - 12)
	}
	if !enabled {
		ml.markdown = nil
	}
}

// SetShowTimestamps toggles timestamps in bubble headers.
func (ml *MessageList) SetShowTimestamps(enabled bool) {
	ml.showTimestamps = enabled
}

// SetMessages replaces the transcript.
func (ml *MessageList) SetMessages(messages []api.Message) {
	ml.messages = messages
}

// SetWidth updates the render width and the markdown wrap width.
func (ml *MessageList) SetWidth(width int) {
	if width == ml.width {
		return
	}
	ml.width = width
	if ml.markdown != nil {
		ml.markdown = NewMarkdownRenderer(width - 12)
	}
}

// View renders all messages separated by blank lines.
func (ml *MessageList) View() string {
	if len(ml.messages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(ml.messages))
	for _, msg := range ml.messages {
		bubble := NewMessageBubble(msg, ml.theme, ml.markdown)
		bubble.SetWidth(ml.width)
		bubble.ShowTimestamp = ml.showTimestamps
		parts = append(parts, bubble.View())
	}
	return strings.Join(parts, "\n\n")
}
