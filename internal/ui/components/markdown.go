// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// MarkdownRenderer renders assistant markdown for terminal display.
// Construction can fail on exotic terminals; callers get a renderer that
// falls back to plain text instead of an error.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a renderer for the given wrap width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r = nil
	}
	return &MarkdownRenderer{renderer: r, width: width}
}

// Width returns the configured wrap width.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Render converts markdown to styled terminal text. Any render failure
// falls back to word-wrapped plain text; markdown output must never lose
// the message content.
func (m *MarkdownRenderer) Render(content string) string {
	if m.renderer == nil {
		return wordWrap(content, m.width)
	}
	out, err := m.renderer.Render(content)
	if err != nil {
		return wordWrap(content, m.width)
	}
	// Glamour pads with blank lines; the bubble provides its own margins.
	return strings.Trim(out, "\n")
}
