// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the whole screen for the current state.
func (m Model) View() string {
	if m.state == StateLoading {
		return m.renderLoading()
	}
	if m.showAuth {
		return m.renderCentered(m.authForm.View())
	}
	if m.showProfile && m.profileForm != nil {
		return m.renderCentered(m.profileForm.View())
	}
	return m.renderChat()
}

func (m Model) renderLoading() string {
	return m.renderCentered(m.spinner.View() + " Connecting to your advisor...")
}

// renderCentered places content in the middle of the terminal.
func (m Model) renderCentered(content string) string {
	width := m.width
	height := m.height
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// =============================================================================
// MAIN CHAT LAYOUT
// =============================================================================

func (m Model) renderChat() string {
	header := m.theme.Header.Render("Academic Advisor")

	var transcript string
	if m.current == nil && len(m.messages) == 0 {
		transcript = m.renderWelcome()
	} else {
		transcript = m.viewport.View()
	}

	strip := m.agentStrip.View()
	input := m.theme.InputContainer.Render(m.theme.InputPrompt.Render("> ") + m.input.View())
	status := m.renderStatusBar()

	chatColumn := lipgloss.JoinVertical(lipgloss.Left,
		header,
		transcript,
		strip,
		input,
		status,
	)

	if m.sidebar.Collapsed() {
		return chatColumn
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), chatColumn)
}

// renderWelcome shows the empty state with suggested prompts.
func (m Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(m.theme.WelcomeTitle.Render("How can I help with your studies?"))
	b.WriteString("\n\n")
	for _, prompt := range suggestedPrompts {
		b.WriteString(m.theme.WelcomePrompt.Render("- " + prompt))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("ctrl+g cycles a suggestion into the input"))

	box := m.theme.WelcomeBox.Render(b.String())

	height := m.viewport.Height
	if height == 0 {
		height = 20
	}
	width := m.viewport.Width
	if width == 0 {
		width = 80
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderStatusBar() string {
	if m.sending {
		return m.theme.StatusBar.Render(m.spinner.View() + " advisor is thinking...")
	}
	if m.statusMsg != "" {
		return m.theme.StatusBar.Render(m.statusMsg)
	}
	return m.theme.StatusBar.Render(
		"enter send  C-n new  C-j/C-k pick  C-o open  C-d delete  C-p profile  C-x logout  C-c quit")
}
