// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/model"
	"github.com/peidid/advisor-tui/internal/ui/components"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update is the single state writer. Every transition in the app happens
// here; commands only do I/O.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.agentStrip.SetSpinnerFrame(m.spinner.View())
		return m, cmd

	case BootstrapMsg:
		return m.handleBootstrap(msg)

	case components.AuthSuccessMsg:
		return m.handleAuthSuccess(msg)

	case components.AuthErrorMsg:
		m.logger.Warn("auth failed", zap.Error(msg.Err))
		m.authForm.SetError(msg.Err.Error())
		return m, nil

	case ConversationsLoadedMsg:
		return m.handleConversationsLoaded(msg)

	case ConversationLoadedMsg:
		return m.handleConversationLoaded(msg)

	case ConversationAdoptedMsg:
		return m.handleConversationAdopted(msg)

	case ConversationDeletedMsg:
		return m.handleConversationDeleted(msg)

	case ChatResultMsg:
		return m.handleChatResult(msg)

	case components.ProfileSavedMsg:
		return m.handleProfileSaved(msg)

	case components.ProfileErrorMsg:
		m.logger.Warn("profile save failed", zap.Error(msg.Err))
		if m.profileForm != nil {
			m.profileForm.SetError(msg.Err.Error())
		}
		return m, nil
	}

	// Everything else feeds the focused overlay or the input widgets.
	return m.updateComponents(msg)
}

// =============================================================================
// RESIZE
// =============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	sidebarWidth := 0
	if !m.sidebar.Collapsed() {
		sidebarWidth = m.sidebarWidth
	}
	m.sidebar.SetSize(m.sidebarWidth, msg.Height-2)

	chatWidth := msg.Width - sidebarWidth
	if chatWidth < 40 {
		chatWidth = 40
	}
	m.viewport.Width = chatWidth
	m.viewport.Height = msg.Height - 6
	m.input.Width = chatWidth - 6
	m.messageList.SetWidth(chatWidth - 2)
	m.refreshViewport()
	return m
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}
	if m.state == StateLoading {
		return m, nil
	}

	// Overlays capture all keys while visible.
	if m.showAuth {
		return m, m.authForm.Update(msg)
	}
	if m.showProfile {
		if key.Matches(msg, m.keyMap.Close) {
			m.showProfile = false
			m.profileForm = nil
			return m, nil
		}
		if m.profileForm != nil {
			return m, m.profileForm.Update(msg)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSend()

	case key.Matches(msg, m.keyMap.NewChat):
		m.resetToWelcome()
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keyMap.PrevChat):
		m.sidebar.MoveUp()
		return m, nil

	case key.Matches(msg, m.keyMap.NextChat):
		m.sidebar.MoveDown()
		return m, nil

	case key.Matches(msg, m.keyMap.OpenChat):
		id := m.sidebar.SelectedID()
		if id == "" || id == m.CurrentConversationID() {
			return m, nil
		}
		return m, loadConversationCmd(m.client, id)

	case key.Matches(msg, m.keyMap.DeleteChat):
		id := m.sidebar.SelectedID()
		if id == "" {
			return m, nil
		}
		return m, deleteConversationCmd(m.client, id)

	case key.Matches(msg, m.keyMap.ToggleSidebar):
		m.sidebar.ToggleCollapsed()
		return m.handleResize(tea.WindowSizeMsg{Width: m.width, Height: m.height}), nil

	case key.Matches(msg, m.keyMap.Profile):
		if m.user == nil {
			return m, nil
		}
		m.profileForm = components.NewProfileForm(m.client, m.theme, m.user.Profile)
		m.showProfile = true
		return m, nil

	case key.Matches(msg, m.keyMap.Logout):
		return m.handleLogout()

	case key.Matches(msg, m.keyMap.Suggest):
		if m.current == nil && len(m.messages) == 0 {
			m.input.SetValue(suggestedPrompts[m.suggestIdx%len(suggestedPrompts)])
			m.input.CursorEnd()
			m.suggestIdx++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.ScrollDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	return m.updateComponents(msg)
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showAuth {
		return m, m.authForm.Update(msg)
	}
	if m.showProfile && m.profileForm != nil {
		return m, m.profileForm.Update(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// =============================================================================
// BOOTSTRAP AND AUTH
// =============================================================================

func (m Model) handleBootstrap(msg BootstrapMsg) (tea.Model, tea.Cmd) {
	m.state = StateReady

	if msg.Err != nil {
		// Stored token rejected: discard it quietly and fall back to the
		// auth form. No error surfaces for a background probe.
		m.logger.Info("stored token rejected, clearing session", zap.Error(msg.Err))
		if err := m.client.Session().Clear(); err != nil {
			m.logger.Warn("failed to clear session", zap.Error(err))
		}
		m.showAuth = true
		return m, nil
	}
	if msg.User == nil {
		m.showAuth = true
		return m, nil
	}

	m.user = msg.User
	m.showAuth = false
	m.sidebar.SetUserName(msg.User.Name)
	m.logger.Info("session restored", zap.String("user", msg.User.ID))
	return m, loadConversationsCmd(m.client)
}

func (m Model) handleAuthSuccess(msg components.AuthSuccessMsg) (tea.Model, tea.Cmd) {
	m.user = &msg.Result.User
	m.showAuth = false
	m.authForm.Reset()
	m.sidebar.SetUserName(m.user.Name)
	m.resetToWelcome()
	m.logger.Info("authenticated", zap.String("user", m.user.ID))
	return m, loadConversationsCmd(m.client)
}

func (m Model) handleLogout() (tea.Model, tea.Cmd) {
	if err := m.client.Logout(); err != nil {
		m.logger.Warn("failed to clear token on logout", zap.Error(err))
	}
	m.logger.Info("logged out")
	m.resetSession()
	m.showAuth = true
	m.authForm.Reset()
	return m, nil
}

// =============================================================================
// CONVERSATIONS
// =============================================================================

func (m Model) handleConversationsLoaded(msg ConversationsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("failed to load conversations", zap.Error(msg.Err))
		m.statusMsg = "Could not load conversations"
		return m, nil
	}
	m.conversations = msg.Conversations
	m.sidebar.SetConversations(msg.Conversations)
	return m, nil
}

func (m Model) handleConversationLoaded(msg ConversationLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("failed to load conversation", zap.Error(msg.Err))
		m.statusMsg = "Could not open conversation"
		return m, nil
	}

	m.current = msg.Conversation
	m.messages = msg.Conversation.Messages
	m.agentStrip.Reset()
	m.sidebar.SetActiveID(msg.Conversation.ID)
	m.statusMsg = ""
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

func (m Model) handleConversationAdopted(msg ConversationAdoptedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// The bare id set at send time is enough to keep chatting.
		m.logger.Warn("failed to fetch new conversation", zap.Error(msg.Err))
		return m, nil
	}
	conv := *msg.Conversation
	conv.Messages = nil // transcript already holds the turns
	m.current = &conv
	m.sidebar.SetActiveID(conv.ID)
	return m, nil
}

func (m Model) handleConversationDeleted(msg ConversationDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("failed to delete conversation",
			zap.String("id", msg.ID), zap.Error(msg.Err))
		m.statusMsg = "Could not delete conversation"
		return m, nil
	}

	filtered := m.conversations[:0:0]
	for _, conv := range m.conversations {
		if conv.ID != msg.ID {
			filtered = append(filtered, conv)
		}
	}
	m.conversations = filtered
	m.sidebar.SetConversations(filtered)

	// Deleting the open conversation falls back to the welcome state.
	if m.CurrentConversationID() == msg.ID {
		m.resetToWelcome()
	}
	return m, nil
}

// =============================================================================
// SEND FLOW
// =============================================================================

func (m Model) handleSend() (tea.Model, tea.Cmd) {
	content := strings.TrimSpace(m.input.Value())
	if content == "" || m.sending {
		return m, nil
	}
	// Unauthenticated sends never reach the network; the auth form opens
	// instead and the draft stays in the input.
	if m.user == nil {
		m.showAuth = true
		return m, nil
	}

	conversationID := m.CurrentConversationID()

	// Optimistic append: the user turn shows immediately with a local id
	// that is never sent to the backend.
	m.appendProvisionalUserMessage(content)
	m.input.SetValue("")
	m.sending = true
	m.statusMsg = ""

	// The coordinator runs the workflow; individual agents light up only
	// in the completed set once the reply arrives.
	m.agentStrip.SetCompleted(nil)
	m.agentStrip.SetActive([]string{string(model.AgentCoordinator)})

	m.refreshViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(
		sendChatCmd(m.client, content, conversationID),
		m.spinner.Tick,
	)
}

func (m Model) handleChatResult(msg ChatResultMsg) (tea.Model, tea.Cmd) {
	// Send state always clears, success or not.
	m.sending = false
	m.agentStrip.SetActive(nil)

	if msg.Err != nil {
		m.logger.Warn("chat send failed", zap.Error(msg.Err))
		m.appendAssistantMessage(apologyText, nil)
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil
	}

	resp := msg.Response
	m.agentStrip.SetCompleted(resp.AgentsUsed)
	m.appendAssistantMessage(resp.Response, resp.AgentsUsed)

	var cmd tea.Cmd
	if msg.WasNew {
		// First message of a new conversation: adopt the server id right
		// away, then fetch the created record and refresh the list so the
		// sidebar shows the server-derived title.
		m.current = &api.Conversation{ID: resp.ConversationID}
		m.sidebar.SetActiveID(resp.ConversationID)
		cmd = tea.Batch(
			adoptConversationCmd(m.client, resp.ConversationID),
			loadConversationsCmd(m.client),
		)
	}

	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, cmd
}

// =============================================================================
// PROFILE
// =============================================================================

func (m Model) handleProfileSaved(msg components.ProfileSavedMsg) (tea.Model, tea.Cmd) {
	if m.user != nil {
		profile := msg.Profile
		m.user.Profile = &profile
	}
	m.showProfile = false
	m.profileForm = nil
	m.statusMsg = "Profile saved"
	m.logger.Info("profile updated")
	return m, nil
}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport() {
	m.messageList.SetMessages(m.messages)
	m.viewport.SetContent(m.messageList.View())
}
