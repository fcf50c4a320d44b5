// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view controller for the advisor TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/model"
	"github.com/peidid/advisor-tui/internal/ui/components"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StateLoading State = iota // Startup auth probe in flight
	StateReady                // Interactive
)

// apologyText is appended as an assistant message when a send fails, in
// place of a real reply. The transcript stays coherent and the user can
// simply retry.
const apologyText = "Sorry, I encountered an error processing your request. Please try again."

// suggestedPrompts seeds the welcome screen before the first message.
var suggestedPrompts = []string{
	"Can I add a CS minor?",
	"What courses should I take next semester?",
	"Am I on track to graduate on time?",
	"What are the requirements for my major?",
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea root model. It is the single writer of all chat
// state: commands only perform I/O and report back as messages.
type Model struct {
	// State
	state State

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Backend
	client *api.Client
	logger *zap.Logger

	// Session data
	user          *api.User
	conversations []api.Conversation

	// Active conversation. A nil current with no messages is the welcome
	// state; a send from there creates a conversation server-side.
	current  *api.Conversation
	messages []api.Message

	// Send state
	sending bool

	// Overlays
	showAuth    bool
	showProfile bool
	authForm    *components.AuthForm
	profileForm *components.ProfileForm

	// UI components
	viewport    viewport.Model
	input       textinput.Model
	spinner     spinner.Model
	sidebar     *components.Sidebar
	agentStrip  *components.AgentStrip
	messageList *components.MessageList

	// Welcome screen suggestion cursor
	suggestIdx int

	// Layout
	sidebarWidth int

	// Key bindings
	keyMap KeyMap

	// Transient status line, cleared by the next action
	statusMsg string
}

// Options configures the chat model. The zero value keeps markdown
// rendering and timestamps on.
type Options struct {
	SidebarWidth   int
	PlainMessages  bool // render assistant replies without markdown
	HideTimestamps bool // omit timestamps from bubble headers
}

// New creates the root chat model.
func New(client *api.Client, logger *zap.Logger, opts Options) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.SidebarWidth < 20 {
		opts.SidebarWidth = 28
	}

	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Ask your advisor..."
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	vp := viewport.New(80, 20)

	messageList := components.NewMessageList(theme)
	if opts.PlainMessages {
		messageList.SetMarkdown(false)
	}
	if opts.HideTimestamps {
		messageList.SetShowTimestamps(false)
	}

	return Model{
		state:        StateLoading,
		theme:        theme,
		client:       client,
		logger:       logger,
		viewport:     vp,
		input:        input,
		spinner:      sp,
		sidebar:      components.NewSidebar(theme, opts.SidebarWidth),
		agentStrip:   components.NewAgentStrip(theme),
		messageList:  messageList,
		sidebarWidth: opts.SidebarWidth,
		authForm:     components.NewAuthForm(client, theme),
		keyMap:       DefaultKeyMap(),
	}
}

// Init starts the auth probe and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		bootstrapCmd(m.client),
		m.spinner.Tick,
		textinput.Blink,
	)
}

// =============================================================================
// STATE ACCESSORS (used by tests and the view)
// =============================================================================

// State returns the controller state.
func (m Model) State() State {
	return m.state
}

// Authenticated reports whether a user is loaded.
func (m Model) Authenticated() bool {
	return m.user != nil
}

// Sending reports whether a chat turn is in flight.
func (m Model) Sending() bool {
	return m.sending
}

// CurrentConversationID returns the active conversation id, or "".
func (m Model) CurrentConversationID() string {
	if m.current == nil {
		return ""
	}
	return m.current.ID
}

// Messages returns the visible transcript.
func (m Model) Messages() []api.Message {
	return m.messages
}

// Conversations returns the sidebar list.
func (m Model) Conversations() []api.Conversation {
	return m.conversations
}

// =============================================================================
// LOCAL STATE TRANSITIONS
// =============================================================================

// resetToWelcome clears the active conversation without touching the list.
func (m *Model) resetToWelcome() {
	m.current = nil
	m.messages = nil
	m.agentStrip.Reset()
	m.sidebar.SetActiveID("")
	m.suggestIdx = 0
}

// resetSession clears everything tied to the signed-in user.
func (m *Model) resetSession() {
	m.user = nil
	m.conversations = nil
	m.sidebar.SetConversations(nil)
	m.sidebar.SetUserName("")
	m.resetToWelcome()
	m.sending = false
	m.showProfile = false
	m.profileForm = nil
}

// appendProvisionalUserMessage adds the optimistic user turn for a send.
func (m *Model) appendProvisionalUserMessage(content string) {
	m.messages = append(m.messages, api.Message{
		ID:             model.NewProvisionalID(),
		ConversationID: m.CurrentConversationID(),
		Role:           api.RoleUser,
		Content:        content,
	})
}

// appendAssistantMessage adds a reply (or the apology) to the transcript.
func (m *Model) appendAssistantMessage(content string, agentsUsed []string) {
	msg := api.Message{
		ID:             model.NewProvisionalID(),
		ConversationID: m.CurrentConversationID(),
		Role:           api.RoleAssistant,
		Content:        content,
	}
	if len(agentsUsed) > 0 {
		msg.Metadata = &api.MessageMetadata{AgentsUsed: agentsUsed}
	}
	m.messages = append(m.messages, msg)
}
