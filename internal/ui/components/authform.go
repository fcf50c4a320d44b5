// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

// =============================================================================
// AUTH FORM MESSAGES
// =============================================================================

// AuthSuccessMsg reports a completed login or registration.
type AuthSuccessMsg struct {
	Result *api.AuthResult
}

// AuthErrorMsg reports a failed login or registration attempt.
// The form shows it inline; the controller logs it.
type AuthErrorMsg struct {
	Err error
}

// =============================================================================
// AUTH FORM
// =============================================================================

// AuthMode selects between the two form layouts.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

const (
	authFieldEmail = iota
	authFieldName
	authFieldPassword
)

// AuthForm collects credentials and performs the login or register call
// itself, reporting the outcome upward as a message. Register shows an
// extra name field; tab cycles fields, enter submits, ctrl+r flips modes.
type AuthForm struct {
	mode    AuthMode
	focus   int
	email   textinput.Model
	name    textinput.Model
	pass    textinput.Model
	errText string
	busy    bool
	client  *api.Client
	theme   *styles.Theme
}

// NewAuthForm creates a login-mode form.
func NewAuthForm(client *api.Client, theme *styles.Theme) *AuthForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	name := textinput.New()
	name.Placeholder = "full name"
	name.CharLimit = 120

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'
	pass.CharLimit = 120

	return &AuthForm{
		mode:   ModeLogin,
		email:  email,
		name:   name,
		pass:   pass,
		client: client,
		theme:  theme,
	}
}

// Mode returns the current form mode.
func (f *AuthForm) Mode() AuthMode {
	return f.mode
}

// SetError shows an inline error under the form.
func (f *AuthForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

// Reset clears all fields and errors.
func (f *AuthForm) Reset() {
	f.email.SetValue("")
	f.name.SetValue("")
	f.pass.SetValue("")
	f.errText = ""
	f.busy = false
	f.focus = authFieldEmail
	f.applyFocus()
}

// Update handles key input. It returns a command when the form submits.
func (f *AuthForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.nextField(1)
		return nil
	case "shift+tab", "up":
		f.nextField(-1)
		return nil
	case "ctrl+r":
		f.toggleMode()
		return nil
	case "enter":
		return f.submit()
	}

	return f.updateInputs(msg)
}

func (f *AuthForm) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	f.email, cmd = f.email.Update(msg)
	cmds = append(cmds, cmd)
	f.name, cmd = f.name.Update(msg)
	cmds = append(cmds, cmd)
	f.pass, cmd = f.pass.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (f *AuthForm) toggleMode() {
	if f.mode == ModeLogin {
		f.mode = ModeRegister
	} else {
		f.mode = ModeLogin
	}
	f.errText = ""
	if f.mode == ModeLogin && f.focus == authFieldName {
		f.focus = authFieldEmail
	}
	f.applyFocus()
}

func (f *AuthForm) nextField(delta int) {
	fields := 2
	if f.mode == ModeRegister {
		fields = 3
	}
	f.focus = (f.focus + delta + fields) % fields
	f.applyFocus()
}

// applyFocus maps the focus index onto the visible fields. In login mode
// index 1 is the password field; in register mode the name field sits
// between email and password.
func (f *AuthForm) applyFocus() {
	f.email.Blur()
	f.name.Blur()
	f.pass.Blur()

	switch {
	case f.focus == authFieldEmail:
		f.email.Focus()
	case f.mode == ModeRegister && f.focus == authFieldName:
		f.name.Focus()
	default:
		f.pass.Focus()
	}
}

// submit validates locally then calls the backend in a command.
func (f *AuthForm) submit() tea.Cmd {
	if f.busy {
		return nil
	}

	email := strings.TrimSpace(f.email.Value())
	name := strings.TrimSpace(f.name.Value())
	password := f.pass.Value()

	if email == "" || password == "" {
		f.errText = "Email and password are required"
		return nil
	}
	if f.mode == ModeRegister && name == "" {
		f.errText = "Name is required"
		return nil
	}

	f.errText = ""
	f.busy = true

	mode := f.mode
	client := f.client
	return func() tea.Msg {
		var result *api.AuthResult
		var err error
		if mode == ModeRegister {
			result, err = client.Register(context.Background(), email, name, password)
		} else {
			result, err = client.Login(context.Background(), email, password)
		}
		if err != nil {
			return AuthErrorMsg{Err: err}
		}
		return AuthSuccessMsg{Result: result}
	}
}

// View renders the form box.
func (f *AuthForm) View() string {
	title := "Sign in"
	action := "ctrl+r: create an account"
	if f.mode == ModeRegister {
		title = "Create account"
		action = "ctrl+r: back to sign in"
	}

	rows := []string{
		f.theme.FormTitle.Render(title),
		f.theme.FormLabel.Render("Email"),
		f.email.View(),
	}
	if f.mode == ModeRegister {
		rows = append(rows,
			f.theme.FormLabel.Render("Name"),
			f.name.View(),
		)
	}
	rows = append(rows,
		f.theme.FormLabel.Render("Password"),
		f.pass.View(),
	)

	if f.busy {
		rows = append(rows, f.theme.FormHint.Render("Contacting server..."))
	}
	if f.errText != "" {
		rows = append(rows, f.theme.FormError.Render(f.errText))
	}
	rows = append(rows, f.theme.FormHint.Render("enter: submit  "+action))

	return f.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
