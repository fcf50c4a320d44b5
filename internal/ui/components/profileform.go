// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/model"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

// =============================================================================
// PROFILE FORM MESSAGES
// =============================================================================

// ProfileSavedMsg reports a successfully stored profile.
type ProfileSavedMsg struct {
	Profile api.UserProfile
}

// ProfileErrorMsg reports a failed profile save.
type ProfileErrorMsg struct {
	Err error
}

// =============================================================================
// PROFILE FORM
// =============================================================================

const profileFieldCount = 5

// ProfileForm edits the academic profile. List fields are comma-separated
// text; GPA is validated to the 0-4 scale before anything is sent.
type ProfileForm struct {
	focus     int
	major     textinput.Model
	minors    textinput.Model
	gpa       textinput.Model
	courses   textinput.Model
	interests textinput.Model
	errText   string
	busy      bool
	client    *api.Client
	theme     *styles.Theme
}

// NewProfileForm creates a profile form prefilled from the given profile.
func NewProfileForm(client *api.Client, theme *styles.Theme, profile *api.UserProfile) *ProfileForm {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		return in
	}

	f := &ProfileForm{
		major:     newInput("e.g. Computer Science"),
		minors:    newInput("comma-separated"),
		gpa:       newInput("0.0 - 4.0"),
		courses:   newInput("comma-separated course codes"),
		interests: newInput("comma-separated"),
		client:    client,
		theme:     theme,
	}
	f.major.Focus()

	if profile != nil {
		f.major.SetValue(profile.Major)
		f.minors.SetValue(model.JoinList(profile.Minors))
		f.courses.SetValue(model.JoinList(profile.CompletedCourses))
		f.interests.SetValue(model.JoinList(profile.Interests))
		if profile.GPA != nil {
			f.gpa.SetValue(strconv.FormatFloat(*profile.GPA, 'f', -1, 64))
		}
	}
	return f
}

// SetError shows an inline error under the form.
func (f *ProfileForm) SetError(text string) {
	f.errText = text
	f.busy = false
}

// Update handles key input. It returns a command when the form submits.
func (f *ProfileForm) Update(msg tea.Msg) tea.Cmd {
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
	case "enter":
		return f.submit()
	}

	return f.updateInputs(msg)
}

func (f *ProfileForm) updateInputs(msg tea.Msg) tea.Cmd {
	inputs := f.inputs()
	cmds := make([]tea.Cmd, len(inputs))
	for i, in := range inputs {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		cmds[i] = cmd
	}
	return tea.Batch(cmds...)
}

func (f *ProfileForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.major, &f.minors, &f.gpa, &f.courses, &f.interests}
}

func (f *ProfileForm) nextField(delta int) {
	f.focus = (f.focus + delta + profileFieldCount) % profileFieldCount
	for i, in := range f.inputs() {
		if i == f.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// buildProfile validates the fields into a wire profile.
func (f *ProfileForm) buildProfile() (api.UserProfile, string) {
	profile := api.UserProfile{
		Major:            strings.TrimSpace(f.major.Value()),
		Minors:           model.SplitList(f.minors.Value()),
		CompletedCourses: model.SplitList(f.courses.Value()),
		Interests:        model.SplitList(f.interests.Value()),
	}

	gpaText := strings.TrimSpace(f.gpa.Value())
	if gpaText != "" {
		gpa, err := strconv.ParseFloat(gpaText, 64)
		if err != nil {
			return profile, "GPA must be a number"
		}
		if gpa < 0 || gpa > 4 {
			return profile, "GPA must be between 0.0 and 4.0"
		}
		profile.GPA = &gpa
	}

	return profile, ""
}

// submit validates locally then saves the profile in a command.
func (f *ProfileForm) submit() tea.Cmd {
	if f.busy {
		return nil
	}

	profile, errText := f.buildProfile()
	if errText != "" {
		f.errText = errText
		return nil
	}

	f.errText = ""
	f.busy = true

	client := f.client
	return func() tea.Msg {
		result, err := client.UpdateProfile(context.Background(), profile)
		if err != nil {
			return ProfileErrorMsg{Err: err}
		}
		return ProfileSavedMsg{Profile: result.Profile}
	}
}

// View renders the form box.
func (f *ProfileForm) View() string {
	rows := []string{
		f.theme.FormTitle.Render("Academic profile"),
		f.theme.FormLabel.Render("Major"),
		f.major.View(),
		f.theme.FormLabel.Render("Minors"),
		f.minors.View(),
		f.theme.FormLabel.Render("GPA"),
		f.gpa.View(),
		f.theme.FormLabel.Render("Completed courses"),
		f.courses.View(),
		f.theme.FormLabel.Render("Interests"),
		f.interests.View(),
	}

	if f.busy {
		rows = append(rows, f.theme.FormHint.Render("Saving..."))
	}
	if f.errText != "" {
		rows = append(rows, f.theme.FormError.Render(f.errText))
	}
	rows = append(rows, f.theme.FormHint.Render("enter: save  esc: close"))

	return f.theme.FormBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
