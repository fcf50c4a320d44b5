// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"strings"
	"testing"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

func testTheme() *styles.Theme {
	return styles.NewTheme()
}

// =============================================================================
// MESSAGE BUBBLE
// =============================================================================

func TestMessageBubble_UserContent(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:    api.RoleUser,
		Content: "Can I add a CS minor?",
	}, testTheme(), nil)
	bubble.SetWidth(80)

	view := bubble.View()
	if !strings.Contains(view, "Can I add a CS minor?") {
		t.Error("user bubble should contain the message content")
	}
	if !strings.Contains(view, "you") {
		t.Error("user bubble should carry the role indicator")
	}
}

func TestMessageBubble_AgentBadges(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:    api.RoleAssistant,
		Content: "Here is your plan.",
		Metadata: &api.MessageMetadata{
			AgentsUsed: []string{"programs_requirements", "course_scheduling"},
		},
	}, testTheme(), nil)
	bubble.SetWidth(80)

	view := bubble.View()
	if !strings.Contains(view, "Programs") {
		t.Error("badge for programs agent missing")
	}
	if !strings.Contains(view, "Courses") {
		t.Error("badge for courses agent missing")
	}
}

func TestMessageBubble_UnknownAgentSkipped(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:    api.RoleAssistant,
		Content: "Done.",
		Metadata: &api.MessageMetadata{
			AgentsUsed: []string{"coordinator", "future_agent", "policy_compliance"},
		},
	}, testTheme(), nil)
	bubble.SetWidth(80)

	view := bubble.View()
	if strings.Contains(view, "coordinator") || strings.Contains(view, "future_agent") {
		t.Error("unknown agent ids must not render")
	}
	if !strings.Contains(view, "Policy") {
		t.Error("known agent badge should still render")
	}
}

func TestMessageBubble_NoMetadataNoBadges(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:    api.RoleAssistant,
		Content: "Plain reply.",
	}, testTheme(), nil)
	bubble.SetWidth(80)

	view := bubble.View()
	if !strings.Contains(view, "Plain reply.") {
		t.Error("content missing")
	}
}

func TestMessageList_Empty(t *testing.T) {
	list := NewMessageList(testTheme())
	if list.View() != "" {
		t.Error("empty list should render nothing")
	}
}

func TestMessageBubble_Timestamp(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:      api.RoleUser,
		Content:   "hello",
		Timestamp: "2025-03-14T09:26:00Z",
	}, testTheme(), nil)
	bubble.SetWidth(80)

	if strings.Contains(bubble.View(), "Mar") {
		t.Error("timestamp must be hidden by default")
	}

	bubble.ShowTimestamp = true
	if !strings.Contains(bubble.View(), "Mar 14") {
		t.Error("timestamp should render when enabled")
	}
}

func TestMessageBubble_MalformedTimestampIgnored(t *testing.T) {
	bubble := NewMessageBubble(api.Message{
		Role:      api.RoleUser,
		Content:   "hello",
		Timestamp: "not-a-time",
	}, testTheme(), nil)
	bubble.SetWidth(80)
	bubble.ShowTimestamp = true

	view := bubble.View()
	if !strings.Contains(view, "hello") {
		t.Error("content missing")
	}
	if strings.Contains(view, "not-a-time") {
		t.Error("unparseable timestamps must not render")
	}
}

func TestMessageList_MarkdownToggle(t *testing.T) {
	list := NewMessageList(testTheme())
	list.SetMessages([]api.Message{
		{Role: api.RoleAssistant, Content: "plain words"},
	})

	list.SetMarkdown(false)
	if !strings.Contains(list.View(), "plain words") {
		t.Error("disabled markdown should fall back to word wrapping")
	}

	// A resize while disabled must not bring the renderer back.
	list.SetWidth(100)
	if !strings.Contains(list.View(), "plain words") {
		t.Error("content missing after resize")
	}

	list.SetMarkdown(true)
	if !strings.Contains(list.View(), "plain words") {
		t.Error("re-enabled markdown should still render the content")
	}
}

// =============================================================================
// AGENT STRIP
// =============================================================================

func TestAgentStrip_States(t *testing.T) {
	strip := NewAgentStrip(testTheme())

	// Idle: all four agents dimmed.
	view := strip.View()
	for _, name := range []string{"Programs", "Courses", "Policy", "Planning"} {
		if !strings.Contains(view, name) {
			t.Errorf("idle strip missing agent %s", name)
		}
	}
	if strip.Working() {
		t.Error("idle strip should not report working")
	}

	// Coordinator active during send: strip is working but no slot changes.
	strip.SetActive([]string{"coordinator"})
	if !strip.Working() {
		t.Error("strip with active coordinator should report working")
	}

	// Completion replaces activity.
	strip.SetCompleted([]string{"programs_requirements"})
	strip.SetActive(nil)
	view = strip.View()
	if !strings.Contains(view, "✓ Programs") {
		t.Error("completed agent should render a check")
	}
	if strip.Working() {
		t.Error("strip should be idle after completion")
	}

	strip.Reset()
	if strings.Contains(strip.View(), "✓") {
		t.Error("reset should clear completion marks")
	}
}

// =============================================================================
// SIDEBAR
// =============================================================================

func sampleConversations() []api.Conversation {
	return []api.Conversation{
		{ID: "c1", Title: "Minor requirements", MessageCount: 4},
		{ID: "c2", Title: "Fall schedule", MessageCount: 2},
		{ID: "c3", Title: "Graduation audit", MessageCount: 9},
	}
}

func TestSidebar_CursorAndSelection(t *testing.T) {
	sb := NewSidebar(testTheme(), 30)
	sb.SetConversations(sampleConversations())

	if got := sb.SelectedID(); got != "c1" {
		t.Errorf("initial selection = %q, want c1", got)
	}

	sb.MoveDown()
	sb.MoveDown()
	if got := sb.SelectedID(); got != "c3" {
		t.Errorf("selection after two moves = %q, want c3", got)
	}

	// Cursor clamps at the bottom.
	sb.MoveDown()
	if got := sb.SelectedID(); got != "c3" {
		t.Errorf("selection should clamp at last item, got %q", got)
	}

	sb.MoveUp()
	if got := sb.SelectedID(); got != "c2" {
		t.Errorf("selection after move up = %q, want c2", got)
	}
}

func TestSidebar_CursorClampsOnShrink(t *testing.T) {
	sb := NewSidebar(testTheme(), 30)
	sb.SetConversations(sampleConversations())
	sb.MoveDown()
	sb.MoveDown()

	// List shrinks under the cursor (delete of the active conversation).
	sb.SetConversations(sampleConversations()[:1])
	if got := sb.SelectedID(); got != "c1" {
		t.Errorf("selection after shrink = %q, want c1", got)
	}

	sb.SetConversations(nil)
	if got := sb.SelectedID(); got != "" {
		t.Errorf("selection on empty list = %q, want empty", got)
	}
}

func TestSidebar_Collapse(t *testing.T) {
	sb := NewSidebar(testTheme(), 30)
	sb.SetConversations(sampleConversations())

	if sb.Collapsed() {
		t.Error("sidebar should start expanded")
	}
	sb.ToggleCollapsed()
	if !sb.Collapsed() {
		t.Error("sidebar should collapse")
	}
	if sb.View() != "" {
		t.Error("collapsed sidebar should render nothing")
	}
}

func TestSidebar_ViewContents(t *testing.T) {
	sb := NewSidebar(testTheme(), 30)
	sb.SetConversations(sampleConversations())
	sb.SetUserName("Avery Student")
	sb.SetActiveID("c2")

	view := sb.View()
	if !strings.Contains(view, "Minor requirements") {
		t.Error("sidebar missing conversation title")
	}
	if !strings.Contains(view, "Avery Student") {
		t.Error("sidebar missing user footer")
	}
	if !strings.Contains(view, "4 messages") {
		t.Error("sidebar missing message count")
	}
}

// =============================================================================
// PROFILE FORM VALIDATION
// =============================================================================

func TestProfileForm_BuildProfile(t *testing.T) {
	form := NewProfileForm(nil, testTheme(), nil)
	form.major.SetValue("  Computer Science ")
	form.minors.SetValue("Math, , Statistics")
	form.gpa.SetValue("3.5")
	form.courses.SetValue("CS101,CS102")
	form.interests.SetValue("")

	profile, errText := form.buildProfile()
	if errText != "" {
		t.Fatalf("unexpected validation error: %s", errText)
	}
	if profile.Major != "Computer Science" {
		t.Errorf("major = %q", profile.Major)
	}
	if len(profile.Minors) != 2 || profile.Minors[1] != "Statistics" {
		t.Errorf("minors = %v", profile.Minors)
	}
	if profile.GPA == nil || *profile.GPA != 3.5 {
		t.Errorf("gpa = %v", profile.GPA)
	}
	if len(profile.CompletedCourses) != 2 {
		t.Errorf("courses = %v", profile.CompletedCourses)
	}
	if len(profile.Interests) != 0 {
		t.Errorf("interests should be empty, got %v", profile.Interests)
	}
}

func TestProfileForm_GPABounds(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"0", false},
		{"4", false},
		{"4.0", false},
		{"2.75", false},
		{"", false},
		{"4.1", true},
		{"-0.5", true},
		{"abc", true},
	}

	for _, tt := range tests {
		form := NewProfileForm(nil, testTheme(), nil)
		form.gpa.SetValue(tt.value)
		_, errText := form.buildProfile()
		if (errText != "") != tt.wantErr {
			t.Errorf("gpa %q: error = %q, wantErr = %v", tt.value, errText, tt.wantErr)
		}
	}
}

func TestProfileForm_PrefillRoundTrip(t *testing.T) {
	gpa := 3.2
	form := NewProfileForm(nil, testTheme(), &api.UserProfile{
		Major:     "Biology",
		Minors:    []string{"Chemistry", "Math"},
		GPA:       &gpa,
		Interests: []string{"genetics"},
	})

	profile, errText := form.buildProfile()
	if errText != "" {
		t.Fatalf("unexpected validation error: %s", errText)
	}
	if profile.Major != "Biology" {
		t.Errorf("major = %q", profile.Major)
	}
	if len(profile.Minors) != 2 {
		t.Errorf("minors = %v", profile.Minors)
	}
	if profile.GPA == nil || *profile.GPA != 3.2 {
		t.Errorf("gpa = %v", profile.GPA)
	}
}

// =============================================================================
// AUTH FORM VALIDATION
// =============================================================================

func TestAuthForm_RequiresCredentials(t *testing.T) {
	form := NewAuthForm(nil, testTheme())

	if cmd := form.submit(); cmd != nil {
		t.Error("submit with empty fields should not produce a command")
	}
	if form.errText == "" {
		t.Error("empty submit should set an inline error")
	}
}

func TestAuthForm_RegisterRequiresName(t *testing.T) {
	form := NewAuthForm(nil, testTheme())
	form.toggleMode()
	if form.Mode() != ModeRegister {
		t.Fatal("toggle should switch to register mode")
	}

	form.email.SetValue("a@b.edu")
	form.pass.SetValue("pw")
	if cmd := form.submit(); cmd != nil {
		t.Error("register without name should not produce a command")
	}
	if !strings.Contains(form.errText, "Name") {
		t.Errorf("error should mention name, got %q", form.errText)
	}
}

func TestAuthForm_ViewByMode(t *testing.T) {
	form := NewAuthForm(nil, testTheme())

	view := form.View()
	if !strings.Contains(view, "Sign in") {
		t.Error("login view missing title")
	}
	if strings.Contains(view, "Name") {
		t.Error("login view should not show the name field")
	}

	form.toggleMode()
	view = form.View()
	if !strings.Contains(view, "Create account") {
		t.Error("register view missing title")
	}
	if !strings.Contains(view, "Name") {
		t.Error("register view should show the name field")
	}
}

// =============================================================================
// TEXT HELPERS
// =============================================================================

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("one two three four five", 9)
	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 9 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}

func TestWordWrap_PreservesNewlines(t *testing.T) {
	wrapped := wordWrap("first\n\nsecond", 40)
	if !strings.Contains(wrapped, "first") || !strings.Contains(wrapped, "second") {
		t.Errorf("content lost: %q", wrapped)
	}
	if len(strings.Split(wrapped, "\n")) != 3 {
		t.Errorf("newlines not preserved: %q", wrapped)
	}
}

func TestMarkdownRenderer_FallsBackOnPlainText(t *testing.T) {
	r := NewMarkdownRenderer(60)
	out := r.Render("just plain text")
	if !strings.Contains(out, "just plain text") {
		t.Errorf("content lost in render: %q", out)
	}
}
