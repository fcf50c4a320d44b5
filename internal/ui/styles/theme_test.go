// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the advisor TUI.
package styles

import "testing"

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Spot-check a few styles render without panicking.
	theme.UserBubble.Render("hello")
	theme.SidebarItemSelected.Render("selected")
	theme.FormError.Render("bad credentials")
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize not applied: %dx%d", theme.Width, theme.Height)
	}
}

func TestAgentColor(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"blue", AgentBlue.Dark},
		{"green", AgentGreen.Dark},
		{"purple", AgentPurple.Dark},
		{"orange", AgentOrange.Dark},
		{"unknown", TextMuted.Dark},
		{"", TextMuted.Dark},
	}

	for _, tt := range tests {
		if got := AgentColor(tt.key); got.Dark != tt.want {
			t.Errorf("AgentColor(%q).Dark = %q, want %q", tt.key, got.Dark, tt.want)
		}
	}
}

func TestAgentBadgeStyle(t *testing.T) {
	theme := NewTheme()
	// Distinct keys must produce distinct foregrounds.
	blue := theme.AgentBadgeStyle("blue")
	green := theme.AgentBadgeStyle("green")
	if blue.GetForeground() == green.GetForeground() {
		t.Error("badge styles for different agents should differ")
	}
}
