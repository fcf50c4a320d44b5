// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the advisor TUI.
package components

import (
	"strings"

	"github.com/peidid/advisor-tui/internal/model"
	"github.com/peidid/advisor-tui/internal/ui/styles"
)

// =============================================================================
// AGENT STATUS STRIP
// =============================================================================

// AgentStrip shows the four advising agents in a fixed row. Each slot is
// active (spinner), completed (check), or idle (dimmed). Identifiers outside
// the registry — including the coordinator — never get their own slot; they
// only influence the working state of the strip as a whole.
type AgentStrip struct {
	active    map[model.AgentID]bool
	completed map[model.AgentID]bool
	spinner   string
	theme     *styles.Theme
}

// NewAgentStrip creates an idle strip.
func NewAgentStrip(theme *styles.Theme) *AgentStrip {
	return &AgentStrip{
		active:    make(map[model.AgentID]bool),
		completed: make(map[model.AgentID]bool),
		theme:     theme,
	}
}

// SetActive replaces the set of agents currently working.
func (s *AgentStrip) SetActive(ids []string) {
	s.active = make(map[model.AgentID]bool, len(ids))
	for _, id := range ids {
		s.active[model.AgentID(id)] = true
	}
}

// SetCompleted replaces the set of agents that contributed to the last reply.
func (s *AgentStrip) SetCompleted(ids []string) {
	s.completed = make(map[model.AgentID]bool, len(ids))
	for _, id := range ids {
		s.completed[model.AgentID(id)] = true
	}
}

// Reset clears both active and completed sets.
func (s *AgentStrip) Reset() {
	s.active = make(map[model.AgentID]bool)
	s.completed = make(map[model.AgentID]bool)
}

// SetSpinnerFrame sets the current spinner frame for active slots.
func (s *AgentStrip) SetSpinnerFrame(frame string) {
	s.spinner = frame
}

// Working reports whether any agent (coordinator included) is active.
func (s *AgentStrip) Working() bool {
	return len(s.active) > 0
}

// View renders the strip.
func (s *AgentStrip) View() string {
	parts := make([]string, 0, len(model.Agents))
	for _, info := range model.Agents {
		var slot string
		switch {
		case s.active[info.ID]:
			frame := s.spinner
			if frame == "" {
				frame = "*"
			}
			slot = s.theme.AgentActive.
				Foreground(styles.AgentColor(info.Color)).
				Render(frame + " " + info.Name)
		case s.completed[info.ID]:
			slot = s.theme.AgentCompleted.Render("✓ " + info.Name)
		default:
			slot = s.theme.AgentIdle.Render("· " + info.Name)
		}
		parts = append(parts, slot)
	}
	return s.theme.AgentStrip.Render(strings.Join(parts, "  "))
}
