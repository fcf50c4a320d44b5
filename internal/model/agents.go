// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains client-side domain metadata for advisor-tui.
package model

// =============================================================================
// AGENT IDENTIFIERS
// =============================================================================

// AgentID identifies a backend reasoning agent. The backend reports which
// agents contributed to a reply; the client only displays them.
type AgentID string

// The closed set of agents the backend can report. Identifiers outside this
// set are skipped by renderers (see LookupAgent).
const (
	AgentPrograms AgentID = "programs_requirements"
	AgentCourses  AgentID = "course_scheduling"
	AgentPolicy   AgentID = "policy_compliance"
	AgentPlanning AgentID = "academic_planning"

	// AgentCoordinator is a pseudo-agent marked active while a request is in
	// flight. It has no display entry; the status strip shows it only as the
	// "working" state.
	AgentCoordinator AgentID = "coordinator"
)

// String returns the wire representation of the agent identifier.
func (id AgentID) String() string {
	return string(id)
}

// =============================================================================
// AGENT INFO TYPE
// =============================================================================

// AgentInfo contains display metadata for a known agent.
type AgentInfo struct {
	// ID is the identifier the backend reports in agents_used
	ID AgentID

	// Name is the short display name shown on badges
	Name string

	// Description is a one-line explanation of the agent's specialty
	Description string

	// Icon is a short ASCII marker rendered before the name
	Icon string

	// Color is the theme color key used for the agent's badge
	Color string
}

// =============================================================================
// AGENT REGISTRY
// =============================================================================

// Agents is the registry of known agents with their display metadata,
// in backend display order.
var Agents = []AgentInfo{
	{
		ID:          AgentPrograms,
		Name:        "Programs",
		Description: "Degree requirements",
		Icon:        "*",
		Color:       "blue",
	},
	{
		ID:          AgentCourses,
		Name:        "Courses",
		Description: "Course offerings",
		Icon:        "#",
		Color:       "green",
	},
	{
		ID:          AgentPolicy,
		Name:        "Policy",
		Description: "University policies",
		Icon:        "+",
		Color:       "purple",
	},
	{
		ID:          AgentPlanning,
		Name:        "Planning",
		Description: "Academic plans",
		Icon:        "~",
		Color:       "orange",
	},
}

var agentsByID = func() map[AgentID]AgentInfo {
	m := make(map[AgentID]AgentInfo, len(Agents))
	for _, a := range Agents {
		m[a.ID] = a
	}
	return m
}()

// LookupAgent returns the display metadata for an agent identifier.
// Unknown identifiers (including the coordinator pseudo-agent) return
// false; callers skip them rather than inventing a badge.
func LookupAgent(id AgentID) (AgentInfo, bool) {
	info, ok := agentsByID[id]
	return info, ok
}

// KnownAgentIDs returns the identifiers of all displayable agents,
// in display order.
func KnownAgentIDs() []AgentID {
	ids := make([]AgentID, len(Agents))
	for i, a := range Agents {
		ids[i] = a.ID
	}
	return ids
}
