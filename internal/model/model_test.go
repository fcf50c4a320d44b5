// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains client-side domain metadata for advisor-tui.
package model

import (
	"reflect"
	"testing"
)

// =============================================================================
// AGENT REGISTRY TESTS
// =============================================================================

func TestLookupAgent_Known(t *testing.T) {
	for _, id := range KnownAgentIDs() {
		info, ok := LookupAgent(id)
		if !ok {
			t.Errorf("LookupAgent(%q) should succeed", id)
		}
		if info.ID != id {
			t.Errorf("info.ID = %q, want %q", info.ID, id)
		}
		if info.Name == "" || info.Color == "" {
			t.Errorf("agent %q has incomplete display metadata", id)
		}
	}
}

func TestLookupAgent_Unknown(t *testing.T) {
	if _, ok := LookupAgent("nonexistent_agent"); ok {
		t.Error("unknown identifier should not resolve")
	}
}

func TestLookupAgent_CoordinatorHasNoBadge(t *testing.T) {
	// The coordinator is marked active during a send but is not part of the
	// display registry.
	if _, ok := LookupAgent(AgentCoordinator); ok {
		t.Error("coordinator should not have a display entry")
	}
}

func TestKnownAgentIDs_Order(t *testing.T) {
	want := []AgentID{AgentPrograms, AgentCourses, AgentPolicy, AgentPlanning}
	if got := KnownAgentIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("KnownAgentIDs() = %v, want %v", got, want)
	}
}

// =============================================================================
// PROVISIONAL ID TESTS
// =============================================================================

func TestNewProvisionalID(t *testing.T) {
	id := NewProvisionalID()
	if !IsProvisionalID(id) {
		t.Errorf("generated id %q should be provisional", id)
	}

	other := NewProvisionalID()
	if id == other {
		t.Error("consecutive provisional ids should differ")
	}
}

func TestIsProvisionalID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"temp-abc-20250101000000", true},
		{"temp-", true},
		{"64f1c0ffee", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsProvisionalID(tt.id); got != tt.want {
			t.Errorf("IsProvisionalID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

// =============================================================================
// LIST PARSING TESTS
// =============================================================================

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "a, b, c", []string{"a", "b", "c"}},
		{"extra whitespace", "  15-112 ,15-122,  67-262  ", []string{"15-112", "15-122", "67-262"}},
		{"empty field", "", []string{}},
		{"only commas", ",,,", []string{}},
		{"trailing comma", "CS, Data Science,", []string{"CS", "Data Science"}},
		{"single", "Computer Science", []string{"Computer Science"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoinList_RoundTrip(t *testing.T) {
	in := []string{"Computer Science", "Data Science"}
	if got := SplitList(JoinList(in)); !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %#v, want %#v", got, in)
	}
}
