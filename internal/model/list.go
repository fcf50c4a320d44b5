// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains client-side domain metadata for advisor-tui.
package model

import "strings"

// SplitList parses comma-separated form text into a list. Entries are
// trimmed of surrounding whitespace and empty entries are dropped, so an
// empty field yields an empty list rather than [""].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList renders a list back into comma-separated form text for editing.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
