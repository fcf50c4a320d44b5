// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains client-side domain metadata for advisor-tui.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// PROVISIONAL MESSAGE IDS
// =============================================================================

// ProvisionalPrefix marks client-generated message ids. A provisional id is
// assigned to an optimistically appended message before the backend has
// confirmed it; the backend never sees these ids and they are never
// reconciled with server-issued ones.
const ProvisionalPrefix = "temp-"

// NewProvisionalID returns a fresh provisional message id. The uuid keeps
// ids unique within a session; the timestamp suffix keeps them sortable
// when scanning logs.
func NewProvisionalID() string {
	return ProvisionalPrefix + uuid.NewString() + "-" + time.Now().UTC().Format("20060102150405")
}

// IsProvisionalID reports whether an id was generated client-side.
func IsProvisionalID(id string) bool {
	return strings.HasPrefix(id, ProvisionalPrefix)
}
