// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains client-side domain metadata for advisor-tui.
//
// The backend owns all persistent state; this package holds only what the
// client needs to render it: the closed registry of known agents with
// display metadata, provisional message id generation for optimistic
// updates, and form-field list parsing.
package model
