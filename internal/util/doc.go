// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for advisor-tui.
//
// String helpers are rune- and width-aware so sidebar previews and status
// lines never split a multi-byte character. AtomicWriteFile is a crash-safe
// file write used for the durable session token.
package util
