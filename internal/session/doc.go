// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the bearer token for the current user.
//
// The token is opaque to the client. It is set on successful login or
// register, cleared on logout, and read lazily from the durable file on the
// first access after process start. There is no expiry or refresh logic;
// an invalid token is only discovered when a request fails.
package session
