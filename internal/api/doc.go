// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
//
// The backend owns authentication, persistence and the multi-agent advising
// workflow; this package only speaks its JSON contract. Every operation takes
// a context, returns typed structs, and converts non-2xx responses into
// *APIError with the server's "detail" message.
//
// Login and Register store the returned bearer token in the injected
// session.Store as a side effect; all later requests carry it automatically.
package api
