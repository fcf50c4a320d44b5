// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of advisor.
//
// With no arguments the binary starts the chat TUI; the subcommands here
// exist for scripting: login/register/logout manage the stored session
// token, whoami and health print quick status, and version/help do the
// usual. All subcommands reuse the same api.Client and session store as
// the TUI, so a CLI login is immediately visible to the next TUI start.
package cli
