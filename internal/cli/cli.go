// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command handlers for advisor.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota // Default: start the chat TUI
	CmdLogin
	CmdRegister
	CmdLogout
	CmdWhoami
	CmdHealth
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet bool

	// Command-specific
	Email string
	Name  string

	// Raw args remaining after flag parsing
	Raw []string
}

const usageText = `advisor - terminal client for the Multi-Agent Advising backend

The chat itself runs in a full-screen TUI; the subcommands below cover
scripting and quick checks without entering the TUI.

Usage:
  advisor                    Start the chat TUI (default)
  advisor login              Sign in and store the session token
  advisor register           Create an account and store the session token
  advisor logout             Discard the stored session token
  advisor whoami             Show the signed-in user and profile
  advisor health             Check backend and database status
  advisor version            Show version information
  advisor help               Show this help

Flags:
  --email <address>          Email for login/register (prompted otherwise)
  --name <name>              Full name for register (prompted otherwise)
  --quiet                    Suppress non-essential output

Configuration:
  ~/.advisor/config.toml     Base URL, timeout, UI options
  ADVISOR_API_URL            Override the backend base URL
  ADVISOR_TIMEOUT_SECS       Override the request timeout
`

// Usage returns the full help text.
func Usage() string {
	return usageText
}

// Parse interprets the command line (without the program name).
func Parse(argv []string) (Command, *Args, error) {
	args := &Args{}
	cmd := CmdTUI

	positional := make([]string, 0, len(argv))
	i := 0
	for i < len(argv) {
		arg := argv[i]
		switch {
		case arg == "--quiet" || arg == "-q":
			args.Quiet = true
		case arg == "--email":
			if i+1 >= len(argv) {
				return cmd, nil, fmt.Errorf("--email requires a value")
			}
			i++
			args.Email = argv[i]
		case strings.HasPrefix(arg, "--email="):
			args.Email = strings.TrimPrefix(arg, "--email=")
		case arg == "--name":
			if i+1 >= len(argv) {
				return cmd, nil, fmt.Errorf("--name requires a value")
			}
			i++
			args.Name = argv[i]
		case strings.HasPrefix(arg, "--name="):
			args.Name = strings.TrimPrefix(arg, "--name=")
		case arg == "--help" || arg == "-h":
			return CmdHelp, args, nil
		case strings.HasPrefix(arg, "-"):
			return cmd, nil, fmt.Errorf("unknown flag: %s", arg)
		default:
			positional = append(positional, arg)
		}
		i++
	}
	args.Raw = positional

	if len(positional) == 0 {
		return CmdTUI, args, nil
	}

	switch positional[0] {
	case "login":
		cmd = CmdLogin
	case "register":
		cmd = CmdRegister
	case "logout":
		cmd = CmdLogout
	case "whoami", "me":
		cmd = CmdWhoami
	case "health", "status":
		cmd = CmdHealth
	case "version", "-v":
		cmd = CmdVersion
	case "help":
		cmd = CmdHelp
	default:
		return cmd, nil, fmt.Errorf("unknown command: %s", positional[0])
	}
	return cmd, args, nil
}
