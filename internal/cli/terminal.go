// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - interactive prompts for the CLI subcommands.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// promptLine reads one line of input with line editing.
func promptLine(label string) (string, error) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	value, err := line.Prompt(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptPassword reads a password without echo. Falls back to a plain
// prompt when stdin is not a terminal (piped input in scripts).
func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(label)
	}

	fmt.Fprint(os.Stderr, label)
	data, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
