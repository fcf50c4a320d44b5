// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging configures the application logger for advisor-tui.
//
// The TUI owns stdout and stderr, so all logging goes to a file under the
// advisor config directory. Every caught failure in the UI is logged here
// exactly once before being converted to a user-visible state.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger writing to the given file path.
// When the file cannot be opened (read-only home, etc.) a no-op logger is
// returned instead of an error: logging must never take the client down.
func New(path string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
