// advisor TUI - a terminal client for the Multi-Agent Advising backend.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/cli"
	"github.com/peidid/advisor-tui/internal/config"
	"github.com/peidid/advisor-tui/internal/logging"
	"github.com/peidid/advisor-tui/internal/session"
	"github.com/peidid/advisor-tui/internal/ui/chat"
)

func main() {
	cmd, args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'advisor help' for usage.")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	logPath, err := cfg.LogFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logger := logging.New(logPath)
	defer logger.Sync()

	tokenPath, err := cfg.TokenFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	sess := session.NewStore(tokenPath)
	client := api.NewClient(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	}, sess)

	if cmd != cli.CmdTUI {
		app := &cli.App{
			Client: client,
			Logger: logger,
			Out:    os.Stdout,
			Err:    os.Stderr,
		}
		os.Exit(app.Run(cmd, args))
	}

	logger.Info("starting TUI",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("version", cli.Version))

	model := chat.New(client, logger, chat.Options{
		SidebarWidth:   cfg.UI.SidebarWidth,
		PlainMessages:  !cfg.UI.Markdown,
		HideTimestamps: !cfg.UI.ShowTimestamps,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
