// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// commands.go - handlers for the non-TUI subcommands.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/peidid/advisor-tui/internal/api"
	"github.com/peidid/advisor-tui/internal/model"
)

// App bundles the dependencies the subcommand handlers need.
type App struct {
	Client *api.Client
	Logger *zap.Logger
	Out    io.Writer
	Err    io.Writer
}

// Run executes a parsed subcommand and returns the process exit code.
// CmdTUI is not handled here; main starts the Bubble Tea program itself.
func (a *App) Run(cmd Command, args *Args) int {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case CmdLogin:
		return a.runLogin(ctx, args)
	case CmdRegister:
		return a.runRegister(ctx, args)
	case CmdLogout:
		return a.runLogout(args)
	case CmdWhoami:
		return a.runWhoami(ctx)
	case CmdHealth:
		return a.runHealth(ctx)
	case CmdVersion:
		fmt.Fprintf(a.Out, "advisor %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		return 0
	case CmdHelp:
		fmt.Fprint(a.Out, Usage())
		return 0
	}

	fmt.Fprintln(a.Err, "unknown command")
	return 2
}

// fail logs and prints one error, returning the exit code.
func (a *App) fail(action string, err error) int {
	a.Logger.Warn(action+" failed", zap.Error(err))
	fmt.Fprintf(a.Err, "%s failed: %s\n", action, err)
	return 1
}

// =============================================================================
// AUTH COMMANDS
// =============================================================================

func (a *App) runLogin(ctx context.Context, args *Args) int {
	email := args.Email
	if email == "" {
		var err error
		if email, err = promptLine("Email: "); err != nil {
			return a.fail("login", err)
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return a.fail("login", err)
	}

	result, err := a.Client.Login(ctx, email, password)
	if err != nil {
		return a.fail("login", err)
	}

	a.Logger.Info("logged in", zap.String("user", result.User.ID))
	if !args.Quiet {
		fmt.Fprintf(a.Out, "Signed in as %s <%s>\n", result.User.Name, result.User.Email)
	}
	return 0
}

func (a *App) runRegister(ctx context.Context, args *Args) int {
	email := args.Email
	name := args.Name
	var err error

	if email == "" {
		if email, err = promptLine("Email: "); err != nil {
			return a.fail("register", err)
		}
	}
	if name == "" {
		if name, err = promptLine("Full name: "); err != nil {
			return a.fail("register", err)
		}
	}
	password, err := promptPassword("Password: ")
	if err != nil {
		return a.fail("register", err)
	}

	result, err := a.Client.Register(ctx, email, name, password)
	if err != nil {
		return a.fail("register", err)
	}

	a.Logger.Info("registered", zap.String("user", result.User.ID))
	if !args.Quiet {
		fmt.Fprintf(a.Out, "Account created for %s <%s>\n", result.User.Name, result.User.Email)
	}
	return 0
}

func (a *App) runLogout(args *Args) int {
	if err := a.Client.Logout(); err != nil {
		return a.fail("logout", err)
	}
	if !args.Quiet {
		fmt.Fprintln(a.Out, "Signed out")
	}
	return 0
}

// =============================================================================
// STATUS COMMANDS
// =============================================================================

func (a *App) runWhoami(ctx context.Context) int {
	if !a.Client.Session().Authenticated() {
		fmt.Fprintln(a.Out, "Not signed in")
		return 1
	}

	user, err := a.Client.Me(ctx)
	if err != nil {
		return a.fail("whoami", err)
	}

	fmt.Fprintf(a.Out, "%s <%s>\n", user.Name, user.Email)
	if p := user.Profile; p != nil {
		if p.Major != "" {
			fmt.Fprintf(a.Out, "  Major:     %s\n", p.Major)
		}
		if len(p.Minors) > 0 {
			fmt.Fprintf(a.Out, "  Minors:    %s\n", model.JoinList(p.Minors))
		}
		if p.GPA != nil {
			fmt.Fprintf(a.Out, "  GPA:       %s\n", strconv.FormatFloat(*p.GPA, 'f', 2, 64))
		}
		if len(p.CompletedCourses) > 0 {
			fmt.Fprintf(a.Out, "  Completed: %s\n", model.JoinList(p.CompletedCourses))
		}
		if len(p.Interests) > 0 {
			fmt.Fprintf(a.Out, "  Interests: %s\n", model.JoinList(p.Interests))
		}
	}
	return 0
}

func (a *App) runHealth(ctx context.Context) int {
	status, err := a.Client.CheckHealth(ctx)
	if err != nil {
		return a.fail("health check", err)
	}

	fmt.Fprintf(a.Out, "backend:  %s\n", status.Status)
	fmt.Fprintf(a.Out, "database: %s\n", status.Database)
	if status.Status != "healthy" {
		return 1
	}
	return 0
}
