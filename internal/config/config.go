// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for advisor-tui.
//
// Configuration sources, in order of precedence:
//   - Environment variables (ADVISOR_API_URL, ADVISOR_TIMEOUT_SECS)
//   - ~/.advisor/config.toml
//   - Built-in defaults
//
// A .env file in the working directory is loaded first (if present) so the
// environment overrides work the same in development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete advisor-tui configuration.
type Config struct {
	// API configuration
	API APIConfig `toml:"api"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Paths configuration
	Paths PathsConfig `toml:"paths"`
}

// APIConfig contains backend connection configuration.
type APIConfig struct {
	// BaseURL is the advising backend base URL
	BaseURL string `toml:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds (0 = transport default)
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains TUI display configuration.
type UIConfig struct {
	// ShowTimestamps renders message timestamps in the chat log
	ShowTimestamps bool `toml:"show_timestamps"`
	// SidebarWidth is the conversation sidebar width in columns
	SidebarWidth int `toml:"sidebar_width"`
	// Markdown enables markdown rendering of assistant replies
	Markdown bool `toml:"markdown"`
}

// PathsConfig contains file location overrides.
type PathsConfig struct {
	// TokenFile overrides the durable session token location
	// (default: ~/.advisor/token)
	TokenFile string `toml:"token_file"`
	// LogFile overrides the application log location
	// (default: ~/.advisor/advisor.log)
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "http://localhost:8000",
			TimeoutSecs: 0,
		},
		UI: UIConfig{
			ShowTimestamps: true,
			SidebarWidth:   32,
			Markdown:       true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the advisor configuration directory (~/.advisor),
// creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".advisor")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// Load reads the configuration from ~/.advisor/config.toml, applies
// environment overrides, and validates the result. A missing config file
// is not an error; defaults are used.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.toml"))
}

// LoadFrom reads the configuration from an explicit path. Used by tests
// and by Load.
func LoadFrom(path string) (*Config, error) {
	// Best effort; a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variables on top of file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADVISOR_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("ADVISOR_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			c.API.TimeoutSecs = secs
		}
	}
	if v := os.Getenv("ADVISOR_TOKEN_FILE"); v != "" {
		c.Paths.TokenFile = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values that would break at runtime.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api base_url %q: must be an absolute http(s) URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api base_url scheme %q", u.Scheme)
	}
	if c.API.TimeoutSecs < 0 {
		return fmt.Errorf("timeout_secs must be >= 0, got %d", c.API.TimeoutSecs)
	}
	if c.UI.SidebarWidth < 20 {
		c.UI.SidebarWidth = 20
	}
	return nil
}

// =============================================================================
// DERIVED PATHS
// =============================================================================

// TokenFile returns the durable token path, resolving the default under the
// config directory when no override is set.
func (c *Config) TokenFile() (string, error) {
	if c.Paths.TokenFile != "" {
		return c.Paths.TokenFile, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "token"), nil
}

// LogFile returns the application log path.
func (c *Config) LogFile() (string, error) {
	if c.Paths.LogFile != "" {
		return c.Paths.LogFile, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "advisor.log"), nil
}
