// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the bearer token for the current user.
package session

import (
	"os"
	"strings"
	"sync"

	"github.com/peidid/advisor-tui/internal/util"
)

// =============================================================================
// SESSION STORE
// =============================================================================

// Store is the single source of truth for "is a user authenticated".
// It keeps the bearer token in memory and mirrors it to a durable file so
// a restart picks up the previous login.
//
// The store is an explicit object injected into the API client rather than
// package-level state, so tests get isolated sessions for free.
//
// Store is safe for concurrent use.
type Store struct {
	mu sync.Mutex

	// token is the in-memory copy. Empty means "not loaded or not set".
	token string

	// loaded is true once the durable file has been consulted. The first
	// Token() call after process start performs exactly one read.
	loaded bool

	// path is the durable token file. Empty disables persistence
	// (memory-only store, used by tests).
	path string
}

// NewStore creates a session store backed by the given token file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewMemoryStore creates a session store with no durable backing.
func NewMemoryStore() *Store {
	return &Store{loaded: true}
}

// =============================================================================
// TOKEN ACCESS
// =============================================================================

// Token returns the current bearer token, or "" when no user is logged in.
// On first call after process start it attempts one read from the durable
// file and caches the result; later calls never touch the filesystem.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.loaded = true
		if s.path != "" {
			if data, err := os.ReadFile(s.path); err == nil {
				s.token = strings.TrimSpace(string(data))
			}
		}
	}
	return s.token
}

// SetToken stores a new bearer token in memory and in the durable file.
// An empty token clears both (logout).
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.loaded = true

	if s.path == "" {
		return nil
	}
	if token == "" {
		err := os.Remove(s.path)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	return util.AtomicWriteFile(s.path, []byte(token), 0600)
}

// Clear removes the token from memory and durable storage.
func (s *Store) Clear() error {
	return s.SetToken("")
}

// Authenticated reports whether a token is currently held.
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}
