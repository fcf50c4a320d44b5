// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// APIError represents an error from the advising backend client.
type APIError struct {
	Type       ErrorType
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeUnauthorized
	ErrTypeNotFound
	ErrTypeServer
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrNotReachable = &APIError{Type: ErrTypeConnection, Message: "advising backend is not reachable"}
	ErrTimeout      = &APIError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// IsUnauthorized reports whether err is a 401 from the backend.
// The controller uses this to discard a stale token silently.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Type == ErrTypeUnauthorized
}

// errorDetail is the backend's standard error body.
type errorDetail struct {
	Detail string `json:"detail"`
}

// errorFromResponse translates a non-2xx response into an *APIError.
// The message is the server's "detail" field when the body parses,
// "Request failed" when it parses but carries no detail, and
// "HTTP <status>" when the body is not JSON at all.
func errorFromResponse(resp *http.Response) *APIError {
	errType := ErrTypeServer
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		errType = ErrTypeUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		errType = ErrTypeNotFound
	case resp.StatusCode < http.StatusInternalServerError:
		errType = ErrTypeInvalidResponse
	}

	message := "HTTP " + strconv.Itoa(resp.StatusCode)
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && len(body) > 0 {
		var detail errorDetail
		if json.Unmarshal(body, &detail) == nil {
			if detail.Detail != "" {
				message = detail.Detail
			} else {
				message = "Request failed"
			}
		}
	}

	return &APIError{
		Type:       errType,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
