// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

// =============================================================================
// WIRE TYPES
// =============================================================================
// Field names and JSON tags follow the backend exactly; conversations and
// messages use Mongo-style "_id" keys, users use "id".

// User is an authenticated account as returned by the backend.
type User struct {
	ID      string       `json:"id"`
	Email   string       `json:"email"`
	Name    string       `json:"name"`
	Profile *UserProfile `json:"profile,omitempty"`
}

// UserProfile holds the academic profile attached to a user.
// All fields are optional on the wire.
type UserProfile struct {
	Major            string   `json:"major,omitempty"`
	Minors           []string `json:"minors,omitempty"`
	GPA              *float64 `json:"gpa,omitempty"`
	CompletedCourses []string `json:"completed_courses,omitempty"`
	Interests        []string `json:"interests,omitempty"`
}

// Conversation is a chat thread. Messages are only populated when a single
// conversation is fetched by id.
type Conversation struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
	MessageCount int       `json:"message_count"`
	Messages     []Message `json:"messages,omitempty"`
}

// Message is a single turn in a conversation.
type Message struct {
	ID             string           `json:"_id"`
	ConversationID string           `json:"conversation_id"`
	Role           string           `json:"role"`
	Content        string           `json:"content"`
	Timestamp      string           `json:"timestamp"`
	Metadata       *MessageMetadata `json:"metadata,omitempty"`
}

// Message roles used by the backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessageMetadata carries per-message annotations from the orchestrator.
type MessageMetadata struct {
	AgentsUsed []string `json:"agents_used,omitempty"`
}

// ChatResponse is the result of sending a message.
type ChatResponse struct {
	ConversationID  string           `json:"conversation_id"`
	Response        string           `json:"response"`
	AgentsUsed      []string         `json:"agents_used"`
	WorkflowDetails *WorkflowDetails `json:"workflow_details,omitempty"`
}

// WorkflowDetails summarizes orchestration findings for a chat turn.
type WorkflowDetails struct {
	Conflicts int `json:"conflicts"`
	Risks     int `json:"risks"`
}

// HealthStatus is the backend liveness report.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// =============================================================================
// REQUEST / RESPONSE ENVELOPES
// =============================================================================

// AuthResult is the login/register response envelope.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResult is the profile-update response envelope.
type ProfileResult struct {
	Success bool        `json:"success"`
	Profile UserProfile `json:"profile"`
}

type conversationList struct {
	Conversations []Conversation `json:"conversations"`
}

type createConversationRequest struct {
	Title string `json:"title,omitempty"`
}

type deleteResult struct {
	Success bool `json:"success"`
}

type chatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id,omitempty"`
}
