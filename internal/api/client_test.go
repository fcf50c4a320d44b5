// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the advising backend.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peidid/advisor-tui/internal/session"
)

// newTestClient wires a client to the given handler with a memory session.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(&ClientConfig{BaseURL: server.URL}, session.NewMemoryStore())
}

// =============================================================================
// AUTH
// =============================================================================

func TestLogin_StoresTokenAndSendsBearer(t *testing.T) {
	var authHeader string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "student@school.edu", req["email"])
		assert.Equal(t, "secret", req["password"])

		json.NewEncoder(w).Encode(AuthResult{
			User:  User{ID: "u1", Email: req["email"], Name: "Student"},
			Token: "t1",
		})
	})
	mux.HandleFunc("/api/conversations", func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string][]Conversation{"conversations": {}})
	})

	client := newTestClient(t, mux)

	result, err := client.Login(context.Background(), "student@school.edu", "secret")
	require.NoError(t, err)
	assert.Equal(t, "t1", result.Token)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "t1", client.Session().Token())

	// Every later request carries the stored token.
	_, err = client.ListConversations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", authHeader)
}

func TestRegister_StoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "New Student", req["name"])
		json.NewEncoder(w).Encode(AuthResult{
			User:  User{ID: "u2", Email: req["email"], Name: req["name"]},
			Token: "t2",
		})
	})

	client := newTestClient(t, mux)
	result, err := client.Register(context.Background(), "new@school.edu", "New Student", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t2", result.Token)
	assert.Equal(t, "t2", client.Session().Token())
}

func TestLogout_ClearsToken(t *testing.T) {
	client := NewClient(nil, session.NewMemoryStore())
	require.NoError(t, client.Session().SetToken("t1"))
	require.NoError(t, client.Logout())
	assert.Empty(t, client.Session().Token())
}

func TestMe_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token"})
	})

	client := newTestClient(t, mux)
	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid token", err.Error())
}

func TestUpdateProfile_RoundTrip(t *testing.T) {
	gpa := 3.4
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		var profile UserProfile
		require.NoError(t, json.NewDecoder(r.Body).Decode(&profile))
		json.NewEncoder(w).Encode(ProfileResult{Success: true, Profile: profile})
	})

	client := newTestClient(t, mux)
	result, err := client.UpdateProfile(context.Background(), UserProfile{
		Major:  "Computer Science",
		Minors: []string{"Math"},
		GPA:    &gpa,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Computer Science", result.Profile.Major)
	require.NotNil(t, result.Profile.GPA)
	assert.Equal(t, 3.4, *result.Profile.GPA)
}

// =============================================================================
// ERROR TRANSLATION
// =============================================================================

func TestErrorTranslation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
		errType ErrorType
	}{
		{"server detail", 500, `{"detail":"database down"}`, "database down", ErrTypeServer},
		{"json without detail", 400, `{"error":"nope"}`, "Request failed", ErrTypeInvalidResponse},
		{"non-json body", 502, `bad gateway`, "HTTP 502", ErrTypeServer},
		{"empty body", 503, ``, "HTTP 503", ErrTypeServer},
		{"unauthorized", 401, `{"detail":"Not authenticated"}`, "Not authenticated", ErrTypeUnauthorized},
		{"not found", 404, `{"detail":"Conversation not found"}`, "Conversation not found", ErrTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))

			_, err := client.Me(context.Background())
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.errType, apiErr.Type)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestConnectionError(t *testing.T) {
	// Point at a closed port.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(&ClientConfig{BaseURL: url}, session.NewMemoryStore())
	_, err := client.CheckHealth(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, ErrTypeConnection, apiErr.Type)
}

// =============================================================================
// CONVERSATIONS AND CHAT
// =============================================================================

func TestConversationOperations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/conversations", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string][]Conversation{"conversations": {
				{ID: "c2", Title: "Minor planning", MessageCount: 4},
				{ID: "c1", Title: "First chat", MessageCount: 2},
			}})
		case http.MethodPost:
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(Conversation{ID: "c3", Title: req["title"]})
		}
	})
	mux.HandleFunc("/api/conversations/c1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(Conversation{
				ID:    "c1",
				Title: "First chat",
				Messages: []Message{
					{ID: "m1", Role: RoleUser, Content: "Can I add a CS minor?"},
					{ID: "m2", Role: RoleAssistant, Content: "Yes.", Metadata: &MessageMetadata{
						AgentsUsed: []string{"programs_requirements"},
					}},
				},
			})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]bool{"success": true})
		}
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	list, err := client.ListConversations(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c2", list[0].ID)

	created, err := client.CreateConversation(ctx, "New chat")
	require.NoError(t, err)
	assert.Equal(t, "c3", created.ID)

	conv, err := client.GetConversation(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, conv.Messages, 2)
	assert.Equal(t, RoleAssistant, conv.Messages[1].Role)
	require.NotNil(t, conv.Messages[1].Metadata)
	assert.Equal(t, []string{"programs_requirements"}, conv.Messages[1].Metadata.AgentsUsed)

	require.NoError(t, client.DeleteConversation(ctx, "c1"))
}

func TestSendChat(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What courses should I take?", req["message"])

		json.NewEncoder(w).Encode(ChatResponse{
			ConversationID: "c9",
			Response:       "Here is a plan.",
			AgentsUsed:     []string{"course_scheduling", "academic_planning"},
			WorkflowDetails: &WorkflowDetails{
				Conflicts: 1,
				Risks:     0,
			},
		})
	})

	client := newTestClient(t, mux)

	// Empty conversation id: the body must omit the field so the backend
	// starts a fresh conversation.
	resp, err := client.SendChat(context.Background(), "What courses should I take?", "")
	require.NoError(t, err)
	assert.Equal(t, "c9", resp.ConversationID)
	assert.Equal(t, "Here is a plan.", resp.Response)
	assert.Equal(t, []string{"course_scheduling", "academic_planning"}, resp.AgentsUsed)
	require.NotNil(t, resp.WorkflowDetails)
	assert.Equal(t, 1, resp.WorkflowDetails.Conflicts)
}

func TestSendChat_OmitsEmptyConversationID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, present := raw["conversation_id"]
		assert.False(t, present, "conversation_id should be omitted when empty")
		json.NewEncoder(w).Encode(ChatResponse{ConversationID: "c1", Response: "ok"})
	})

	client := newTestClient(t, mux)
	_, err := client.SendChat(context.Background(), "hi", "")
	require.NoError(t, err)
}

func TestCheckHealth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(HealthStatus{Status: "healthy", Database: "connected"})
	})

	client := newTestClient(t, mux)
	status, err := client.CheckHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "connected", status.Database)
}
