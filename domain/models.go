// Package domain defines the core domain models for the support chat backend.
package domain

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Session represents a conversation thread identified by the client.
type Session struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents a single turn in a session.
type Message struct {
	MessageID string    `json:"-"`
	SessionID string    `json:"-"`
	Role      string    `json:"role"` // user or assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Document is one grounding snippet from the support documentation corpus.
type Document struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// ChatResponse is the success body of POST /api/chat.
type ChatResponse struct {
	Reply      string `json:"reply"`
	TokensUsed int    `json:"tokensUsed"`
}
