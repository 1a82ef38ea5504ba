// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"github.com/tomc882/supportchat/domain"
)

// Store defines the interface for conversation persistence.
type Store interface {
	// EnsureSession inserts a session row if absent; no-op if it exists.
	EnsureSession(ctx context.Context, sessionID string) error

	// AppendMessage inserts a message with a server-assigned timestamp and
	// refreshes the session's updated_at.
	AppendMessage(ctx context.Context, sessionID, role, content string) (*domain.Message, error)

	// RecentMessages returns up to limit most-recent messages for the
	// session, newest first. Callers reverse for chronological order.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]domain.Message, error)

	// AllMessages returns every message for the session, oldest first.
	AllMessages(ctx context.Context, sessionID string) ([]domain.Message, error)

	// ListSessions returns all sessions ordered by updated_at descending.
	ListSessions(ctx context.Context) ([]domain.Session, error)

	// Lifecycle
	Close() error
}
