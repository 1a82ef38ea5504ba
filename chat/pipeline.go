// Package chat implements the conversation pipeline: persist the user turn,
// assemble a documentation-grounded prompt from bounded history, call the
// completion API and persist the reply.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomc882/supportchat/domain"
	"github.com/tomc882/supportchat/llm"
	"github.com/tomc882/supportchat/prompt"
	"github.com/tomc882/supportchat/store"
)

// HistoryLimit is the number of most-recent messages included in the prompt.
const HistoryLimit = 10

// Pipeline errors, matched by the HTTP layer with errors.Is.
var (
	// ErrValidation means a required field was missing; nothing was persisted.
	ErrValidation = errors.New("sessionId and message required")
	// ErrStorage means the history read failed.
	ErrStorage = errors.New("storage failure")
	// ErrCompletion means the completion call or a surrounding step failed.
	ErrCompletion = errors.New("completion failure")
)

// Pipeline orchestrates one chat turn. Stateless across requests; all
// conversation state lives in the store.
type Pipeline struct {
	store      store.Store
	completer  llm.Completer
	corpusText string
}

// NewPipeline creates a pipeline over the given store and completion client.
// corpusText is the pre-rendered documentation corpus, fixed for the process
// lifetime.
func NewPipeline(s store.Store, completer llm.Completer, corpusText string) *Pipeline {
	return &Pipeline{
		store:      s,
		completer:  completer,
		corpusText: corpusText,
	}
}

// Send runs one chat turn and returns the assistant reply with token usage.
//
// The user message is persisted before the history read, so it shows up in
// the prompt twice: once in the history block and once as the trailing
// question. That duplication is kept on purpose; see DESIGN.md.
func (p *Pipeline) Send(ctx context.Context, sessionID, message string) (*domain.ChatResponse, error) {
	if sessionID == "" || message == "" {
		return nil, ErrValidation
	}

	if err := p.store.EnsureSession(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("%w: ensure session: %w", ErrCompletion, err)
	}

	if _, err := p.store.AppendMessage(ctx, sessionID, domain.RoleUser, message); err != nil {
		return nil, fmt.Errorf("%w: append user message: %w", ErrCompletion, err)
	}

	history, err := p.store.RecentMessages(ctx, sessionID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch history: %w", ErrStorage, err)
	}
	reverse(history)

	promptText := prompt.Build(p.corpusText, history, message)

	completion, err := p.completer.Complete(ctx, promptText)
	if err != nil {
		// The user message stays persisted; no compensation.
		return nil, fmt.Errorf("%w: %w", ErrCompletion, err)
	}

	if _, err := p.store.AppendMessage(ctx, sessionID, domain.RoleAssistant, completion.Reply); err != nil {
		return nil, fmt.Errorf("%w: append assistant message: %w", ErrCompletion, err)
	}

	return &domain.ChatResponse{
		Reply:      completion.Reply,
		TokensUsed: completion.TokensUsed,
	}, nil
}

// History returns the full ordered message history for a session. Unknown
// sessions yield an empty slice, not an error.
func (p *Pipeline) History(ctx context.Context, sessionID string) ([]domain.Message, error) {
	messages, err := p.store.AllMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return messages, nil
}

// Sessions returns all known sessions ordered by recency.
func (p *Pipeline) Sessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := p.store.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return sessions, nil
}

// reverse flips descending history into chronological order in place.
func reverse(messages []domain.Message) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
