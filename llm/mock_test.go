package llm

import (
	"context"
	"testing"

	"github.com/tomc882/supportchat/prompt"
)

func TestMockCompleterFallbackOnEmptyDocs(t *testing.T) {
	mock := NewMockCompleter()

	completion, err := mock.Complete(context.Background(), prompt.Build("", nil, "What are your hours?"))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completion.Reply != prompt.Fallback {
		t.Fatalf("expected fallback reply, got %q", completion.Reply)
	}
	if completion.TokensUsed <= 0 {
		t.Fatalf("expected positive token usage, got %d", completion.TokensUsed)
	}
}

func TestMockCompleterAnswersWithDocs(t *testing.T) {
	mock := NewMockCompleter()

	completion, err := mock.Complete(context.Background(), prompt.Build("Hours: 9-6", nil, "What are your hours?"))
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if completion.Reply == prompt.Fallback {
		t.Fatalf("expected a non-fallback reply")
	}
}
