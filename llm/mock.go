package llm

import (
	"context"
	"strings"

	"github.com/tomc882/supportchat/prompt"
)

// MockCompleter is a mock implementation of Completer for testing and for
// running the server without an API credential (MOCK mode).
type MockCompleter struct{}

// NewMockCompleter creates a new mock completion client.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Ensure MockCompleter implements Completer.
var _ Completer = (*MockCompleter)(nil)

// Complete echoes a canned reply. Prompts whose documentation section is
// empty get the fallback sentence, mirroring what a compliant model does.
func (m *MockCompleter) Complete(ctx context.Context, promptText string) (*Completion, error) {
	reply := "This is a mock reply."
	if strings.Contains(promptText, "Documentation:\n\n") {
		reply = prompt.Fallback
	}

	return &Completion{
		Reply:      reply,
		TokensUsed: len(promptText)/4 + len(reply)/4 + 1,
	}, nil
}
