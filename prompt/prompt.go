// Package prompt assembles the grounded prompt sent to the completion API.
package prompt

import (
	"fmt"
	"strings"

	"github.com/tomc882/supportchat/domain"
)

// Fallback is the exact sentence the model is instructed to return when the
// documentation does not contain the answer. Compliance is up to the model;
// nothing is verified locally.
const Fallback = "Sorry, I don’t have information about that."

const template = `
You are a support assistant.

You MUST answer ONLY using the documentation below.

If answer not found, respond EXACTLY:
"%s"

Documentation:
%s

Conversation History:
%s

User Question:
%s
`

// Build combines the rendered corpus, the chronological history and the new
// user message into a single prompt. Pure; no truncation beyond whatever
// history bound the caller applied.
func Build(corpusText string, history []domain.Message, userMessage string) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return fmt.Sprintf(template, Fallback, corpusText, strings.Join(lines, "\n"), userMessage)
}
