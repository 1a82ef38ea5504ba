// Package docs loads and renders the static support documentation corpus.
package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tomc882/supportchat/domain"
)

// Load reads the corpus from a JSON file: a flat array of {title, content}
// objects. The corpus is read once at startup and never mutated.
func Load(path string) ([]domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read docs file: %w", err)
	}

	var documents []domain.Document
	if err := json.Unmarshal(data, &documents); err != nil {
		return nil, fmt.Errorf("failed to parse docs file %s: %w", path, err)
	}

	return documents, nil
}

// Render formats each document as "<title>: <content>", joined by newlines
// in corpus order.
func Render(documents []domain.Document) string {
	lines := make([]string, 0, len(documents))
	for _, d := range documents {
		lines = append(lines, d.Title+": "+d.Content)
	}
	return strings.Join(lines, "\n")
}
