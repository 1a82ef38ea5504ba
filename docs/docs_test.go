package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tomc882/supportchat/domain"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	content := `[{"title":"Hours","content":"9-6 weekdays"},{"title":"Refunds","content":"30 days"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	documents, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(documents))
	}
	if documents[0].Title != "Hours" || documents[1].Content != "30 days" {
		t.Fatalf("unexpected documents: %+v", documents)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed file")
	}
}

func TestRender(t *testing.T) {
	documents := []domain.Document{
		{Title: "Hours", Content: "9-6 weekdays"},
		{Title: "Refunds", Content: "30 days"},
	}

	got := Render(documents)
	want := "Hours: 9-6 weekdays\nRefunds: 30 days"
	if got != want {
		t.Fatalf("Render mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
