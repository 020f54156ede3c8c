package fs

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates files (with parent directories) under a temp root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	return root
}

func TestOSScanner_ScanTree(t *testing.T) {
	root := writeTree(t, map[string]string{
		"CARDS/DE/CORE/AX/b.json":  `{}`,
		"CARDS/DE/CORE/AX/a.json":  `{}`,
		"CARDS/EN/CORE/BR/c.json":  `{}`,
		"CARDS/readme.md":          "not a card",
		"COLLECTION/owned.json":    `[]`,
		"RULES/core.json":          `{}`,
		"RULES/rulebook.pdf":       "%PDF",
		"DECKS/season1/aggro.json": `{}`,
		"DECKS/burn.json":          `{}`,
		"notes.txt":                "ignored",
	})

	tree, err := (&OSScanner{Root: root}).ScanTree(context.Background())
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}

	wantCards := []string{
		"CARDS/DE/CORE/AX/a.json",
		"CARDS/DE/CORE/AX/b.json",
		"CARDS/EN/CORE/BR/c.json",
	}
	if !reflect.DeepEqual(tree.Cards, wantCards) {
		t.Errorf("Cards = %v, want %v (sorted)", tree.Cards, wantCards)
	}
	if !reflect.DeepEqual(tree.Collections, []string{"COLLECTION/owned.json"}) {
		t.Errorf("Collections = %v, want one entry", tree.Collections)
	}
	wantRules := []string{"RULES/core.json", "RULES/rulebook.pdf"}
	if !reflect.DeepEqual(tree.Rules, wantRules) {
		t.Errorf("Rules = %v, want %v", tree.Rules, wantRules)
	}
	wantDecks := []string{"DECKS/burn.json", "DECKS/season1/aggro.json"}
	if !reflect.DeepEqual(tree.Decks, wantDecks) {
		t.Errorf("Decks = %v, want %v", tree.Decks, wantDecks)
	}
	if got := tree.TotalFiles(); got != 8 {
		t.Errorf("TotalFiles() = %d, want 8", got)
	}
}

func TestOSScanner_ScanTree_Deterministic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"DECKS/b.json": `{}`,
		"DECKS/a.json": `{}`,
		"DECKS/c.json": `{}`,
	})

	scanner := &OSScanner{Root: root}
	first, err := scanner.ScanTree(context.Background())
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}
	second, err := scanner.ScanTree(context.Background())
	if err != nil {
		t.Fatalf("ScanTree() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated scans differ: %v vs %v", first, second)
	}
}

func TestOSScanner_ScanTree_MissingRoot(t *testing.T) {
	scanner := &OSScanner{Root: filepath.Join(t.TempDir(), "absent")}
	if _, err := scanner.ScanTree(context.Background()); err == nil {
		t.Error("ScanTree() of missing root returned nil error")
	}
}

func TestOSContentReader_ReadFile(t *testing.T) {
	root := writeTree(t, map[string]string{"CARDS/DE/CORE/AX/a.json": `{"id":"AX_001"}`})
	reader := &OSContentReader{Root: root}

	data, err := reader.ReadFile(context.Background(), "CARDS/DE/CORE/AX/a.json")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"id":"AX_001"}` {
		t.Errorf("ReadFile() = %q, want file content", data)
	}

	if _, err := reader.ReadFile(context.Background(), "missing.json"); err == nil {
		t.Error("ReadFile() of missing file returned nil error")
	}
}
