package validate

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/eykd/cardmark-go/internal/classify"
	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/schema"
)

// fakeScanner returns a fixed tree.
type fakeScanner struct {
	tree *domain.Tree
	err  error
}

func (f *fakeScanner) ScanTree(_ context.Context) (*domain.Tree, error) {
	return f.tree, f.err
}

// fakeReader serves file content from memory and counts reads per path.
type fakeReader struct {
	files map[string]string
	reads map[string]int
}

func (r *fakeReader) ReadFile(_ context.Context, relPath string) ([]byte, error) {
	r.reads[relPath]++
	content, ok := r.files[relPath]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", relPath)
	}
	return []byte(content), nil
}

func (r *fakeReader) totalReads() int {
	total := 0
	for _, n := range r.reads {
		total += n
	}
	return total
}

// treeFromFiles classifies the fixture paths into a sorted Tree, mirroring
// what the filesystem scanner would produce.
func treeFromFiles(files map[string]string) *domain.Tree {
	tree := &domain.Tree{}
	var paths []string
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		category, ok := classify.Classify(path)
		if !ok {
			continue
		}
		switch category {
		case classify.CategoryCard:
			tree.Cards = append(tree.Cards, path)
		case classify.CategoryCollection:
			tree.Collections = append(tree.Collections, path)
		case classify.CategoryRules:
			tree.Rules = append(tree.Rules, path)
		case classify.CategoryDeck:
			tree.Decks = append(tree.Decks, path)
		}
	}
	return tree
}

// newTestService wires a Service over in-memory fixtures.
func newTestService(files map[string]string, sch *schema.Schema) (*Service, *fakeReader) {
	reader := &fakeReader{files: files, reads: make(map[string]int)}
	svc := NewService(&fakeScanner{tree: treeFromFiles(files)}, reader, sch)
	return svc, reader
}

// run executes the service and fails the test on an unexpected error.
func run(t *testing.T, svc *Service) *Result {
	t.Helper()
	result, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return result
}

// findingMessages returns every finding message, in discovery order.
func findingMessages(result *Result) []string {
	var msgs []string
	for _, f := range result.Findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// hasFinding reports whether some finding has the given type and severity.
func hasFinding(result *Result, typ domain.FindingType, sev domain.FindingSeverity) bool {
	for _, f := range result.Findings {
		if f.Type == typ && f.Severity == sev {
			return true
		}
	}
	return false
}

// countFindings returns how many findings have the given type.
func countFindings(result *Result, typ domain.FindingType) int {
	n := 0
	for _, f := range result.Findings {
		if f.Type == typ {
			n++
		}
	}
	return n
}

// hasMessage reports whether some finding carries exactly this message.
func hasMessage(result *Result, msg string) bool {
	for _, f := range result.Findings {
		if f.Message == msg {
			return true
		}
	}
	return false
}
