// Package fs provides filesystem adapters that implement validate service
// interfaces.
package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/eykd/cardmark-go/internal/classify"
	"github.com/eykd/cardmark-go/internal/domain"
)

// OSScanner implements validate.TreeScanner by walking the repository root.
type OSScanner struct {
	Root string
}

// ScanTree walks the tree once, classifies every file, and returns the
// per-category path lists sorted for deterministic validation order.
func (s *OSScanner) ScanTree(ctx context.Context) (*domain.Tree, error) {
	tree := &domain.Tree{}

	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(s.Root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		category, ok := classify.Classify(rel)
		if !ok {
			return nil
		}
		switch category {
		case classify.CategoryCard:
			tree.Cards = append(tree.Cards, rel)
		case classify.CategoryCollection:
			tree.Collections = append(tree.Collections, rel)
		case classify.CategoryRules:
			tree.Rules = append(tree.Rules, rel)
		case classify.CategoryDeck:
			tree.Decks = append(tree.Decks, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.Root, err)
	}

	// WalkDir visits in lexical order already; sort defends the ordering
	// guarantee against future scanner changes.
	sort.Strings(tree.Cards)
	sort.Strings(tree.Collections)
	sort.Strings(tree.Rules)
	sort.Strings(tree.Decks)

	return tree, nil
}

// OSContentReader implements validate.ContentReader using os.ReadFile.
type OSContentReader struct {
	Root string
}

// ReadFile reads the full content of a repo-relative file.
func (r *OSContentReader) ReadFile(_ context.Context, relPath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(r.Root, filepath.FromSlash(relPath)))
}
