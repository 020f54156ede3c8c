// Package index maintains the runtime lookup table from card id to card
// attributes. The index is populated eagerly while card files are validated
// and extended lazily when deck validation references an id the first pass
// never saw. All writes happen on the validation goroutine; the card
// validator and the lazy resolver are the only writers by construction.
package index

import (
	"context"
	"strings"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/jsondoc"
	"github.com/eykd/cardmark-go/internal/slug"
)

// ContentReader abstracts reading a repo-relative file.
type ContentReader interface {
	ReadFile(ctx context.Context, relPath string) ([]byte, error)
}

// Index maps card ids to CardRecords. Duplicate ids across files follow
// first-seen-wins: later records with an already-indexed id are ignored.
type Index struct {
	byID  map[string]domain.CardRecord
	order []string
}

// New creates an empty Index.
func New() *Index {
	return &Index{byID: make(map[string]domain.CardRecord)}
}

// Register inserts a card if its id is not already present. It reports
// whether the card was inserted. Cards without an id are never indexed.
func (x *Index) Register(card domain.CardRecord) bool {
	if card.ID == "" {
		return false
	}
	if _, exists := x.byID[card.ID]; exists {
		return false
	}
	x.byID[card.ID] = card
	x.order = append(x.order, card.ID)
	return true
}

// Lookup returns the card indexed under id.
func (x *Index) Lookup(id string) (domain.CardRecord, bool) {
	card, ok := x.byID[id]
	return card, ok
}

// Len returns the number of indexed cards.
func (x *Index) Len() int {
	return len(x.byID)
}

// All returns the indexed cards in insertion order.
func (x *Index) All() []domain.CardRecord {
	out := make([]domain.CardRecord, 0, len(x.order))
	for _, id := range x.order {
		out = append(out, x.byID[id])
	}
	return out
}

// ByName returns the indexed cards whose display-name slug contains the
// slug of the query, in insertion order. An exact slug match is preferred:
// when any exact matches exist, only those are returned.
func (x *Index) ByName(query string) []domain.CardRecord {
	q := slug.Slug(query)
	if q == "" {
		return nil
	}

	var exact, partial []domain.CardRecord
	for _, card := range x.All() {
		key := slug.Slug(card.DisplayName())
		switch {
		case key == q:
			exact = append(exact, card)
		case strings.Contains(key, q):
			partial = append(partial, card)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return partial
}

// CardFromObject projects a generic card object into a CardRecord. Field
// extraction is tolerant: the display name is read from "name" then "title",
// in that priority order, and the type is normalized.
func CardFromObject(obj map[string]any, path string) domain.CardRecord {
	return domain.CardRecord{
		ID:      jsondoc.String(obj, "id"),
		Name:    jsondoc.String(obj, "name", "title"),
		Type:    domain.NormalizeType(jsondoc.String(obj, "type")),
		Faction: jsondoc.String(obj, "faction"),
		Rarity:  jsondoc.String(obj, "rarity"),
		Unique:  jsondoc.Bool(obj, "unique"),
		Path:    path,
	}
}

// Build populates a fresh Index from every card file in cardPaths, indexing
// each element that carries an id. Unreadable or unparseable files are
// skipped; this loader serves lookups, not validation.
func Build(ctx context.Context, reader ContentReader, cardPaths []string) *Index {
	idx := New()
	for _, path := range cardPaths {
		data, err := reader.ReadFile(ctx, path)
		if err != nil {
			continue
		}
		doc, err := jsondoc.Parse(data)
		if err != nil {
			continue
		}
		for _, item := range jsondoc.Items(doc) {
			if obj, ok := jsondoc.Object(item); ok {
				idx.Register(CardFromObject(obj, path))
			}
		}
	}
	return idx
}
