package index

import (
	"context"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/jsondoc"
)

// Resolver looks up card ids in the Index, falling back to an on-demand
// search across the card files of the tree when an id is missing. The
// fallback runs at most once per distinct id per process: every attempt is
// recorded, hit or miss, so repeated misses never re-scan the tree.
type Resolver struct {
	index     *Index
	reader    ContentReader
	cardPaths []string
	attempted map[string]bool
}

// NewResolver creates a Resolver over the given index and card file list.
func NewResolver(idx *Index, reader ContentReader, cardPaths []string) *Resolver {
	return &Resolver{
		index:     idx,
		reader:    reader,
		cardPaths: cardPaths,
		attempted: make(map[string]bool),
	}
}

// Resolve returns the card for id, searching the tree on an index miss.
// Only the searched card is cached on a fallback hit; sibling records in
// the same file are left to the card validation pass.
func (r *Resolver) Resolve(ctx context.Context, id string) (domain.CardRecord, bool) {
	if card, ok := r.index.Lookup(id); ok {
		return card, true
	}
	if id == "" || r.attempted[id] {
		return domain.CardRecord{}, false
	}
	r.attempted[id] = true

	for _, path := range r.cardPaths {
		if ctx.Err() != nil {
			return domain.CardRecord{}, false
		}
		data, err := r.reader.ReadFile(ctx, path)
		if err != nil {
			continue
		}
		doc, err := jsondoc.Parse(data)
		if err != nil {
			continue
		}
		for _, item := range jsondoc.Items(doc) {
			obj, ok := jsondoc.Object(item)
			if !ok || jsondoc.String(obj, "id") != id {
				continue
			}
			card := CardFromObject(obj, path)
			r.index.Register(card)
			return card, true
		}
	}
	return domain.CardRecord{}, false
}
