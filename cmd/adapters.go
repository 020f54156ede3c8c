package cmd

import (
	"context"
	"fmt"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/fs"
	"github.com/eykd/cardmark-go/internal/index"
	"github.com/eykd/cardmark-go/internal/schema"
	"github.com/eykd/cardmark-go/internal/validate"
)

// --- validate runner ---

// validateAdapter runs the validate service and converts its result into
// the command report shape.
type validateAdapter struct {
	root string
	svc  *validate.Service
}

// newValidateRunner is the default RunnerFactory: it loads the schema and
// wires a validate.Service over the real filesystem.
func newValidateRunner(root, schemaPath string) (ValidateRunner, error) {
	sch, err := schema.Load(schemaPath)
	if err != nil {
		return nil, err
	}
	svc := validate.NewService(
		&fs.OSScanner{Root: root},
		&fs.OSContentReader{Root: root},
		sch,
	)
	return &validateAdapter{root: root, svc: svc}, nil
}

func (a *validateAdapter) Validate(ctx context.Context, strict bool) (*ValidateReport, error) {
	result, err := a.svc.Run(ctx)
	if err != nil {
		return nil, err
	}

	findings := make([]ValidateFinding, 0, len(result.Findings))
	for _, f := range append(result.Errors(), result.Warnings()...) {
		findings = append(findings, convertFinding(f))
	}

	status := "OK"
	if result.Failed(strict) {
		status = "FAIL"
	}

	return &ValidateReport{
		Findings: findings,
		Summary: ValidateSummary{
			Root:         a.root,
			IndexedCards: result.IndexedCards,
			Errors:       len(result.Errors()),
			Warnings:     len(result.Warnings()),
			Result:       status,
		},
	}, nil
}

// convertFinding converts a domain.Finding to a cmd.ValidateFinding.
func convertFinding(f domain.Finding) ValidateFinding {
	return ValidateFinding{
		Type:     string(f.Type),
		Severity: string(f.Severity),
		Message:  f.Message,
		Path:     f.Path,
	}
}

// --- card adapter ---

// cardAdapter answers card lookups by scanning the tree and building a full
// card index per call. Runs are independent; nothing is cached on disk.
type cardAdapter struct{}

// buildIndex scans root and indexes every card file.
func (a *cardAdapter) buildIndex(ctx context.Context, root string) (*index.Index, *domain.Tree, error) {
	scanner := &fs.OSScanner{Root: root}
	tree, err := scanner.ScanTree(ctx)
	if err != nil {
		return nil, nil, err
	}
	idx := index.Build(ctx, &fs.OSContentReader{Root: root}, tree.Cards)
	return idx, tree, nil
}

func (a *cardAdapter) ByName(ctx context.Context, root, query string) ([]CardSummary, error) {
	idx, _, err := a.buildIndex(ctx, root)
	if err != nil {
		return nil, err
	}
	cards := idx.ByName(query)
	if len(cards) == 0 {
		return nil, fmt.Errorf("no card found for name %q", query)
	}
	summaries := make([]CardSummary, len(cards))
	for i, c := range cards {
		summaries[i] = summarize(c)
	}
	return summaries, nil
}

func (a *cardAdapter) ByRef(ctx context.Context, root, ref string) (*CardSummary, error) {
	idx, _, err := a.buildIndex(ctx, root)
	if err != nil {
		return nil, err
	}
	card, ok := idx.Lookup(ref)
	if !ok {
		return nil, fmt.Errorf("no card found for reference %q", ref)
	}
	s := summarize(card)
	return &s, nil
}

func (a *cardAdapter) Stats(ctx context.Context, root string) (*TreeStats, error) {
	idx, tree, err := a.buildIndex(ctx, root)
	if err != nil {
		return nil, err
	}
	return &TreeStats{
		CardFiles:       len(tree.Cards),
		CollectionFiles: len(tree.Collections),
		RulesFiles:      len(tree.Rules),
		DeckFiles:       len(tree.Decks),
		IndexedCards:    idx.Len(),
	}, nil
}

// summarize projects a CardRecord into the fixed lookup output field set.
func summarize(c domain.CardRecord) CardSummary {
	return CardSummary{
		ID:      c.ID,
		Name:    c.Name,
		Type:    c.Type,
		Faction: c.Faction,
		Rarity:  c.Rarity,
		Unique:  c.Unique,
		Path:    c.Path,
	}
}
