// Package validate provides the application service that checks a card
// repository tree against the validation schema and collects findings.
package validate

import (
	"context"
	"fmt"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/index"
	"github.com/eykd/cardmark-go/internal/jsondoc"
	"github.com/eykd/cardmark-go/internal/schema"
)

// TreeScanner abstracts one classified scan of the repository tree.
type TreeScanner interface {
	ScanTree(ctx context.Context) (*domain.Tree, error)
}

// ContentReader abstracts reading a repo-relative file.
type ContentReader interface {
	ReadFile(ctx context.Context, relPath string) ([]byte, error)
}

// Result holds the ordered findings of one validation run.
type Result struct {
	Findings     []domain.Finding
	IndexedCards int
}

// HasErrors reports whether any finding is an error.
func (r *Result) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any finding is a warning.
func (r *Result) HasWarnings() bool {
	for _, f := range r.Findings {
		if f.Severity == domain.SeverityWarning {
			return true
		}
	}
	return false
}

// Errors returns the error findings in discovery order.
func (r *Result) Errors() []domain.Finding {
	return r.bySeverity(domain.SeverityError)
}

// Warnings returns the warning findings in discovery order.
func (r *Result) Warnings() []domain.Finding {
	return r.bySeverity(domain.SeverityWarning)
}

func (r *Result) bySeverity(sev domain.FindingSeverity) []domain.Finding {
	var out []domain.Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Failed reports whether the run fails: any error, or in strict mode any
// warning.
func (r *Result) Failed(strict bool) bool {
	return r.HasErrors() || (strict && r.HasWarnings())
}

// Service coordinates one validation run. A run is all-or-nothing: the tree
// is scanned, every category is validated in order, and the result is built
// fresh; no state survives between runs.
type Service struct {
	scanner TreeScanner
	reader  ContentReader
	schema  *schema.Schema

	findings []domain.Finding
	index    *index.Index
	resolver *index.Resolver
}

// NewService creates a Service with the given collaborators.
func NewService(scanner TreeScanner, reader ContentReader, sch *schema.Schema) *Service {
	return &Service{scanner: scanner, reader: reader, schema: sch}
}

// Run validates the whole tree. Card files go first so the index is fully
// populated before any deck resolves against it; collections, rules, and
// decks follow, each in sorted path order.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	tree, err := s.scanner.ScanTree(ctx)
	if err != nil {
		return nil, err
	}

	s.findings = nil
	s.index = index.New()
	s.resolver = index.NewResolver(s.index, s.reader, tree.Cards)

	for _, path := range tree.Cards {
		s.validateCardFile(ctx, path)
	}
	for _, path := range tree.Collections {
		s.validateCollectionFile(ctx, path)
	}
	for _, path := range tree.Rules {
		s.validateRulesFile(ctx, path)
	}
	for _, path := range tree.Decks {
		s.validateDeckFile(ctx, path)
	}

	return &Result{
		Findings:     s.findings,
		IndexedCards: s.index.Len(),
	}, nil
}

// add appends one finding for path.
func (s *Service) add(path string, typ domain.FindingType, sev domain.FindingSeverity, format string, args ...any) {
	s.findings = append(s.findings, domain.Finding{
		Type:     typ,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Path:     path,
	})
}

// load reads and parses a structured-data file. Unreadable or unparseable
// content yields a single error finding; the rest of the run continues.
func (s *Service) load(ctx context.Context, path string) (any, bool) {
	data, err := s.reader.ReadFile(ctx, path)
	if err != nil {
		s.add(path, domain.FindingUnparseable, domain.SeverityError, "JSON load failed: %v", err)
		return nil, false
	}
	doc, err := jsondoc.Parse(data)
	if err != nil {
		s.add(path, domain.FindingUnparseable, domain.SeverityError, "JSON load failed: %v", err)
		return nil, false
	}
	return doc, true
}
