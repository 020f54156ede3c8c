package validate

import (
	"context"
	"strings"

	"github.com/eykd/cardmark-go/internal/classify"
	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/jsondoc"
)

// validateRulesFile checks one rules document. Opaque documents (PDF) pass
// by existing. Structured documents are checked for indicative keywords:
// a keyword counts as present when it appears anywhere in the case-folded
// flattened text of the document, not via a structural search.
func (s *Service) validateRulesFile(ctx context.Context, path string) {
	if classify.IsOpaqueDocument(path) {
		return
	}

	rule := s.schema.Rules.RulesFile
	doc, ok := s.load(ctx, path)
	if !ok {
		return
	}

	keywords := rule.KeywordSet()
	if len(keywords) == 0 {
		return
	}

	blob := jsondoc.Flatten(doc)
	var missing []string
	for _, kw := range keywords {
		if !strings.Contains(blob, kw) {
			missing = append(missing, kw)
		}
	}
	if len(missing) > 0 {
		s.add(path, domain.FindingMissingKeywords, domain.SeverityWarning,
			"Missing indicative keywords in rules JSON: %v", missing)
	}
}
