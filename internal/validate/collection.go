package validate

import (
	"context"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/jsondoc"
)

// validateCollectionFile checks one collection inventory file: required
// fields per element and a bounded integer count. The count bounds are
// inclusive on both ends.
func (s *Service) validateCollectionFile(ctx context.Context, path string) {
	rule := s.schema.Rules.CollectionFile
	doc, ok := s.load(ctx, path)
	if !ok {
		return
	}

	minCount, maxCount := rule.CountBounds()

	for i, item := range jsondoc.Items(doc) {
		obj, isObj := jsondoc.Object(item)
		if !isObj {
			s.add(path, domain.FindingNotAnObject, domain.SeverityError, "[#%d] Not a JSON object", i)
			continue
		}

		for _, field := range rule.RequiredFields {
			if !jsondoc.Has(obj, field) {
				s.add(path, domain.FindingMissingField, domain.SeverityError,
					"[#%d] Missing required field '%s'", i, field)
			}
		}

		if !jsondoc.Has(obj, "count") {
			continue
		}
		count, isInt := jsondoc.Int(obj, "count")
		if !isInt {
			s.add(path, domain.FindingBadCount, domain.SeverityError,
				"[#%d] count is not an integer", i)
			continue
		}
		if count < minCount || count > maxCount {
			s.add(path, domain.FindingCountOutOfRange, domain.SeverityWarning,
				"[#%d] count %d out of range [%d, %d]", i, count, minCount, maxCount)
		}
	}
}
