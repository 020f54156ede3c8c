package validate

import (
	"context"
	"strings"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/index"
	"github.com/eykd/cardmark-go/internal/jsondoc"
)

// validateCardFile checks one card file and registers its cards into the
// shared index. A card file holds a single object or an array of objects;
// each element is checked independently. On duplicate ids the first
// registration wins and later occurrences are ignored.
func (s *Service) validateCardFile(ctx context.Context, path string) {
	rule := s.schema.Rules.CardFile
	doc, ok := s.load(ctx, path)
	if !ok {
		return
	}

	rarities := rule.RaritySet()

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

		if id := jsondoc.String(obj, "id"); id != "" {
			if !rule.MatchID(id) {
				s.add(path, domain.FindingIDPattern, domain.SeverityWarning,
					"[#%d] id '%s' does not match pattern", i, id)
			}
			s.index.Register(index.CardFromObject(obj, path))
		}

		rarity := jsondoc.String(obj, "rarity")
		if len(rarities) > 0 && rarity != "" && !rarities[strings.ToUpper(rarity)] {
			s.add(path, domain.FindingUnknownRarity, domain.SeverityWarning,
				"[#%d] rarity '%s' not in %v", i, rarity, rule.SortedRarities())
		}

		if domain.NormalizeType(jsondoc.String(obj, "type")) == "" {
			s.add(path, domain.FindingEmptyType, domain.SeverityWarning,
				"[#%d] empty/unknown type", i)
		}
	}
}
