package validate

import (
	"context"
	"strings"

	"github.com/eykd/cardmark-go/internal/domain"
	"github.com/eykd/cardmark-go/internal/jsondoc"
)

// validateDeckFile checks one deck list against the deck constraints,
// resolving every referenced card through the shared index. Checks are
// non-fatal: each emits its finding and the pipeline continues, so a single
// deck can report structural, referential, and constraint problems at once.
func (s *Service) validateDeckFile(ctx context.Context, path string) {
	rule := s.schema.Rules.DeckFile
	doc, ok := s.load(ctx, path)
	if !ok {
		return
	}

	obj, isObj := jsondoc.Object(doc)
	if !isObj {
		s.add(path, domain.FindingNotAnObject, domain.SeverityError, "Deck file must be a JSON object")
		return
	}

	for _, field := range rule.RequiredFields {
		if !jsondoc.Has(obj, field) {
			s.add(path, domain.FindingMissingField, domain.SeverityError,
				"Missing required field '%s'", field)
		}
	}

	deck, cardsListOK := s.parseDeck(path, obj)
	cons := rule.Constraints

	// Hero resolution. The hero's faction is recorded even when its type is
	// wrong, so per-card faction checks still run against it.
	heroFaction := ""
	if deck.HeroID == "" {
		s.add(path, domain.FindingHeroMissing, domain.SeverityError, "hero_id is missing")
	} else if hero, found := s.resolver.Resolve(ctx, deck.HeroID); !found {
		s.add(path, domain.FindingHeroNotFound, domain.SeverityError,
			"hero_id '%s' not found in CARDS", deck.HeroID)
	} else {
		if hero.Type != domain.TypeHero {
			s.add(path, domain.FindingHeroWrongType, domain.SeverityError,
				"hero_id '%s' is not a Hero (type='%s')", deck.HeroID, hero.Type)
		}
		heroFaction = strings.ToUpper(hero.Faction)
		if deck.Faction != "" && heroFaction != "" && deck.Faction != heroFaction {
			s.add(path, domain.FindingFactionMismatch, domain.SeverityError,
				"Deck faction '%s' != hero faction '%s'", deck.Faction, heroFaction)
		}
	}

	if !cardsListOK {
		// The card list could not be iterated; per-card and aggregate
		// checks would count nothing meaningful.
		return
	}

	totalQty := 0
	rareCount := 0
	uniqueCount := 0
	heroSeen := 0
	nameCounts := make(map[string]int)
	var nameOrder []string

	for _, entry := range deck.Entries {
		totalQty += entry.Qty

		card, found := s.resolver.Resolve(ctx, entry.CardID)
		if !found {
			s.add(path, domain.FindingCardNotFound, domain.SeverityError,
				"[cards][%d] card_id '%s' not found in CARDS", entry.Index, entry.CardID)
			continue
		}

		name := card.DisplayName()
		if _, seen := nameCounts[name]; !seen {
			nameOrder = append(nameOrder, name)
		}
		nameCounts[name] += entry.Qty

		if card.IsRare() {
			rareCount += entry.Qty
		}
		if card.IsUnique() {
			uniqueCount += entry.Qty
		}
		if deck.HeroID != "" && entry.CardID == deck.HeroID {
			heroSeen += entry.Qty
		}

		if cons.SameFactionAsHeroValue() && heroFaction != "" {
			if cf := strings.ToUpper(card.Faction); cf != "" && cf != heroFaction {
				s.add(path, domain.FindingFactionMismatch, domain.SeverityError,
					"[cards][%d] '%s' faction '%s' != hero faction '%s'",
					entry.Index, name, cf, heroFaction)
			}
		}
		if card.Type == domain.TypeToken {
			s.add(path, domain.FindingTokenInDeck, domain.SeverityError,
				"[cards][%d] '%s' appears to be a token", entry.Index, name)
		}
	}

	minCards, maxCards := cons.MinCardsValue(), cons.MaxCardsValue()
	if totalQty < minCards || totalQty > maxCards {
		s.add(path, domain.FindingDeckSize, domain.SeverityError,
			"Deck size %d not in [%d, %d]", totalQty, minCards, maxCards)
	}

	maxSame := cons.MaxSameCardValue()
	for _, name := range nameOrder {
		if count := nameCounts[name]; count > maxSame {
			s.add(path, domain.FindingTooManyCopies, domain.SeverityError,
				"More than %d copies of '%s' (%d)", maxSame, name, count)
		}
	}

	if maxRare := cons.MaxRareCardsValue(); rareCount > maxRare {
		s.add(path, domain.FindingTooManyRares, domain.SeverityError,
			"Too many rare cards: %d > %d", rareCount, maxRare)
	}
	if maxUnique := cons.MaxUniqueCardsValue(); uniqueCount > maxUnique {
		s.add(path, domain.FindingTooManyUniques, domain.SeverityError,
			"Too many unique cards: %d > %d", uniqueCount, maxUnique)
	}
	if cons.UniqueHeroValue() && heroSeen != 1 {
		s.add(path, domain.FindingHeroCopies, domain.SeverityError,
			"Hero copies must be exactly 1 (found %d)", heroSeen)
	}
}

// parseDeck projects a deck object into a DeckFile, emitting findings for
// malformed card entries. Malformed entries are skipped and their quantity
// never counts toward deck totals. The second return value is false when
// the cards field is present but not a list, in which case per-card and
// aggregate checks are skipped for the file.
func (s *Service) parseDeck(path string, obj map[string]any) (domain.DeckFile, bool) {
	deck := domain.DeckFile{
		Name:    jsondoc.String(obj, "deck_name"),
		HeroID:  jsondoc.String(obj, "hero_id"),
		Faction: strings.ToUpper(jsondoc.String(obj, "faction")),
	}
	if deck.Name == "" {
		deck.Name = "(unnamed)"
	}

	raw, present := obj["cards"]
	if !present || raw == nil {
		return deck, true
	}
	entries, isList := raw.([]any)
	if !isList {
		s.add(path, domain.FindingNotAList, domain.SeverityError,
			"cards must be a list of {card_id, qty}")
		return deck, false
	}

	for i, item := range entries {
		entryObj, isObj := jsondoc.Object(item)
		if !isObj {
			s.add(path, domain.FindingBadCardEntry, domain.SeverityError,
				"[cards][%d] must be object with card_id, qty", i)
			continue
		}
		cardID := jsondoc.String(entryObj, "card_id")
		qty, isInt := jsondoc.Int(entryObj, "qty")
		if cardID == "" || !isInt {
			s.add(path, domain.FindingBadCardEntry, domain.SeverityError,
				"[cards][%d] missing/invalid card_id or qty", i)
			continue
		}
		deck.Entries = append(deck.Entries, domain.DeckEntry{Index: i, CardID: cardID, Qty: qty})
	}
	return deck, true
}
