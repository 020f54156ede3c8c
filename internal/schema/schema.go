// Package schema loads the declarative validation rule schema. The schema is
// read once at process start and is read-only afterwards; validators receive
// it by value and never mutate it.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default deck constraints, applied when the schema omits a value.
const (
	DefaultMinCards    = 40
	DefaultMaxCards    = 60
	DefaultMaxSameCard = 3
	DefaultMaxRares    = 15
	DefaultMaxUniques  = 3
	DefaultCountMin    = 0
	DefaultCountMax    = 99
)

// DeckConstraints holds the deck legality limits. Pointer fields distinguish
// "absent" from zero so defaults can be applied per field.
type DeckConstraints struct {
	MinCards          *int  `json:"min_cards" yaml:"min_cards"`
	MaxCards          *int  `json:"max_cards" yaml:"max_cards"`
	UniqueHero        *bool `json:"unique_hero" yaml:"unique_hero"`
	MaxSameCard       *int  `json:"max_same_card" yaml:"max_same_card"`
	MaxRareCards      *int  `json:"max_rare_cards" yaml:"max_rare_cards"`
	MaxUniqueCards    *int  `json:"max_unique_cards" yaml:"max_unique_cards"`
	SameFactionAsHero *bool `json:"same_faction_as_hero" yaml:"same_faction_as_hero"`
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// MinCardsValue returns the minimum deck size.
func (c DeckConstraints) MinCardsValue() int { return intOr(c.MinCards, DefaultMinCards) }

// MaxCardsValue returns the maximum deck size.
func (c DeckConstraints) MaxCardsValue() int { return intOr(c.MaxCards, DefaultMaxCards) }

// UniqueHeroValue reports whether the hero must appear exactly once.
func (c DeckConstraints) UniqueHeroValue() bool { return boolOr(c.UniqueHero, true) }

// MaxSameCardValue returns the per-display-name copy limit.
func (c DeckConstraints) MaxSameCardValue() int { return intOr(c.MaxSameCard, DefaultMaxSameCard) }

// MaxRareCardsValue returns the rare card cap.
func (c DeckConstraints) MaxRareCardsValue() int { return intOr(c.MaxRareCards, DefaultMaxRares) }

// MaxUniqueCardsValue returns the unique card cap.
func (c DeckConstraints) MaxUniqueCardsValue() int { return intOr(c.MaxUniqueCards, DefaultMaxUniques) }

// SameFactionAsHeroValue reports whether every deck card must share the
// hero's faction.
func (c DeckConstraints) SameFactionAsHeroValue() bool { return boolOr(c.SameFactionAsHero, true) }

// CategoryRules is the rule set for one file category. The zero value is an
// empty rule set: no required fields, no constraints enforced.
type CategoryRules struct {
	RequiredFields   []string        `json:"required_fields" yaml:"required_fields"`
	IDPattern        string          `json:"id_pattern" yaml:"id_pattern"`
	AllowedRarities  []string        `json:"allowed_rarities" yaml:"allowed_rarities"`
	CountMin         *int            `json:"count_min" yaml:"count_min"`
	CountMax         *int            `json:"count_max" yaml:"count_max"`
	RequiredKeywords []string        `json:"required_keywords" yaml:"required_keywords"`
	Constraints      DeckConstraints `json:"constraints" yaml:"constraints"`

	idRE *regexp.Regexp
}

// CountBounds returns the inclusive [min, max] range for collection counts.
func (r CategoryRules) CountBounds() (int, int) {
	return intOr(r.CountMin, DefaultCountMin), intOr(r.CountMax, DefaultCountMax)
}

// MatchID reports whether id full-matches the configured identifier pattern.
// An unconfigured pattern accepts any non-empty id.
func (r CategoryRules) MatchID(id string) bool {
	if r.idRE == nil {
		return id != ""
	}
	return r.idRE.MatchString(id)
}

// RaritySet returns the allowed rarities as an upper-cased lookup set.
// An empty set disables the rarity check.
func (r CategoryRules) RaritySet() map[string]bool {
	if len(r.AllowedRarities) == 0 {
		return nil
	}
	set := make(map[string]bool, len(r.AllowedRarities))
	for _, rar := range r.AllowedRarities {
		set[strings.ToUpper(rar)] = true
	}
	return set
}

// SortedRarities returns the allowed rarities upper-cased and sorted, for
// stable finding messages.
func (r CategoryRules) SortedRarities() []string {
	out := make([]string, 0, len(r.AllowedRarities))
	for _, rar := range r.AllowedRarities {
		out = append(out, strings.ToUpper(rar))
	}
	sort.Strings(out)
	return out
}

// KeywordSet returns the required keywords case-folded, preserving schema
// order with duplicates removed.
func (r CategoryRules) KeywordSet() []string {
	seen := make(map[string]bool, len(r.RequiredKeywords))
	out := make([]string, 0, len(r.RequiredKeywords))
	for _, kw := range r.RequiredKeywords {
		folded := strings.ToLower(kw)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		out = append(out, folded)
	}
	return out
}

// Rules holds the per-category rule sets, keyed by category name in the
// source document (card_file, collection_file, rules_file, deck_file).
type Rules struct {
	CardFile       CategoryRules `json:"card_file" yaml:"card_file"`
	CollectionFile CategoryRules `json:"collection_file" yaml:"collection_file"`
	RulesFile      CategoryRules `json:"rules_file" yaml:"rules_file"`
	DeckFile       CategoryRules `json:"deck_file" yaml:"deck_file"`
}

// Schema is the full validation schema document.
type Schema struct {
	Rules Rules `json:"rules" yaml:"rules"`
}

// Load reads and parses a schema file. JSON is the default format; files
// with a .yaml or .yml extension parse as YAML. Identifier patterns are
// compiled here, anchored for full-match semantics, so a malformed pattern
// fails the run before any validation starts.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}

	var s Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing schema %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing schema %s: %w", path, err)
		}
	}

	for _, r := range []*CategoryRules{
		&s.Rules.CardFile, &s.Rules.CollectionFile, &s.Rules.RulesFile, &s.Rules.DeckFile,
	} {
		if r.IDPattern == "" {
			continue
		}
		re, err := regexp.Compile(`\A(?:` + r.IDPattern + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("compiling id_pattern %q: %w", r.IDPattern, err)
		}
		r.idRE = re
	}

	return &s, nil
}
