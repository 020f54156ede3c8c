package domain

import "strings"

// Card types recognized after normalization.
const (
	TypeHero      = "hero"
	TypeCompanion = "companion"
	TypeCharacter = "character"
	TypeSpell     = "spell"
	TypePermanent = "permanent"
	TypeToken     = "token"
)

// typeSynonyms maps English and German card type spellings to their
// normalized form. Unrecognized values pass through unchanged.
var typeSynonyms = map[string]string{
	"hero":               TypeHero,
	"held":               TypeHero,
	"companion":          TypeCompanion,
	"begleiter":          TypeCompanion,
	"character":          TypeCharacter,
	"charakter":          TypeCharacter,
	"spell":              TypeSpell,
	"zauber":             TypeSpell,
	"permanent":          TypePermanent,
	"permanent/landmark": TypePermanent,
	"landmark":           TypePermanent,
	"token":              TypeToken,
	"spielstein":         TypeToken,
}

// NormalizeType maps a raw card type value to its canonical form,
// tolerating case, surrounding whitespace, and German spellings.
func NormalizeType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	if norm, ok := typeSynonyms[v]; ok {
		return norm
	}
	return v
}

// CardRecord is a flattened view of one card's attributes as needed for
// deck legality. A card file may contain one object or an array of objects;
// each array element becomes an independent CardRecord sharing the file path.
type CardRecord struct {
	ID      string
	Name    string
	Type    string // normalized via NormalizeType
	Faction string
	Rarity  string // raw rarity code, e.g. "C", "R", "U"
	Unique  bool
	Path    string // repo-relative source file
}

// IsRare reports whether the card counts toward the deck rare limit.
func (c CardRecord) IsRare() bool {
	return strings.ToUpper(c.Rarity) == "R"
}

// IsUnique reports whether the card counts toward the deck unique limit.
// A card is unique when its unique flag is set or its rarity code is "U".
func (c CardRecord) IsUnique() bool {
	return c.Unique || strings.ToUpper(c.Rarity) == "U"
}

// DisplayName returns the name used for copy-limit grouping. Reprints and
// translations share a display name; unnamed cards fall back to their id.
func (c CardRecord) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}
