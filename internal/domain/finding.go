package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a finding that makes the repository invalid.
	SeverityError FindingSeverity = "ERROR"
	// SeverityWarning indicates a finding that should be reviewed but only
	// fails a run in strict mode.
	SeverityWarning FindingSeverity = "WARN"
)

// FindingType identifies the kind of issue found.
type FindingType string

// Finding type constants, grouped by the validator that emits them.
const (
	// Structural findings.
	FindingUnparseable FindingType = "unparseable_json"
	FindingNotAnObject FindingType = "not_an_object"
	FindingNotAList    FindingType = "not_a_list"

	// Field-level findings.
	FindingMissingField    FindingType = "missing_required_field"
	FindingIDPattern       FindingType = "id_pattern_mismatch"
	FindingUnknownRarity   FindingType = "rarity_not_allowed"
	FindingEmptyType       FindingType = "empty_type"
	FindingBadCount        FindingType = "count_not_integer"
	FindingCountOutOfRange FindingType = "count_out_of_range"
	FindingMissingKeywords FindingType = "missing_keywords"

	// Deck findings.
	FindingHeroMissing     FindingType = "hero_missing"
	FindingHeroNotFound    FindingType = "hero_not_found"
	FindingHeroWrongType   FindingType = "hero_wrong_type"
	FindingFactionMismatch FindingType = "faction_mismatch"
	FindingBadCardEntry    FindingType = "bad_card_entry"
	FindingCardNotFound    FindingType = "card_not_found"
	FindingTokenInDeck     FindingType = "token_in_deck"
	FindingDeckSize        FindingType = "deck_size"
	FindingTooManyCopies   FindingType = "too_many_copies"
	FindingTooManyRares    FindingType = "too_many_rares"
	FindingTooManyUniques  FindingType = "too_many_uniques"
	FindingHeroCopies      FindingType = "hero_copies"
)

// Finding represents one validation observation discovered during a run.
// Findings are immutable once created and collected in discovery order.
type Finding struct {
	Type     FindingType
	Severity FindingSeverity
	Message  string
	Path     string
}
