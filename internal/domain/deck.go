package domain

// DeckEntry is one {card_id, qty} pair from a deck list. Index preserves the
// entry's position in the original list for reporting.
type DeckEntry struct {
	Index  int
	CardID string
	Qty    int
}

// DeckFile is a parsed deck definition. Only structurally valid card entries
// appear in Entries; malformed entries are reported as findings at parse time
// and their quantities never count toward deck totals.
type DeckFile struct {
	Name    string
	HeroID  string
	Faction string // declared faction code, upper-cased, may be empty
	Entries []DeckEntry
}
