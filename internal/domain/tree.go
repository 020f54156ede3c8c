package domain

// Tree holds the classifier-tagged files of one repository scan, as sorted
// repo-relative slash paths. Sorting makes traversal order deterministic so
// repeated runs over an unchanged tree report identical findings.
type Tree struct {
	Cards       []string
	Collections []string
	Rules       []string
	Decks       []string
}

// TotalFiles returns the number of classified files across all categories.
func (t *Tree) TotalFiles() int {
	return len(t.Cards) + len(t.Collections) + len(t.Rules) + len(t.Decks)
}
