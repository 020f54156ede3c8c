// Package classify maps a file's location in the repository tree to its
// validation category. Classification is a pure function of the path and
// extension; it never touches the filesystem.
package classify

import (
	"path"
	"strings"
)

// Category tags a repository file with the validator responsible for it.
type Category string

const (
	// CategoryCard is a card definition file under CARDS/<lang>/<set>/<faction>/.
	CategoryCard Category = "card"
	// CategoryCollection is a collection inventory file under COLLECTION/.
	CategoryCollection Category = "collection"
	// CategoryDeck is a deck list file anywhere beneath DECKS/.
	CategoryDeck Category = "deck"
	// CategoryRules is a rules document under RULES/, JSON or PDF.
	CategoryRules Category = "rules"
)

// Marker directory names in the repository tree.
const (
	cardsDir      = "CARDS"
	collectionDir = "COLLECTION"
	decksDir      = "DECKS"
	rulesDir      = "RULES"
)

// Structured-data and opaque-document extensions.
const (
	dataExt     = ".json"
	documentExt = ".pdf"
)

// Classify returns the category for a slash-separated repo-relative path.
// The second return value is false for paths no validator covers.
func Classify(relPath string) (Category, bool) {
	parts := strings.Split(relPath, "/")
	ext := strings.ToLower(path.Ext(relPath))

	if idx := segmentIndex(parts, cardsDir); idx >= 0 {
		// Card files sit at least four segments below CARDS:
		// language, set, faction, then the file itself.
		if len(parts) >= idx+5 && ext == dataExt {
			return CategoryCard, true
		}
	}
	if segmentIndex(parts, collectionDir) >= 0 && ext == dataExt {
		return CategoryCollection, true
	}
	if segmentIndex(parts, decksDir) >= 0 && ext == dataExt {
		return CategoryDeck, true
	}
	if segmentIndex(parts, rulesDir) >= 0 && (ext == dataExt || ext == documentExt) {
		return CategoryRules, true
	}
	return "", false
}

// IsOpaqueDocument reports whether the file is of the opaque document type,
// whose mere existence counts as valid.
func IsOpaqueDocument(relPath string) bool {
	return strings.ToLower(path.Ext(relPath)) == documentExt
}

// segmentIndex returns the index of the first path segment equal to name,
// or -1 when absent.
func segmentIndex(parts []string, name string) int {
	for i, p := range parts {
		if p == name {
			return i
		}
	}
	return -1
}
