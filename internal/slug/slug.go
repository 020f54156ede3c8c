package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Slug converts a card name into a lookup key. It NFD-normalizes, strips
// combining marks, lowercases, converts runs of non-alphanumeric characters
// to single dashes, and trims leading and trailing dashes. Names that differ
// only in diacritics, case, or punctuation produce the same key, so name
// searches find a card however the query is spelled.
func Slug(s string) string {
	// NFD normalize to decompose characters, then strip combining
	// (Mn) marks and lowercase.
	s = norm.NFD.String(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	s = b.String()

	// Map every run of non-alphanumeric characters to a single dash.
	b.Reset()
	pendingDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteRune('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	return b.String()
}
