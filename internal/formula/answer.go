package formula

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeKoujue folds a typed mnemonic into the form Classify emits:
// NFC composed, full-width ASCII narrowed, whitespace removed.
func NormalizeKoujue(s string) string {
	s = width.Narrow.String(norm.NFC.String(s))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// MatchesKoujue reports whether a learner's answer names the same mnemonic.
func MatchesKoujue(answer, koujue string) bool {
	a := NormalizeKoujue(answer)
	return a != "" && a == NormalizeKoujue(koujue)
}
