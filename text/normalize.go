package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeForSearch reduces a string to a comparison key used for
// substring containment checks: the text is decomposed (NFD), every
// character that is not a letter or digit is dropped (this removes
// whitespace, punctuation, and the combining marks produced by
// decomposition), and Latin letters are lowercased. Non-Latin letters
// keep their case and form so CJK and other scripts compare exactly.
//
// Both sides of any containment check must pass through the same
// normalization for the comparison to be meaningful.
func NormalizeForSearch(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range norm.NFD.String(s) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		if unicode.Is(unicode.Latin, r) {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}
