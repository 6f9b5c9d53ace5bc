package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var smartQuotes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize canonicalizes free text for comparison: NFKC form, lowercase,
// smart quotes folded to straight ones, punctuation dropped, whitespace
// collapsed to single spaces, trimmed. A decimal point between two digits
// survives so numeric tokens like "3.5" stay intact.
//
// Normalize is pure and total: it never fails, and applying it twice yields
// the same result as applying it once.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := norm.NFKC.String(text)
	s = smartQuotes.Replace(s)
	s = strings.ToLower(s)

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' && i > 0 && i+1 < len(runes) &&
			unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
