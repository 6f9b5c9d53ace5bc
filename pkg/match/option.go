package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"revquiz/pkg/core"
)

// DetectOption extracts a multiple-choice label from the start of a reply:
// a single letter or digit, optionally decorated with a trailing "." or ")".
// Anything after the leading token is ignored. The bare lowercased label is
// returned, or false when the reply does not start with one.
func DetectOption(reply string) (string, bool) {
	fields := strings.Fields(reply)
	if len(fields) == 0 {
		return "", false
	}

	token := strings.ToLower(fields[0])
	if n := len(token); n > 1 && (token[n-1] == '.' || token[n-1] == ')') {
		token = token[:n-1]
	}

	r, size := utf8.DecodeRuneInString(token)
	if size == 0 || size != len(token) {
		return "", false
	}
	if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
		return "", false
	}
	return token, true
}

// isOptionLabel reports whether a normalized canonical answer is itself a
// bare multiple-choice label, which is the only case where option detection
// applies.
func isOptionLabel(canonical string) bool {
	r, size := utf8.DecodeRuneInString(canonical)
	if size == 0 || size != len(canonical) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// OptionToken matches multiple-choice style replies ("a", "A.", "1)")
// against a single-label canonical answer.
type OptionToken struct{}

func (OptionToken) Name() string { return string(core.MethodOptionToken) }

func (OptionToken) TryMatch(canonical, reply string) (core.MatchResult, bool) {
	if !isOptionLabel(canonical) {
		return core.MatchResult{}, false
	}
	label, ok := DetectOption(reply)
	if !ok || label != canonical {
		return core.MatchResult{}, false
	}
	return core.MatchResult{Verdict: true, Score: 1, Method: core.MethodOptionToken}, true
}
