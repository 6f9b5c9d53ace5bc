package match

import (
	"math"
	"strconv"
	"strings"

	"revquiz/pkg/core"
)

// numericEpsilon bounds the difference under which two parsed values count
// as the same number.
const numericEpsilon = 1e-9

var wordValues = map[string]int{
	"zero":      0,
	"one":       1,
	"two":       2,
	"three":     3,
	"four":      4,
	"five":      5,
	"six":       6,
	"seven":     7,
	"eight":     8,
	"nine":      9,
	"ten":       10,
	"eleven":    11,
	"twelve":    12,
	"thirteen":  13,
	"fourteen":  14,
	"fifteen":   15,
	"sixteen":   16,
	"seventeen": 17,
	"eighteen":  18,
	"nineteen":  19,
	"twenty":    20,
	"thirty":    30,
	"forty":     40,
	"fifty":     50,
	"sixty":     60,
	"seventy":   70,
	"eighty":    80,
	"ninety":    90,
}

// ParseNumber interprets normalized text as a numeric value. A digit literal
// ("21", "3.5") is tried first, then an English word number ("twenty one",
// "one hundred and five"). Text containing tokens beyond the recognized
// sequence parses as nothing. Non-finite literals ("nan", "inf") parse as
// nothing too: NaN compares unequal to everything, so letting it through
// would turn the epsilon check into an accept-all.
func ParseNumber(normalized string) (float64, bool) {
	s := strings.TrimSpace(normalized)
	if s == "" {
		return 0, false
	}
	if value, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return 0, false
		}
		return value, true
	}
	if value, ok := parseWordNumber(s); ok {
		return float64(value), true
	}
	return 0, false
}

// parseWordNumber handles ones, teens, tens, "hundred", and compounds joined
// by spaces (hyphens are spaces after normalization). "and" is a connective
// and contributes nothing; it may not lead, trail, or repeat.
func parseWordNumber(s string) (int, bool) {
	total := 0
	seenValue := false
	pendingAnd := false

	for _, token := range strings.Fields(s) {
		switch {
		case token == "and":
			if !seenValue || pendingAnd {
				return 0, false
			}
			pendingAnd = true
		case token == "hundred":
			if total == 0 {
				total = 1
			}
			total *= 100
			seenValue = true
			pendingAnd = false
		default:
			value, ok := wordValues[token]
			if !ok {
				return 0, false
			}
			total += value
			seenValue = true
			pendingAnd = false
		}
	}

	if !seenValue || pendingAnd {
		return 0, false
	}
	return total, true
}

// Numeric accepts a reply when both it and the canonical answer parse as
// numbers and the values are equal, so "three", "3", and "3.0" all satisfy
// a canonical "3".
type Numeric struct{}

func (Numeric) Name() string { return string(core.MethodNumeric) }

func (Numeric) TryMatch(canonical, reply string) (core.MatchResult, bool) {
	want, ok := ParseNumber(canonical)
	if !ok {
		return core.MatchResult{}, false
	}
	got, ok := ParseNumber(reply)
	if !ok || math.Abs(want-got) >= numericEpsilon {
		return core.MatchResult{}, false
	}
	return core.MatchResult{Verdict: true, Score: 1, Method: core.MethodNumeric}, true
}
