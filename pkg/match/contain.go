package match

import (
	"strings"
	"unicode/utf8"

	"revquiz/pkg/core"
)

// maxContainTokens caps how many tokens a canonical answer may have before
// containment stops applying. Longer answers must match exactly or fuzzily;
// accepting a long phrase on partial overlap trades too much precision.
const maxContainTokens = 4

// ContainsAnswer reports whether a short canonical answer appears inside a
// strictly longer reply, either as a contiguous run of tokens or, for
// multi-token answers, as an ordered token subsequence. minLen is the
// minimum canonical length in runes for the check to apply at all. Matching
// is on token boundaries, so canonical "8" is found in "there are 8 bits"
// but not in "there are 48 bits".
func ContainsAnswer(canonical, reply string, minLen int) bool {
	if canonical == "" || reply == "" {
		return false
	}
	if utf8.RuneCountInString(canonical) < minLen {
		return false
	}

	want := strings.Fields(canonical)
	have := strings.Fields(reply)
	if len(want) == 0 || len(want) >= len(have) {
		return false
	}
	if len(want) > maxContainTokens {
		return false
	}

	if containsRun(have, want) {
		return true
	}
	return len(want) >= 2 && containsSubsequence(have, want)
}

func containsRun(have, want []string) bool {
	for i := 0; i+len(want) <= len(have); i++ {
		match := true
		for j := range want {
			if have[i+j] != want[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func containsSubsequence(have, want []string) bool {
	next := 0
	for _, token := range have {
		if token == want[next] {
			next++
			if next == len(want) {
				return true
			}
		}
	}
	return false
}

// Containment accepts a reply that embeds the whole canonical answer, which
// keeps full-sentence replies like "there are 8 bits in a byte" correct for
// a canonical "8".
type Containment struct {
	MinLen int
}

func (Containment) Name() string { return string(core.MethodContainment) }

func (c Containment) TryMatch(canonical, reply string) (core.MatchResult, bool) {
	if !ContainsAnswer(canonical, reply, c.MinLen) {
		return core.MatchResult{}, false
	}
	return core.MatchResult{Verdict: true, Score: 1, Method: core.MethodContainment}, true
}
