package match

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"revquiz/pkg/core"
)

// LevenshteinRatio is the dependency-free similarity backend: a normalized
// rune-level edit-distance ratio.
type LevenshteinRatio struct{}

func (LevenshteinRatio) Name() string { return core.BackendBuiltin }

func (LevenshteinRatio) Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	ar := []rune(a)
	br := []rune(b)
	longest := len(ar)
	if len(br) > longest {
		longest = len(br)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ar, br))/float64(longest)
}

// levenshtein computes edit distance with unit insert, delete, and
// substitute costs, using a single working row.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			tmp := row[j]
			row[j] = minOf(row[j]+1, row[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return row[len(b)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// TokenSortRatio is the library-backed backend. Tokens are sorted before a
// Levenshtein similarity so word order does not penalize the score; both
// backends share the same 0..1 scale and threshold calibration.
type TokenSortRatio struct{}

func (TokenSortRatio) Name() string { return core.BackendEnhanced }

func (TokenSortRatio) Ratio(a, b string) float64 {
	return strutil.Similarity(sortTokens(a), sortTokens(b), metrics.NewLevenshtein())
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// NewSimilarity selects a backend by name. Unknown or empty names silently
// fall back to the built-in backend; callers never see an error.
func NewSimilarity(backend string) core.Similarity {
	switch backend {
	case core.BackendEnhanced:
		return TokenSortRatio{}
	default:
		return LevenshteinRatio{}
	}
}
