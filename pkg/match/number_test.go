package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"21", 21, true},
		{"21.0", 21, true},
		{"3.5", 3.5, true},
		{"three", 3, true},
		{"zero", 0, true},
		{"twenty one", 21, true},
		{"ninety nine", 99, true},
		{"hundred", 100, true},
		{"one hundred", 100, true},
		{"one hundred and five", 105, true},
		{"two hundred twenty one", 221, true},
		{"", 0, false},
		{"nan", 0, false},
		{"inf", 0, false},
		{"infinity", 0, false},
		{"-inf", 0, false},
		{"and", 0, false},
		{"one hundred and", 0, false},
		{"twenty bananas", 0, false},
		{"about 21", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseNumber(tc.input)
		require.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			require.InDelta(t, tc.want, got, 1e-9, "input %q", tc.input)
		}
	}
}

func TestNumericMatcher(t *testing.T) {
	m := Numeric{}

	result, ok := m.TryMatch("21", "twenty one")
	require.True(t, ok)
	require.True(t, result.Verdict)

	_, ok = m.TryMatch("21", "twenty two")
	require.False(t, ok)

	// A non-numeric canonical answer skips the numeric stage entirely.
	_, ok = m.TryMatch("byte", "8")
	require.False(t, ok)
}

// Non-finite replies must never satisfy a numeric answer: NaN compares
// unequal to every value, so an epsilon check alone cannot reject it.
func TestNumericMatcherRejectsNonFinite(t *testing.T) {
	m := Numeric{}

	for _, reply := range []string{"nan", "inf", "infinity"} {
		_, ok := m.TryMatch("21", reply)
		require.False(t, ok, "reply %q", reply)
	}

	_, ok := m.TryMatch("nan", "nan")
	require.False(t, ok)
}
