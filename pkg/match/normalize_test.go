package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase and trim", "  Hello World  ", "hello world"},
		{"punctuation stripped", "integrated development environment!!", "integrated development environment"},
		{"whitespace collapsed", "a \t b\n\nc", "a b c"},
		{"smart quotes folded", "it’s a “test”", "it s a test"},
		{"decimal point kept", "the answer is 3.5 exactly", "the answer is 3.5 exactly"},
		{"trailing dot dropped", "21.", "21"},
		{"hyphen becomes space", "twenty-one", "twenty one"},
		{"fullwidth digits folded", "２１", "21"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"  A.  ",
		"one hundred and five",
		"3.14 is close to π",
		"“quoted” text — with dashes",
	}
	for _, input := range inputs {
		once := Normalize(input)
		require.Equal(t, once, Normalize(once), "input %q", input)
	}
}
