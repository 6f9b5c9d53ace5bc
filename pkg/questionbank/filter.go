package questionbank

import (
	"math/rand"
	"sort"

	"revquiz/pkg/core"
)

// AnyDifficulty selects all difficulties in a difficulty filter.
const AnyDifficulty = "Any"

// Difficulties enumerates the difficulty labels present in a bank, prefixed
// by AnyDifficulty: the common Easy/Medium/Hard ordering first, then any
// remaining labels alphabetically.
func Difficulties(questions []core.Question) []string {
	present := map[string]bool{}
	for _, q := range questions {
		if q.Difficulty != "" {
			present[q.Difficulty] = true
		}
	}

	options := []string{AnyDifficulty}
	for _, label := range []string{core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard} {
		if present[label] {
			options = append(options, label)
			delete(present, label)
		}
	}

	rest := make([]string, 0, len(present))
	for label := range present {
		rest = append(rest, label)
	}
	sort.Strings(rest)
	return append(options, rest...)
}

// FilterDifficulty keeps questions with the given difficulty label.
// AnyDifficulty or the empty string keeps everything.
func FilterDifficulty(questions []core.Question, difficulty string) []core.Question {
	if difficulty == "" || difficulty == AnyDifficulty {
		return questions
	}
	out := make([]core.Question, 0, len(questions))
	for _, q := range questions {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// FilterMarks keeps questions whose marks fall in [low, high] inclusive.
// Bounds are swapped if reversed; low == high filters an exact value.
func FilterMarks(questions []core.Question, low, high int) []core.Question {
	if low > high {
		low, high = high, low
	}
	out := make([]core.Question, 0, len(questions))
	for _, q := range questions {
		if q.Marks >= low && q.Marks <= high {
			out = append(out, q)
		}
	}
	return out
}

// Select returns n questions drawn at random without replacement. When n is
// zero, negative, or at least the number available, all questions come back
// shuffled. The input slice is never reordered.
func Select(questions []core.Question, n int) []core.Question {
	out := make([]core.Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
