package questionbank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"revquiz/pkg/core"
	"revquiz/pkg/questionbank"
)

func sampleQuestions() []core.Question {
	return []core.Question{
		{Topic: "Algebra", Prompt: "q1", Answers: core.AnswerList{"a"}, Marks: 1, Difficulty: "Easy"},
		{Topic: "Algebra", Prompt: "q2", Answers: core.AnswerList{"b"}, Marks: 2, Difficulty: "Hard"},
		{Topic: "Geometry", Prompt: "q3", Answers: core.AnswerList{"c"}, Marks: 3, Difficulty: "Medium"},
		{Topic: "Number", Prompt: "q4", Answers: core.AnswerList{"d"}, Marks: 2, Difficulty: "Challenge"},
	}
}

func TestDifficulties(t *testing.T) {
	got := questionbank.Difficulties(sampleQuestions())
	require.Equal(t, []string{"Any", "Easy", "Medium", "Hard", "Challenge"}, got)
}

func TestFilterDifficulty(t *testing.T) {
	questions := sampleQuestions()

	require.Len(t, questionbank.FilterDifficulty(questions, "Easy"), 1)
	require.Len(t, questionbank.FilterDifficulty(questions, questionbank.AnyDifficulty), 4)
	require.Len(t, questionbank.FilterDifficulty(questions, ""), 4)
	require.Empty(t, questionbank.FilterDifficulty(questions, "Impossible"))
}

func TestFilterMarks(t *testing.T) {
	questions := sampleQuestions()

	require.Len(t, questionbank.FilterMarks(questions, 2, 2), 2)
	require.Len(t, questionbank.FilterMarks(questions, 1, 3), 4)
	// Reversed bounds are swapped.
	require.Len(t, questionbank.FilterMarks(questions, 3, 1), 4)
	require.Empty(t, questionbank.FilterMarks(questions, 5, 9))
}

func TestSelect(t *testing.T) {
	questions := sampleQuestions()

	picked := questionbank.Select(questions, 2)
	require.Len(t, picked, 2)

	all := questionbank.Select(questions, 0)
	require.Len(t, all, len(questions))

	over := questionbank.Select(questions, 10)
	require.Len(t, over, len(questions))

	// The input order is untouched.
	require.Equal(t, "q1", questions[0].Prompt)

	prompts := map[string]bool{}
	for _, q := range all {
		prompts[q.Prompt] = true
	}
	require.Len(t, prompts, len(questions))
}
