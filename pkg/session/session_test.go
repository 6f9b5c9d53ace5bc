package session_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"revquiz/pkg/core"
	"revquiz/pkg/match"
	"revquiz/pkg/performance"
	"revquiz/pkg/questionbank"
	"revquiz/pkg/session"
)

// scriptedPrompter replies by topic so the test is independent of question
// selection order.
type scriptedPrompter struct {
	replies  map[string]string
	asked    int
	feedback int
}

func (p *scriptedPrompter) Ask(question core.Question) (string, error) {
	p.asked++
	return p.replies[question.Topic], nil
}

func (p *scriptedPrompter) Feedback(core.Question, core.MatchResult) {
	p.feedback++
}

func newTestRunner(t *testing.T, prompter session.Prompter) (*session.Runner, string) {
	t.Helper()
	dir := t.TempDir()

	content := `[
		{"topic": "Algebra", "question": "Solve x+1=3", "answer": "2", "marks": 1, "difficulty": "Easy"},
		{"topic": "Number", "question": "Bits in a byte?", "answer": "8", "marks": 1, "difficulty": "Easy"},
		{"topic": "Logic", "question": "NOT true is?", "answer": "false", "marks": 2, "difficulty": "Medium"}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "GCSE_Maths.json"), []byte(content), 0o600))

	engine, err := match.NewEngine(core.DefaultMatchConfig())
	require.NoError(t, err)

	storePath := filepath.Join(dir, "performance.json")
	store, err := performance.Open(storePath, zap.NewNop())
	require.NoError(t, err)

	return &session.Runner{
		Bank:     questionbank.New(dir),
		Engine:   engine,
		Store:    store,
		Prompter: prompter,
		Logger:   zap.NewNop(),
	}, storePath
}

func TestRunnerRun(t *testing.T) {
	prompter := &scriptedPrompter{replies: map[string]string{
		"Algebra": "two",
		"Number":  "there are 8 bits in a byte",
		"Logic":   "maybe",
	}}
	runner, storePath := newTestRunner(t, prompter)

	report, err := runner.Run(context.Background(), session.Options{
		Level:   "GCSE",
		Subject: "Maths",
	})
	require.NoError(t, err)
	require.NotEmpty(t, report.SessionID)
	require.Len(t, report.Results, 3)
	require.Equal(t, 3, prompter.asked)
	require.Equal(t, 3, prompter.feedback)
	require.Equal(t, 2, report.Correct())
	require.InDelta(t, 2.0/3.0, report.Accuracy(), 1e-9)

	require.Equal(t, 1, report.Topics["Algebra"].Correct)
	require.Equal(t, 0, report.Topics["Logic"].Correct)

	// The store was persisted with the same tallies.
	store, err := performance.Open(storePath, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, []string{"GCSE_Maths"}, store.Keys())
	require.Equal(t, 1, store.Topics("GCSE_Maths")["Number"].Correct)
}

func TestRunnerFilters(t *testing.T) {
	prompter := &scriptedPrompter{replies: map[string]string{"Logic": "false"}}
	runner, _ := newTestRunner(t, prompter)

	report, err := runner.Run(context.Background(), session.Options{
		Level:      "GCSE",
		Subject:    "Maths",
		Difficulty: "Medium",
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	require.Equal(t, "Logic", report.Results[0].Question.Topic)
	require.True(t, report.Results[0].Match.Verdict)
	require.Equal(t, "difficulty: Medium", report.Filter)
}

func TestRunnerEmptyFilterFails(t *testing.T) {
	runner, _ := newTestRunner(t, &scriptedPrompter{})

	_, err := runner.Run(context.Background(), session.Options{
		Level:      "GCSE",
		Subject:    "Maths",
		Difficulty: "Impossible",
	})
	require.Error(t, err)
}

func TestRunnerCount(t *testing.T) {
	prompter := &scriptedPrompter{replies: map[string]string{}}
	runner, _ := newTestRunner(t, prompter)

	report, err := runner.Run(context.Background(), session.Options{
		Level:   "GCSE",
		Subject: "Maths",
		Count:   2,
	})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	require.Equal(t, 0, report.Correct())
}

func TestRunnerCancelledContext(t *testing.T) {
	runner, _ := newTestRunner(t, &scriptedPrompter{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runner.Run(ctx, session.Options{Level: "GCSE", Subject: "Maths"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptionsFilterInfo(t *testing.T) {
	require.Equal(t, "none", session.Options{}.FilterInfo())
	require.Equal(t, "difficulty: Hard", session.Options{Difficulty: "Hard"}.FilterInfo())
	require.Equal(t, "marks: 2", session.Options{MarksLow: 2, MarksHigh: 2}.FilterInfo())
	require.Equal(t, "marks: 1-3", session.Options{MarksLow: 1, MarksHigh: 3}.FilterInfo())
}
