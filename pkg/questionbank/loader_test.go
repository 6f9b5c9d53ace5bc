package questionbank_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"revquiz/pkg/core"
	"revquiz/pkg/questionbank"
)

func writeBankFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestBankLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeBankFile(t, dir, "GCSE_Maths.json", `[
		{"topic": "Algebra", "question": "Solve x+1=3", "answer": "2", "marks": 1, "difficulty": "Easy"},
		{"topic": "Geometry", "question": "Sides of a triangle?", "answer": ["3", "three"], "marks": 2, "difficulty": "Medium"},
		{"topic": "Number", "question": "Bits in a byte?", "answer": 8, "marks": 1, "difficulty": "Easy"}
	]`)

	bank := questionbank.New(dir)
	questions, err := bank.Load("GCSE", "Maths")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	require.Equal(t, core.AnswerList{"3", "three"}, questions[1].Answers)
	require.Equal(t, core.AnswerList{"8"}, questions[2].Answers)
	require.Equal(t, "Easy", questions[0].Difficulty)
}

func TestBankLoadJSONL(t *testing.T) {
	dir := t.TempDir()
	writeBankFile(t, dir, "ALevel_Physics.jsonl",
		`{"topic": "Mechanics", "question": "Unit of force?", "answer": "newton", "marks": 1, "difficulty": "Easy"}
{"topic": "Waves", "question": "Speed of light (m/s)?", "answer": ["300000000", "3e8"], "marks": 2, "difficulty": "Hard"}
`)

	bank := questionbank.New(dir)
	questions, err := bank.Load("ALevel", "Physics")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	require.Equal(t, "Waves", questions[1].Topic)
}

func TestBankPathPrefersJSONL(t *testing.T) {
	dir := t.TempDir()
	// The .json twin is malformed on purpose: loading succeeds only if the
	// .jsonl file is both selected and parsed line by line.
	writeBankFile(t, dir, "GCSE_Maths.json", `not json at all`)
	writeBankFile(t, dir, "GCSE_Maths.jsonl",
		`{"topic": "Algebra", "question": "Solve x+1=3", "answer": "2", "marks": 1}
`)

	bank := questionbank.New(dir)
	require.Equal(t, filepath.Join(dir, "GCSE_Maths.jsonl"), bank.Path("GCSE", "Maths"))

	questions, err := bank.Load("GCSE", "Maths")
	require.NoError(t, err)
	require.Len(t, questions, 1)
	require.Equal(t, "Algebra", questions[0].Topic)
}

func TestBankLoadMissingFile(t *testing.T) {
	bank := questionbank.New(t.TempDir())
	_, err := bank.Load("GCSE", "Biology")
	require.Error(t, err)
}

func TestBankLoadMalformedAnswer(t *testing.T) {
	dir := t.TempDir()
	writeBankFile(t, dir, "GCSE_Chemistry.json",
		`[{"topic": "Atoms", "question": "Proton charge?", "answer": {"value": 1}, "marks": 1}]`)

	bank := questionbank.New(dir)
	_, err := bank.Load("GCSE", "Chemistry")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrMalformedAnswer))
}

func TestBankLoadRejectsEmptyAnswers(t *testing.T) {
	dir := t.TempDir()
	writeBankFile(t, dir, "GCSE_Physics.json",
		`[{"topic": "Energy", "question": "Unit of energy?", "answer": [], "marks": 1}]`)

	bank := questionbank.New(dir)
	_, err := bank.Load("GCSE", "Physics")
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrMalformedAnswer))
}
