package questionbank

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"revquiz/pkg/core"
)

// Default qualification levels and subjects a bank directory is expected to
// cover. A file per (level, subject) pair: "<level>_<subject>.json".
var (
	Levels = []string{"GCSE", "ALevel"}

	Subjects = []string{
		"Maths",
		"Further_Maths",
		"Physics",
		"Biology",
		"Chemistry",
		"Computer_Science",
	}
)

// Bank loads question files from a directory. Questions are read-only after
// loading; the bank never mutates them.
type Bank struct {
	Dir string
}

func New(dir string) *Bank {
	return &Bank{Dir: dir}
}

// Path returns the question file path for a level and subject. A ".jsonl"
// file is used when present, otherwise ".json".
func (b *Bank) Path(level, subject string) string {
	base := filepath.Join(b.Dir, fmt.Sprintf("%s_%s", level, subject))
	if _, err := os.Stat(base + ".jsonl"); err == nil {
		return base + ".jsonl"
	}
	return base + ".json"
}

// Load reads and validates every question for a level and subject. A missing
// file is an error the caller can present; a malformed answer entry fails the
// whole load with core.ErrMalformedAnswer so bad banks never reach matching.
func (b *Bank) Load(level, subject string) ([]core.Question, error) {
	path := b.Path(level, subject)

	load := loadJSON
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		load = loadJSONL
	}
	questions, err := load(path)
	if err != nil {
		return nil, err
	}

	for i, q := range questions {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("questionbank: %s question %d: %w", filepath.Base(path), i+1, err)
		}
	}
	return questions, nil
}

func validate(q core.Question) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Answers) == 0 {
		return fmt.Errorf("%w: no accepted answers", core.ErrMalformedAnswer)
	}
	return nil
}

func loadJSON(path string) ([]core.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var questions []core.Question
	if err := json.NewDecoder(file).Decode(&questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func loadJSONL(path string) ([]core.Question, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	var questions []core.Question
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var q core.Question
		if err := json.Unmarshal(line, &q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}
