package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedAnswer marks a question whose answer field is not a string,
// a number, or an array of those. Surfaced at load time, never while matching.
var ErrMalformedAnswer = errors.New("malformed answer spec")

// Common difficulty labels. Banks may carry others; the matcher treats
// difficulty as opaque metadata and only filters use it.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Question is a single quiz question with one or more accepted answer forms.
// Immutable once loaded from a question bank.
type Question struct {
	Topic      string     `json:"topic" yaml:"topic"`
	Prompt     string     `json:"question" yaml:"question"`
	Answers    AnswerList `json:"answer" yaml:"answer"`
	Marks      int        `json:"marks,omitempty" yaml:"marks,omitempty"`
	Difficulty string     `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// AnswerList holds a question's accepted answer variants in priority order.
// Question files may spell the field as a single string, an array of strings,
// or a bare number; numbers are folded to their string form.
type AnswerList []string

func (a *AnswerList) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	entries, err := answerEntries(raw)
	if err != nil {
		return err
	}
	*a = entries
	return nil
}

func answerEntries(raw any) (AnswerList, error) {
	switch value := raw.(type) {
	case string:
		return AnswerList{value}, nil
	case json.Number:
		return AnswerList{value.String()}, nil
	case []any:
		entries := make(AnswerList, 0, len(value))
		for _, item := range value {
			switch entry := item.(type) {
			case string:
				entries = append(entries, entry)
			case json.Number:
				entries = append(entries, entry.String())
			default:
				return nil, fmt.Errorf("%w: entry of type %T", ErrMalformedAnswer, item)
			}
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%w: expected string, number, or array, got %T", ErrMalformedAnswer, raw)
	}
}
