package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"revquiz/pkg/core"
	"revquiz/pkg/match"
	"revquiz/pkg/performance"
	"revquiz/pkg/questionbank"
)

// Prompter is the interactive boundary of a session: it asks each question
// and shows the verdict. Console I/O lives behind it so the runner stays
// testable.
type Prompter interface {
	Ask(question core.Question) (string, error)
	Feedback(question core.Question, result core.MatchResult)
}

// Options select and filter the questions for one session.
type Options struct {
	Level   string
	Subject string
	// Difficulty filters by label; empty or "Any" keeps everything.
	Difficulty string
	// MarksLow/MarksHigh filter by an inclusive range when MarksHigh > 0.
	MarksLow  int
	MarksHigh int
	// Count caps how many questions are asked; 0 asks all, shuffled.
	Count int
}

// Key is the performance-store key for these options.
func (o Options) Key() string {
	return fmt.Sprintf("%s_%s", o.Level, o.Subject)
}

// FilterInfo describes the active filter for display and reporting.
func (o Options) FilterInfo() string {
	switch {
	case o.Difficulty != "" && o.Difficulty != questionbank.AnyDifficulty:
		return fmt.Sprintf("difficulty: %s", o.Difficulty)
	case o.MarksHigh > 0 && o.MarksLow == o.MarksHigh:
		return fmt.Sprintf("marks: %d", o.MarksLow)
	case o.MarksHigh > 0:
		return fmt.Sprintf("marks: %d-%d", o.MarksLow, o.MarksHigh)
	default:
		return "none"
	}
}

// QuestionResult pairs one asked question with the reply and its verdict.
type QuestionResult struct {
	Question core.Question    `json:"question"`
	Reply    string           `json:"reply"`
	Match    core.MatchResult `json:"match"`
}

// Report summarizes one finished session.
type Report struct {
	SessionID  string                           `json:"session_id"`
	Level      string                           `json:"level"`
	Subject    string                           `json:"subject"`
	Filter     string                           `json:"filter"`
	Results    []QuestionResult                 `json:"results"`
	Topics     map[string]performance.TopicStats `json:"topics"`
	StartedAt  time.Time                        `json:"started_at"`
	FinishedAt time.Time                        `json:"finished_at"`
}

// Correct counts accepted replies.
func (r Report) Correct() int {
	n := 0
	for _, result := range r.Results {
		if result.Match.Verdict {
			n++
		}
	}
	return n
}

// Accuracy is the session-wide fraction of accepted replies.
func (r Report) Accuracy() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Correct()) / float64(len(r.Results))
}

// Runner composes the question bank, match engine, performance store, and
// prompter into a quiz session.
type Runner struct {
	Bank     *questionbank.Bank
	Engine   *match.Engine
	Store    *performance.Store
	Prompter Prompter
	Logger   *zap.Logger
}

// Run loads and filters questions per opts, asks each in turn, records the
// outcome, and persists the store before returning the session report.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	if r.Bank == nil || r.Engine == nil || r.Store == nil || r.Prompter == nil {
		return Report{}, errors.New("session: bank, engine, store, and prompter are required")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	questions, err := r.Bank.Load(opts.Level, opts.Subject)
	if err != nil {
		return Report{}, err
	}

	questions = questionbank.FilterDifficulty(questions, opts.Difficulty)
	if opts.MarksHigh > 0 {
		questions = questionbank.FilterMarks(questions, opts.MarksLow, opts.MarksHigh)
	}
	if len(questions) == 0 {
		return Report{}, fmt.Errorf("session: no questions match filter (%s)", opts.FilterInfo())
	}
	selected := questionbank.Select(questions, opts.Count)

	report := Report{
		SessionID: uuid.NewString(),
		Level:     opts.Level,
		Subject:   opts.Subject,
		Filter:    opts.FilterInfo(),
		Topics:    map[string]performance.TopicStats{},
		StartedAt: time.Now(),
	}
	key := opts.Key()

	for _, question := range selected {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}

		reply, err := r.Prompter.Ask(question)
		if err != nil {
			return Report{}, err
		}

		result := r.Engine.Match(reply, question)
		r.Store.Record(key, question.Topic, result.Verdict)

		stats := report.Topics[question.Topic]
		stats.Attempted++
		if result.Verdict {
			stats.Correct++
		}
		report.Topics[question.Topic] = stats

		report.Results = append(report.Results, QuestionResult{
			Question: question,
			Reply:    reply,
			Match:    result,
		})
		r.Prompter.Feedback(question, result)
	}

	report.FinishedAt = time.Now()
	if err := r.Store.Save(); err != nil {
		return report, err
	}

	logger.Info("session finished",
		zap.String("session_id", report.SessionID),
		zap.String("key", key),
		zap.Int("questions", len(report.Results)),
		zap.Int("correct", report.Correct()),
	)
	return report, nil
}
