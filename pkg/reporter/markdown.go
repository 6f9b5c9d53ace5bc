package reporter

import (
	"fmt"
	"io"

	"revquiz/pkg/session"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report session.Report) error {
	if _, err := fmt.Fprintf(r.Writer, "# Revision Quiz Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Level: %s\n- Subject: %s\n- Filter: %s\n- Session: %s\n\n",
		report.Level, report.Subject, report.Filter, report.SessionID); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "## Topics\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Topic | Accuracy | Correct | Attempted |\n|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, topic := range sortedTopics(report.Topics) {
		stats := report.Topics[topic]
		if _, err := fmt.Fprintf(r.Writer, "| %s | %.1f%% | %d | %d |\n",
			escapePipe(topic), stats.Accuracy()*100, stats.Correct, stats.Attempted); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(r.Writer, "\n## Questions\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Topic | Question | Reply | Verdict | Method | Score |\n|---|---|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, result := range report.Results {
		verdict := "incorrect"
		if result.Match.Verdict {
			verdict = "correct"
		}
		if _, err := fmt.Fprintf(
			r.Writer,
			"| %s | %s | %s | %s | %s | %.2f |\n",
			escapePipe(result.Question.Topic),
			escapePipe(result.Question.Prompt),
			escapePipe(result.Reply),
			verdict,
			result.Match.Method,
			result.Match.Score,
		); err != nil {
			return err
		}
	}
	return nil
}

func escapePipe(input string) string {
	if input == "" {
		return ""
	}
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if r == '|' {
			out = append(out, '\\', r)
		} else if r == '\n' || r == '\r' {
			out = append(out, ' ')
		} else {
			out = append(out, r)
		}
	}
	return string(out)
}
