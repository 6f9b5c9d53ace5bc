package reporter

import (
	"encoding/csv"
	"io"
	"strconv"

	"revquiz/pkg/session"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report session.Report) error {
	writer := csv.NewWriter(r.Writer)
	header := []string{"topic", "question", "reply", "verdict", "method", "score", "matched_variant"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, result := range report.Results {
		record := []string{
			result.Question.Topic,
			result.Question.Prompt,
			result.Reply,
			strconv.FormatBool(result.Match.Verdict),
			string(result.Match.Method),
			strconv.FormatFloat(result.Match.Score, 'f', 4, 64),
			result.Match.MatchedVariant,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
