package reporter

import (
	"encoding/json"
	"io"

	"revquiz/pkg/session"
)

type JSONReporter struct {
	Writer  io.Writer
	Pretty  bool
	Compact bool
}

func (r JSONReporter) Report(report session.Report) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty && !r.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
