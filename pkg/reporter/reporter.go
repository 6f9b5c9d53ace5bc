package reporter

import (
	"sort"

	"revquiz/pkg/performance"
	"revquiz/pkg/session"
)

// Reporter writes a session report.
type Reporter interface {
	Report(report session.Report) error
}

const (
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

func sortedTopics(topics map[string]performance.TopicStats) []string {
	out := make([]string, 0, len(topics))
	for topic := range topics {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}
