package reporter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"revquiz/pkg/performance"
	"revquiz/pkg/session"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report session.Report) error {
	fmt.Fprintf(r.Writer, "Session %s: %s %s (filter: %s)\n",
		report.SessionID, report.Level, report.Subject, report.Filter)

	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Topic", "Accuracy", "Correct", "Attempted"})
	for _, topic := range sortedTopics(report.Topics) {
		stats := report.Topics[topic]
		table.Append([]string{
			topic,
			fmt.Sprintf("%.1f%%", stats.Accuracy()*100),
			fmt.Sprintf("%d", stats.Correct),
			fmt.Sprintf("%d", stats.Attempted),
		})
	}
	table.Append([]string{
		"Total",
		fmt.Sprintf("%.1f%%", report.Accuracy()*100),
		fmt.Sprintf("%d", report.Correct()),
		fmt.Sprintf("%d", len(report.Results)),
	})
	table.Render()
	return nil
}

// PerformanceTable renders every recorded quiz key in a store.
func PerformanceTable(writer io.Writer, store *performance.Store) {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Quiz", "Topic", "Accuracy", "Correct", "Attempted"})
	for _, key := range store.Keys() {
		topics := store.Topics(key)
		for _, topic := range sortedTopics(topics) {
			stats := topics[topic]
			table.Append([]string{
				key,
				topic,
				fmt.Sprintf("%.1f%%", stats.Accuracy()*100),
				fmt.Sprintf("%d", stats.Correct),
				fmt.Sprintf("%d", stats.Attempted),
			})
		}
	}
	table.Render()
}
