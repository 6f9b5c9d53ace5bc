package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"revquiz/pkg/core"
	"revquiz/pkg/questionbank"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		RunE: func(cmd *cobra.Command, args []string) error {
			writeList("Levels", questionbank.Levels)
			writeList("Subjects", questionbank.Subjects)
			writeList("Backends", []string{core.BackendBuiltin, core.BackendEnhanced})
			writeList("Formats", []string{"table", "json", "html", "markdown", "csv"})
			return nil
		},
	}
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}
