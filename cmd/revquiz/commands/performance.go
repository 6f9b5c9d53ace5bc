package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"revquiz/pkg/performance"
	"revquiz/pkg/reporter"
)

func newPerformanceCommand() *cobra.Command {
	var performanceFile string

	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Inspect or clear recorded performance",
	}
	cmd.PersistentFlags().StringVar(&performanceFile, "performance-file", "", "performance store path")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show recorded performance per quiz and topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := performance.Open(resolveString(performanceFile, appConfig.PerformanceFile), logger)
			if err != nil {
				return err
			}
			if store.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "No performance data found.")
				return nil
			}
			reporter.PerformanceTable(cmd.OutOrStdout(), store)
			return nil
		},
	}

	var yes bool
	clear := &cobra.Command{
		Use:   "clear",
		Short: "Permanently delete all recorded performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := performance.Open(resolveString(performanceFile, appConfig.PerformanceFile), logger)
			if err != nil {
				return err
			}

			if !yes {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "WARNING: this permanently deletes all recorded performance data.")
				fmt.Fprint(out, "Type 'YES' to proceed: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return err
				}
				if strings.TrimSpace(line) != "YES" {
					fmt.Fprintln(out, "Clear operation cancelled. No changes made.")
					return nil
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All performance data has been cleared.")
			return nil
		},
	}
	clear.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	cmd.AddCommand(show)
	cmd.AddCommand(clear)
	return cmd
}
