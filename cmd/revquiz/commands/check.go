package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"revquiz/pkg/core"
	"revquiz/pkg/match"
)

func newCheckCommand() *cobra.Command {
	var (
		expected      []string
		reply         string
		threshold     float64
		minContainLen int
		backend       string
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a single reply against expected answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(expected) == 0 {
				return errors.New("at least one --expected answer is required")
			}

			engine, err := match.NewEngine(buildMatchConfig(threshold, minContainLen, backend))
			if err != nil {
				return err
			}

			question := core.Question{Answers: core.AnswerList(expected)}
			result := engine.Match(reply, question)

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			verdict := "incorrect"
			if result.Verdict {
				verdict = "correct"
			}
			fmt.Fprintf(out, "verdict: %s\n", verdict)
			if result.Method != "" {
				fmt.Fprintf(out, "method: %s\n", result.Method)
			}
			if result.MatchedVariant != "" {
				fmt.Fprintf(out, "matched: %s\n", result.MatchedVariant)
			}
			fmt.Fprintf(out, "score: %.4f\n", result.Score)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&expected, "expected", nil, "expected answer (repeatable)")
	cmd.Flags().StringVar(&reply, "reply", "", "reply to check")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "fuzzy acceptance threshold (0 = default)")
	cmd.Flags().IntVar(&minContainLen, "containment-min-len", 0, "minimum answer length for containment")
	cmd.Flags().StringVar(&backend, "backend", "", "fuzzy backend (builtin, enhanced)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}
