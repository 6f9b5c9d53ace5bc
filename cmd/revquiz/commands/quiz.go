package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"revquiz/pkg/core"
	"revquiz/pkg/match"
	"revquiz/pkg/performance"
	"revquiz/pkg/questionbank"
	"revquiz/pkg/reporter"
	"revquiz/pkg/session"
)

func newQuizCommand() *cobra.Command {
	var (
		level           string
		subject         string
		difficulty      string
		marks           string
		count           int
		questionsDir    string
		performanceFile string
		format          string
		threshold       float64
		minContainLen   int
		backend         string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			styled := isTerminal(out)

			levelResolved := level
			if levelResolved == "" {
				chosen, err := chooseOption(in, out, "Choose qualification level:", questionbank.Levels)
				if err != nil {
					return err
				}
				levelResolved = chosen
			}
			subjectResolved := subject
			if subjectResolved == "" {
				chosen, err := chooseOption(in, out, "Choose subject:", questionbank.Subjects)
				if err != nil {
					return err
				}
				subjectResolved = chosen
			}

			marksLow, marksHigh, err := parseMarks(marks)
			if err != nil {
				return err
			}

			dirResolved := resolveString(questionsDir, resolveString(appConfig.QuestionsDir, "questions"))
			formatResolved := resolveString(format, resolveString(appConfig.Format, reporter.FormatTable))
			bank := questionbank.New(dirResolved)

			difficultyResolved := difficulty
			if difficultyResolved == "" {
				questions, err := bank.Load(levelResolved, subjectResolved)
				if err != nil {
					return err
				}
				chosen, err := chooseOption(in, out, "Choose difficulty:", questionbank.Difficulties(questions))
				if err != nil {
					return err
				}
				difficultyResolved = chosen
			}

			engine, err := match.NewEngine(buildMatchConfig(threshold, minContainLen, backend))
			if err != nil {
				return err
			}
			store, err := performance.Open(resolveString(performanceFile, appConfig.PerformanceFile), logger)
			if err != nil {
				return err
			}

			runner := session.Runner{
				Bank:   bank,
				Engine: engine,
				Store:  store,
				Prompter: &consolePrompter{
					in:     in,
					out:    out,
					styled: styled,
				},
				Logger: logger,
			}

			opts := session.Options{
				Level:      levelResolved,
				Subject:    subjectResolved,
				Difficulty: difficultyResolved,
				MarksLow:   marksLow,
				MarksHigh:  marksHigh,
				Count:      count,
			}

			fmt.Fprintf(out, "\nStarting quiz: %s %s (filter: %s)\n",
				levelResolved, strings.ReplaceAll(subjectResolved, "_", " "), opts.FilterInfo())

			report, err := runner.Run(context.Background(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "\nSession summary")
			rep, err := buildReporter(formatResolved, out)
			if err != nil {
				return err
			}
			return rep.Report(report)
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "qualification level (GCSE, ALevel)")
	cmd.Flags().StringVar(&subject, "subject", "", "subject name")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "difficulty filter (Any, Easy, Medium, Hard)")
	cmd.Flags().StringVar(&marks, "marks", "", "marks filter: a value like '2' or a range like '1-3'")
	cmd.Flags().IntVar(&count, "count", 0, "number of questions to ask (0 = all)")
	cmd.Flags().StringVar(&questionsDir, "questions-dir", "", "directory holding question files")
	cmd.Flags().StringVar(&performanceFile, "performance-file", "", "performance store path")
	cmd.Flags().StringVar(&format, "format", "", "summary format (table, json, html, markdown, csv)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "fuzzy acceptance threshold (0 = default)")
	cmd.Flags().IntVar(&minContainLen, "containment-min-len", 0, "minimum answer length for containment")
	cmd.Flags().StringVar(&backend, "backend", "", "fuzzy backend (builtin, enhanced)")

	return cmd
}

// chooseOption shows a numbered menu and returns the chosen entry.
func chooseOption(in *bufio.Reader, out io.Writer, prompt string, options []string) (string, error) {
	for {
		fmt.Fprintf(out, "\n%s\n", prompt)
		for i, option := range options {
			fmt.Fprintf(out, "%d. %s\n", i+1, strings.ReplaceAll(option, "_", " "))
		}
		fmt.Fprint(out, "Enter number: ")

		line, err := in.ReadString('\n')
		if err != nil {
			return "", err
		}
		if choice, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && choice >= 1 && choice <= len(options) {
			return options[choice-1], nil
		}
		fmt.Fprintln(out, "Invalid input. Please try again.")
	}
}

// consolePrompter asks questions on the terminal and styles the verdicts.
type consolePrompter struct {
	in     *bufio.Reader
	out    io.Writer
	styled bool
}

func (p *consolePrompter) Ask(question core.Question) (string, error) {
	fmt.Fprintf(p.out, "\n%s ", p.render(promptStyle, question.Prompt))
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *consolePrompter) Feedback(question core.Question, result core.MatchResult) {
	if result.Verdict {
		message := "Correct!"
		if result.MatchedVariant != "" && result.Method != core.MethodExact {
			message = fmt.Sprintf("Correct! (accepted: %s)", result.MatchedVariant)
		}
		fmt.Fprintln(p.out, p.render(correctStyle, message))
		return
	}
	fmt.Fprintln(p.out, p.render(incorrectStyle,
		fmt.Sprintf("Incorrect. Correct answer: %s", strings.Join(question.Answers, ", "))))
}

func (p *consolePrompter) render(style lipgloss.Style, text string) string {
	if !p.styled {
		return text
	}
	return style.Render(text)
}
