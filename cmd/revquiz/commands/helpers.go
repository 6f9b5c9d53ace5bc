package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"revquiz/pkg/core"
	"revquiz/pkg/reporter"
)

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
)

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveInt(value int, fallback int, defaultValue int) int {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}

func resolveFloat(value float64, fallback float64, defaultValue float64) float64 {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}

// buildMatchConfig layers flag values over file config over defaults.
func buildMatchConfig(threshold float64, minLen int, backend string) core.MatchConfig {
	cfg := core.DefaultMatchConfig()
	cfg.FuzzyThreshold = resolveFloat(threshold, appConfig.Match.FuzzyThreshold, core.DefaultFuzzyThreshold)
	cfg.ContainmentMinLen = resolveInt(minLen, appConfig.Match.ContainmentMinLen, core.DefaultContainmentMinLen)
	cfg.FuzzyBackend = resolveString(backend, resolveString(appConfig.Match.FuzzyBackend, core.BackendBuiltin))
	return cfg
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatTable:
		return reporter.TableReporter{Writer: writer}, nil
	case reporter.FormatHTML:
		return reporter.HTMLReporter{Writer: writer}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	case reporter.FormatCSV:
		return reporter.CSVReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// parseMarks reads a marks filter: "" or "all" keeps everything, "2" filters
// an exact value, "1-3" an inclusive range.
func parseMarks(spec string) (int, int, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return 0, 0, nil
	}
	if lo, hi, ok := strings.Cut(spec, "-"); ok {
		low, err1 := strconv.Atoi(strings.TrimSpace(lo))
		high, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("invalid marks range: %q", spec)
		}
		if low > high {
			low, high = high, low
		}
		return low, high, nil
	}
	value, err := strconv.Atoi(spec)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid marks filter: %q", spec)
	}
	return value, value, nil
}
