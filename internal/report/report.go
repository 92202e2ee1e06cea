// Package report renders aggregation results as plain text, markdown, or
// glamour-rendered terminal output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/robertdamiano/llm-metascore/internal/rank"
)

// Format selects how the ranking is printed.
type Format string

const (
	// FormatText is the plain pipe-separated line format.
	FormatText Format = "txt"
	// FormatMarkdown is a markdown ordered list.
	FormatMarkdown Format = "md"
	// FormatPretty renders the markdown through glamour.
	FormatPretty Format = "pretty"
)

// ParseFormat checks the given format string and returns the Format.
func ParseFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatText:
		return FormatText, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatPretty:
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("unknown output format: %q (valid options: txt, md, pretty)", format)
	}
}

var (
	// titleStyle for the report heading
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("75"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// FormatHeader renders the mode and source count above the ranking.
func FormatHeader(w io.Writer, mode string, sources int) {
	fmt.Fprintf(w, "%s %s  %s %d\n",
		dimStyle.Render("Mode:"), titleStyle.Render(mode),
		dimStyle.Render("Sources:"), sources,
	)
}

// Text writes the top-k creators as plain text, one per line,
// optionally followed by the per-source rank breakdown.
func Text(w io.Writer, results []rank.CreatorRank, k int, details bool) {
	for i, cr := range truncate(results, k) {
		line := fmt.Sprintf("%d. %s | avg %.2f", i+1, cr.Creator, cr.AverageRank)
		if details {
			line += " | " + joinRanks(cr.PerSource, " | ", ":#")
		}
		fmt.Fprintln(w, line)
	}
}

// Markdown returns the top-k creators as a markdown ordered list.
func Markdown(results []rank.CreatorRank, k int, details bool) string {
	var sb strings.Builder
	for i, cr := range truncate(results, k) {
		fmt.Fprintf(&sb, "%d. **%s** (avg rank %.2f)", i+1, cr.Creator, cr.AverageRank)
		if details {
			sb.WriteString(" - ")
			sb.WriteString(joinRanks(cr.PerSource, ", ", " #"))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPretty renders the markdown report through glamour for terminal
// display.
func RenderPretty(w io.Writer, results []rank.CreatorRank, k int, details bool) error {
	out, err := glamour.Render(Markdown(results, k, details), "auto")
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	fmt.Fprint(w, out)
	return nil
}

func truncate(results []rank.CreatorRank, k int) []rank.CreatorRank {
	if k > 0 && k < len(results) {
		return results[:k]
	}
	return results
}

func joinRanks(ranks []rank.SourceRank, sep, rankSep string) string {
	parts := make([]string, len(ranks))
	for i, sr := range ranks {
		parts[i] = fmt.Sprintf("%s%s%d", sr.Source, rankSep, sr.Rank)
	}
	return strings.Join(parts, sep)
}
