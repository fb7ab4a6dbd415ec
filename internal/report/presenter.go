// Package report renders a compiled grade report as human-readable text.
// Purely presentational; no grading logic lives here.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/paper-grader/internal/types"
)

const bannerWidth = 50

// Printer writes formatted grade reports to a writer.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintReport renders the report: total score, overall summary, the
// per-criterion breakdown, then the objective metrics block.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report *types.GradeReport) {
	if report == nil {
		return
	}

	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(p.out, "\n%s\n", banner)
	fmt.Fprintf(p.out, "%s\n", centerText("AI GRADING REPORT", bannerWidth))
	fmt.Fprintf(p.out, "%s\n\n", banner)

	fmt.Fprintf(p.out, "FINAL SCORE: %s / %s\n\n",
		formatScore(report.OverallScore), formatScore(report.MaxPossibleScore))

	fmt.Fprintf(p.out, "--- Overall Summary ---\n")
	summary := report.SummaryFeedback
	if summary == "" {
		summary = "N/A"
	}
	fmt.Fprintf(p.out, "%s\n\n", summary)

	fmt.Fprintf(p.out, "--- Detailed Breakdown by Criterion ---\n")
	for _, item := range report.CriteriaBreakdown {
		fmt.Fprintf(p.out, "\n[%s]\n", item.Criterion)
		fmt.Fprintf(p.out, "  Score: %s / %s\n", formatScore(item.Score), formatScore(item.MaxScore))
		fmt.Fprintf(p.out, "  Feedback: %s\n", item.Feedback)
	}

	metrics := report.ObjectiveMetrics
	fmt.Fprintf(p.out, "\n--- Objective Metrics ---\n")
	fmt.Fprintf(p.out, "  Word Count: %d\n", metrics.WordCount)
	fmt.Fprintf(p.out, "  Flesch Reading Ease: %.2f (Higher is easier to read)\n", metrics.ReadabilityScore)
	fmt.Fprintf(p.out, "  Grammar & Spelling Issues Found: %d\n", metrics.GrammarErrorCount)

	fmt.Fprintf(p.out, "\n%s\n", banner)
}

// formatScore renders a score without trailing zeros (87, not 87.00),
// keeping fractional scores intact (17.5).
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	pad := (width - len(text)) / 2
	return strings.Repeat(" ", pad) + text
}
