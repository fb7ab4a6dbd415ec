package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/paper-grader/internal/evaluation"
	"github.com/jonathan/paper-grader/internal/types"
)

func TestPrintReport(t *testing.T) {
	rpt := &types.GradeReport{
		OverallScore:     87,
		MaxPossibleScore: 100,
		SummaryFeedback:  "A strong essay with minor issues.",
		CriteriaBreakdown: []types.CriterionResult{
			{Criterion: "Argument and Analysis", Score: 35, MaxScore: 40, Feedback: "Clear thesis."},
			{Criterion: "Clarity and Mechanics", Score: 9, MaxScore: 10, Feedback: "Minor typos."},
		},
		ObjectiveMetrics: types.ObjectiveMetrics{
			WordCount:         231,
			ReadabilityScore:  64.7051,
			GrammarErrorCount: 3,
		},
	}

	var sb strings.Builder
	NewPrinter(&sb).PrintReport(rpt)
	out := sb.String()

	assert.Contains(t, out, "AI GRADING REPORT")
	assert.Contains(t, out, "FINAL SCORE: 87 / 100")
	assert.Contains(t, out, "A strong essay with minor issues.")
	assert.Contains(t, out, "[Argument and Analysis]")
	assert.Contains(t, out, "Score: 35 / 40")
	assert.Contains(t, out, "Feedback: Minor typos.")
	assert.Contains(t, out, "Word Count: 231")
	assert.Contains(t, out, "Flesch Reading Ease: 64.71", "readability must render with two decimals")
	assert.Contains(t, out, "Grammar & Spelling Issues Found: 3")

	// Ordering: score, then summary, then breakdown, then metrics.
	scoreIdx := strings.Index(out, "FINAL SCORE")
	summaryIdx := strings.Index(out, "Overall Summary")
	breakdownIdx := strings.Index(out, "Detailed Breakdown")
	metricsIdx := strings.Index(out, "Objective Metrics")
	assert.True(t, scoreIdx < summaryIdx && summaryIdx < breakdownIdx && breakdownIdx < metricsIdx)
}

func TestPrintReport_DegradedStillRenders(t *testing.T) {
	rpt := &types.GradeReport{
		OverallScore:      0,
		MaxPossibleScore:  100,
		SummaryFeedback:   evaluation.DegradedSummary,
		CriteriaBreakdown: []types.CriterionResult{},
		ObjectiveMetrics:  types.ObjectiveMetrics{WordCount: 231},
	}

	var sb strings.Builder
	assert.NotPanics(t, func() {
		NewPrinter(&sb).PrintReport(rpt)
	})

	out := sb.String()
	assert.Contains(t, out, "FINAL SCORE: 0 / 100")
	assert.Contains(t, out, evaluation.DegradedSummary)
}

func TestPrintReport_FractionalScores(t *testing.T) {
	rpt := &types.GradeReport{
		OverallScore:     17.5,
		MaxPossibleScore: 20,
	}

	var sb strings.Builder
	NewPrinter(&sb).PrintReport(rpt)
	assert.Contains(t, sb.String(), "FINAL SCORE: 17.5 / 20")
}

func TestPrintReport_NilReport(t *testing.T) {
	var sb strings.Builder
	NewPrinter(&sb).PrintReport(nil)
	assert.Empty(t, sb.String())
}
