// Package grading merges objective metrics and the model evaluation into a
// final grade report.
package grading

import (
	"github.com/jonathan/paper-grader/internal/types"
)

// Compile merges an evaluation and objective metrics into a GradeReport.
//
// The overall score is summed from the model's breakdown, but the maximum
// possible score always comes from the rubric. The two can diverge when
// the model omits a criterion; that divergence is surfaced rather than
// hidden. An empty breakdown yields an overall score of zero.
func Compile(rubric *types.Rubric, objective types.ObjectiveMetrics, eval *types.Evaluation) *types.GradeReport {
	var overall float64
	breakdown := []types.CriterionResult{}
	if eval != nil {
		for _, item := range eval.CriteriaBreakdown {
			overall += item.Score
		}
		if eval.CriteriaBreakdown != nil {
			breakdown = eval.CriteriaBreakdown
		}
	}

	report := &types.GradeReport{
		OverallScore:      overall,
		MaxPossibleScore:  rubric.MaxPossibleScore(),
		CriteriaBreakdown: breakdown,
		ObjectiveMetrics:  objective,
	}
	if eval != nil {
		report.SummaryFeedback = eval.SummaryFeedback
	}
	return report
}
