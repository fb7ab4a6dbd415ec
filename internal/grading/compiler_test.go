package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/paper-grader/internal/evaluation"
	"github.com/jonathan/paper-grader/internal/types"
)

func sampleRubric() *types.Rubric {
	return &types.Rubric{
		Criteria: []types.Criterion{
			{Name: "Argument and Analysis", MaxScore: 40},
			{Name: "Use of Evidence", MaxScore: 30},
			{Name: "Structure and Organization", MaxScore: 20},
			{Name: "Clarity and Mechanics", MaxScore: 10},
		},
	}
}

func TestCompile_SampleScenario(t *testing.T) {
	// 40/30/20/10 rubric with awarded 35/25/18/9 must yield 87/100.
	eval := &types.Evaluation{
		SummaryFeedback: "Good essay.",
		CriteriaBreakdown: []types.CriterionResult{
			{Criterion: "Argument and Analysis", Score: 35, MaxScore: 40, Feedback: "a"},
			{Criterion: "Use of Evidence", Score: 25, MaxScore: 30, Feedback: "b"},
			{Criterion: "Structure and Organization", Score: 18, MaxScore: 20, Feedback: "c"},
			{Criterion: "Clarity and Mechanics", Score: 9, MaxScore: 10, Feedback: "d"},
		},
	}
	objective := types.ObjectiveMetrics{WordCount: 250, ReadabilityScore: 65.3, GrammarErrorCount: 2}

	report := Compile(sampleRubric(), objective, eval)

	assert.Equal(t, 87.0, report.OverallScore)
	assert.Equal(t, 100.0, report.MaxPossibleScore)
	assert.Equal(t, "Good essay.", report.SummaryFeedback)
	assert.Len(t, report.CriteriaBreakdown, 4)
	assert.Equal(t, objective, report.ObjectiveMetrics)
}

func TestCompile_DegradedEvaluation(t *testing.T) {
	report := Compile(sampleRubric(), types.ObjectiveMetrics{WordCount: 100}, evaluation.Degraded())

	assert.Equal(t, 0.0, report.OverallScore)
	assert.Equal(t, 100.0, report.MaxPossibleScore, "max comes from the rubric, not the model")
	assert.Equal(t, evaluation.DegradedSummary, report.SummaryFeedback)
	assert.Empty(t, report.CriteriaBreakdown)
}

func TestCompile_MaxScoreIndependentOfBreakdown(t *testing.T) {
	// Model omitted two criteria; max possible still follows the rubric.
	eval := &types.Evaluation{
		SummaryFeedback: "partial",
		CriteriaBreakdown: []types.CriterionResult{
			{Criterion: "Argument and Analysis", Score: 30, MaxScore: 40},
			{Criterion: "Use of Evidence", Score: 20, MaxScore: 30},
		},
	}

	report := Compile(sampleRubric(), types.ObjectiveMetrics{}, eval)
	assert.Equal(t, 50.0, report.OverallScore)
	assert.Equal(t, 100.0, report.MaxPossibleScore)
}

func TestCompile_NilEvaluation(t *testing.T) {
	report := Compile(sampleRubric(), types.ObjectiveMetrics{}, nil)
	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.OverallScore)
	assert.Equal(t, 100.0, report.MaxPossibleScore)
	assert.NotNil(t, report.CriteriaBreakdown)
}
