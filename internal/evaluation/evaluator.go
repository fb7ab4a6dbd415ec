// Package evaluation sends a submission and rubric to the grading model
// and parses the structured evaluation it returns.
package evaluation

import (
	"context"
	"encoding/json"

	"github.com/jonathan/paper-grader/internal/llm"
	"github.com/jonathan/paper-grader/internal/prompts"
	"github.com/jonathan/paper-grader/internal/schemas"
	"github.com/jonathan/paper-grader/internal/types"
)

// DegradedSummary is the sentinel placed in an evaluation when the model
// call fails. Callers must treat the accompanying empty breakdown as
// "total score unavailable".
const DegradedSummary = "Error: Could not get evaluation from the AI model."

// Evaluator grades a submission against a rubric via an LLM client.
type Evaluator struct {
	client llm.Client
}

// NewEvaluator creates an Evaluator around an LLM client.
func NewEvaluator(client llm.Client) *Evaluator {
	return &Evaluator{client: client}
}

// Degraded returns the fallback evaluation used when the model call fails,
// allowing the pipeline to still produce a report.
func Degraded() *types.Evaluation {
	return &types.Evaluation{
		SummaryFeedback:   DegradedSummary,
		CriteriaBreakdown: []types.CriterionResult{},
	}
}

// Evaluate builds the grading prompt, requests a strict-JSON evaluation
// from the model, and returns the parsed, defensively-validated result.
func (e *Evaluator) Evaluate(ctx context.Context, assignmentPrompt string, rubric *types.Rubric, submission string) (*types.Evaluation, error) {
	if err := rubric.Validate(); err != nil {
		return nil, &ValidationError{Field: "rubric", Message: err.Error()}
	}

	userPrompt, err := buildGradingPrompt(assignmentPrompt, rubric, submission)
	if err != nil {
		return nil, err
	}

	responseText, err := e.client.GenerateJSON(ctx, prompts.MustGet("system"), userPrompt)
	if err != nil {
		return nil, &APICallError{
			Message: "failed to get evaluation from model",
			Cause:   err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	if err := schemas.ValidateEvaluation(responseText); err != nil {
		return nil, &ParseError{
			Message: "model response does not match evaluation schema",
			Cause:   err,
		}
	}

	var eval types.Evaluation
	if err := json.Unmarshal([]byte(responseText), &eval); err != nil {
		return nil, &ParseError{
			Message: "failed to parse JSON response",
			Cause:   err,
		}
	}

	postProcess(&eval, rubric)
	return &eval, nil
}

// buildGradingPrompt embeds the assignment prompt, the serialized rubric,
// and the submission into the grading template.
func buildGradingPrompt(assignmentPrompt string, rubric *types.Rubric, submission string) (string, error) {
	rubricJSON, err := json.MarshalIndent(rubric, "", "  ")
	if err != nil {
		return "", &ValidationError{Field: "rubric", Message: "failed to serialize rubric to JSON"}
	}

	template := prompts.MustGet("grade-paper")
	return prompts.Format(template, map[string]string{
		"AssignmentPrompt": assignmentPrompt,
		"Rubric":           string(rubricJSON),
		"StudentPaper":     submission,
	}), nil
}

// postProcess applies defensive bounds to the model's scores. The model is
// not trusted to respect 0 <= score <= max_score, and sometimes reports a
// zero max_score; the rubric is the authority for the latter.
func postProcess(eval *types.Evaluation, rubric *types.Rubric) {
	if eval.CriteriaBreakdown == nil {
		eval.CriteriaBreakdown = []types.CriterionResult{}
	}

	for i := range eval.CriteriaBreakdown {
		item := &eval.CriteriaBreakdown[i]

		if item.MaxScore <= 0 {
			item.MaxScore = 0
			if c := rubric.Criterion(item.Criterion); c != nil {
				item.MaxScore = c.MaxScore
			}
		}

		if item.Score < 0 {
			item.Score = 0
		}
		if item.Score > item.MaxScore {
			item.Score = item.MaxScore
		}
	}
}
