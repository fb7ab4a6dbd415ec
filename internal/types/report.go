package types

// CriterionResult is the model's judgment for a single rubric criterion.
type CriterionResult struct {
	Criterion string  `json:"criterion"`
	Score     float64 `json:"score"`
	MaxScore  float64 `json:"max_score"`
	Feedback  string  `json:"feedback"`
}

// Evaluation is the structured result of the model's rubric-driven pass
// over a submission. A degraded evaluation carries an error sentinel in
// SummaryFeedback and an empty breakdown.
type Evaluation struct {
	SummaryFeedback   string            `json:"summary_feedback"`
	CriteriaBreakdown []CriterionResult `json:"criteria_breakdown"`
}

// ObjectiveMetrics holds measurements computable from the submission text
// alone, without subjective judgment.
type ObjectiveMetrics struct {
	WordCount         int     `json:"word_count"`
	ReadabilityScore  float64 `json:"readability_score_flesch"`
	GrammarErrorCount int     `json:"grammar_and_spelling_errors"`
}

// GradeReport is the final merged grade: model evaluation plus objective
// metrics. Created fresh per grading run and discarded after rendering.
type GradeReport struct {
	RunID             string            `json:"run_id"`
	OverallScore      float64           `json:"overall_score"`
	MaxPossibleScore  float64           `json:"max_possible_score"`
	SummaryFeedback   string            `json:"summary_feedback"`
	CriteriaBreakdown []CriterionResult `json:"criteria_breakdown"`
	ObjectiveMetrics  ObjectiveMetrics  `json:"objective_metrics"`
}
