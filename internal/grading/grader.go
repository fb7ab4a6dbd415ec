package grading

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/paper-grader/internal/evaluation"
	"github.com/jonathan/paper-grader/internal/metrics"
	"github.com/jonathan/paper-grader/internal/types"
)

// Grader orchestrates a full grading run: objective metrics and the model
// evaluation run concurrently, then Compile merges the results.
type Grader struct {
	analyzer  *metrics.Analyzer
	evaluator *evaluation.Evaluator
	logger    zerolog.Logger
}

// NewGrader wires an Analyzer and Evaluator into a Grader.
func NewGrader(analyzer *metrics.Analyzer, evaluator *evaluation.Evaluator, logger zerolog.Logger) *Grader {
	return &Grader{
		analyzer:  analyzer,
		evaluator: evaluator,
		logger:    logger,
	}
}

// GradePaper grades a submission against the rubric and returns the merged
// report. A failed model evaluation degrades to the sentinel result so a
// report is always produced; only an invalid rubric is a hard error.
func (g *Grader) GradePaper(ctx context.Context, assignmentPrompt string, rubric *types.Rubric, submission string) (*types.GradeReport, error) {
	if err := rubric.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := g.logger.With().Str("run_id", runID.String()).Logger()

	var (
		objective types.ObjectiveMetrics
		eval      *types.Evaluation
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info().Msg("analyzing objective metrics")
		objective = g.analyzer.Compute(groupCtx, submission)
		return nil
	})

	group.Go(func() error {
		logger.Info().Msg("performing rubric evaluation with the model")
		result, err := g.evaluator.Evaluate(groupCtx, assignmentPrompt, rubric, submission)
		if err != nil {
			logger.Warn().Err(err).Msg("model evaluation failed, using degraded result")
			eval = evaluation.Degraded()
			return nil
		}
		eval = result
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Info().Msg("compiling final report")
	report := Compile(rubric, objective, eval)
	report.RunID = runID.String()
	return report, nil
}
