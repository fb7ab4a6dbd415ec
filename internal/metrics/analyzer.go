package metrics

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/paper-grader/internal/grammar"
	"github.com/jonathan/paper-grader/internal/types"
)

// Analyzer computes objective metrics for a submission. The grammar checker
// is optional: a nil or failing checker degrades the grammar-error count to
// zero instead of failing the run.
type Analyzer struct {
	checker grammar.Checker
	logger  zerolog.Logger
}

// NewAnalyzer creates an Analyzer. checker may be nil when grammar checking
// is unavailable.
func NewAnalyzer(checker grammar.Checker, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		checker: checker,
		logger:  logger,
	}
}

// Compute returns the objective metrics for text. It never fails: grammar
// service errors are logged and the error count reported as zero.
func (a *Analyzer) Compute(ctx context.Context, text string) types.ObjectiveMetrics {
	m := types.ObjectiveMetrics{
		WordCount:        len(strings.Fields(text)),
		ReadabilityScore: FleschReadingEase(text),
	}

	if a.checker == nil {
		a.logger.Warn().Msg("grammar checker unavailable, skipping grammar checks")
		return m
	}

	matches, err := a.checker.Check(ctx, text)
	if err != nil {
		a.logger.Warn().Err(err).Msg("grammar check failed, reporting zero errors")
		return m
	}
	m.GrammarErrorCount = len(matches)

	return m
}
