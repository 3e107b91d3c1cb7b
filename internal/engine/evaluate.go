// Package engine ties the pure scoring pipeline to the rate table, the
// store, and the catalog. Handlers and the scheduler talk to this package,
// never to pkg/scorer directly.
package engine

import (
	"log/slog"
	"time"

	"github.com/arbiscout/arbiscout/internal/metrics"
	"github.com/arbiscout/arbiscout/internal/ratetable"
	scorer "github.com/arbiscout/arbiscout/pkg/scorer"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// Evaluator runs scored evaluations against one loaded rate table. It is
// safe for concurrent use; the table is read-only after construction.
type Evaluator struct {
	table *ratetable.Table
	log   *slog.Logger
	now   func() time.Time
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithEvaluatorLogger sets the logger.
func WithEvaluatorLogger(l *slog.Logger) EvaluatorOption {
	return func(e *Evaluator) {
		e.log = l
	}
}

// WithNowFunc overrides the evaluation clock. Tests use this to pin the
// storage month.
func WithNowFunc(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator returns an Evaluator bound to the given rate table.
func NewEvaluator(table *ratetable.Table, opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		table: table,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Version returns the active rate table version.
func (e *Evaluator) Version() string {
	return e.table.Version
}

// Evaluate validates the inputs and runs the scoring pipeline. Validation
// failures return a *domain.ValidationError and no result. Once validation
// passes Evaluate always produces a result: a panic inside the pipeline is
// recovered into a capped, critically-warned result rather than propagated.
func (e *Evaluator) Evaluate(in *domain.ProductInputs) (res *domain.ScoreResult, err error) {
	if verr := scorer.Validate(in); verr != nil {
		metrics.ValidationFailuresTotal.Inc()
		return nil, verr
	}

	start := e.now()
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("evaluation panicked", "panic", r)
			res = e.recoveredResult()
		}
		metrics.EvaluationsTotal.Inc()
		metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
		metrics.ScoreDistribution.Observe(float64(res.FinalScore))
		if res.DealBreaker {
			metrics.DealBreakersTotal.Inc()
		}
		if res.Fees.Degraded {
			metrics.DegradedEvaluationsTotal.Inc()
		}
	}()

	res = scorer.Evaluate(in, &e.table.Config, start)
	res.RateTableVersion = e.table.Version
	return res, nil
}

// recoveredResult is the floor result handed back when the pipeline
// panics: minimum score, deal-breaker set, one critical warning.
func (e *Evaluator) recoveredResult() *domain.ScoreResult {
	return &domain.ScoreResult{
		FinalScore:        1,
		DealBreaker:       true,
		DealBreakerReason: scorer.ReasonCriticalWarning,
		Warnings: []domain.Warning{{
			Level:   domain.LevelCritical,
			Metric:  "internal",
			Message: "evaluation failed internally, result is a floor placeholder",
		}},
		RateTableVersion: e.table.Version,
	}
}
