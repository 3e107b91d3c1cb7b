package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arbiscout/arbiscout/internal/catalog"
	"github.com/arbiscout/arbiscout/internal/metrics"
	"github.com/arbiscout/arbiscout/internal/notify"
	"github.com/arbiscout/arbiscout/internal/store"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

const defaultRescoreBatchSize = 200

// Service coordinates evaluations with persistence and catalog enrichment.
type Service struct {
	store      store.Store
	catalog    catalog.Client
	eval       *Evaluator
	log        *slog.Logger
	batchSize  int
	notifier   notify.Notifier
	alertScore int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = l
	}
}

// WithCatalog attaches a product catalog used to fill in inputs the
// caller left blank. Without one, evaluations use caller inputs as-is.
func WithCatalog(c catalog.Client) ServiceOption {
	return func(s *Service) {
		s.catalog = c
	}
}

// WithNotifier attaches a notifier that is told about every saved analysis
// scoring at or above minScore. Deal-breaker results never alert.
func WithNotifier(n notify.Notifier, minScore int) ServiceOption {
	return func(s *Service) {
		s.notifier = n
		s.alertScore = minScore
	}
}

// WithRescoreBatchSize sets the page size for rescore sweeps.
func WithRescoreBatchSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewService returns a Service backed by the given store and evaluator.
func NewService(st store.Store, eval *Evaluator, opts ...ServiceOption) *Service {
	s := &Service{
		store:     st,
		eval:      eval,
		log:       slog.Default(),
		batchSize: defaultRescoreBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RateTableVersion returns the version of the active rate table.
func (s *Service) RateTableVersion() string {
	return s.eval.Version()
}

// Evaluate runs a stateless evaluation. When an identifier is given and a
// catalog is attached, blank inputs are enriched from the catalog first.
func (s *Service) Evaluate(ctx context.Context, identifier string, in *domain.ProductInputs) (*domain.ScoreResult, error) {
	s.enrich(ctx, identifier, in)
	return s.eval.Evaluate(in)
}

// AnalyzeRequest is a request to evaluate a product and persist the outcome.
type AnalyzeRequest struct {
	OwnerID    string
	Identifier string
	Title      string
	Notes      string
	Inputs     domain.ProductInputs
}

// Analyze evaluates the requested product and saves the full analysis under
// the requesting owner. The saved row carries the exact inputs used, after
// catalog enrichment, so later rescores replay them deterministically.
func (s *Service) Analyze(ctx context.Context, req *AnalyzeRequest) (*domain.Analysis, error) {
	if req.OwnerID == "" {
		return nil, &domain.ValidationError{Field: "owner_id", Reason: "missing"}
	}

	in := req.Inputs
	title := s.enrich(ctx, req.Identifier, &in)
	if req.Title != "" {
		title = req.Title
	}

	res, err := s.eval.Evaluate(&in)
	if err != nil {
		return nil, err
	}

	a := &domain.Analysis{
		OwnerID:          req.OwnerID,
		Identifier:       req.Identifier,
		Title:            title,
		Category:         in.Category,
		Score:            res.FinalScore,
		RateTableVersion: res.RateTableVersion,
		Inputs:           in,
		Result:           *res,
		Notes:            req.Notes,
	}
	if err := s.store.CreateAnalysis(ctx, a); err != nil {
		return nil, fmt.Errorf("saving analysis: %w", err)
	}
	metrics.AnalysesSavedTotal.Inc()

	s.log.Info("analysis saved",
		"id", a.ID,
		"owner_id", a.OwnerID,
		"identifier", a.Identifier,
		"score", a.Score)

	s.maybeAlert(ctx, a)
	return a, nil
}

// maybeAlert sends an opportunity alert for high-scoring saves. Notification
// failures are logged and counted but never fail the analysis.
func (s *Service) maybeAlert(ctx context.Context, a *domain.Analysis) {
	if s.notifier == nil || a.Score < s.alertScore || a.Result.DealBreaker {
		return
	}

	alert := &notify.OpportunityAlert{
		AnalysisID: a.ID,
		Title:      a.Title,
		Identifier: a.Identifier,
		Category:   a.Category,
		Score:      a.Score,
		ROIPercent: a.Result.Profitability.ROIPercent,
		NetProfit:  a.Result.Profitability.NetProfitPerUnit,
		TotalFees:  a.Result.Fees.TotalFees,
		SizeTier:   a.Result.Fees.SizeTier,
		Warnings:   a.Result.Warnings,
	}
	if err := s.notifier.SendOpportunity(ctx, alert); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		s.log.Warn("opportunity alert failed", "id", a.ID, "error", err)
		return
	}
	metrics.AlertsSentTotal.Inc()
}

// enrich fills blank inputs from the catalog and returns the catalog title
// when one was found. Lookup failures degrade to caller inputs; they never
// fail the evaluation.
func (s *Service) enrich(ctx context.Context, identifier string, in *domain.ProductInputs) string {
	if s.catalog == nil || identifier == "" {
		return ""
	}

	p, err := s.catalog.Lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			s.log.Debug("identifier not in catalog", "identifier", identifier)
		} else {
			s.log.Warn("catalog lookup failed, using caller inputs",
				"identifier", identifier, "error", err)
		}
		return ""
	}

	if in.Category == "" {
		in.Category = p.Category
	}
	if in.UnitWeightLb == 0 {
		in.UnitWeightLb = p.UnitWeightLb
	}
	if !in.DimensionsIn.Complete() && p.DimensionsIn.Complete() {
		in.DimensionsIn = p.DimensionsIn
	}
	if in.RankProxy == nil {
		in.RankProxy = p.RankProxy
	}
	if in.CompetitorCount == nil {
		in.CompetitorCount = p.CompetitorCount
	}
	if in.SalesTrend == "" {
		in.SalesTrend = p.SalesTrend
	}
	if in.VariationCount == 0 {
		in.VariationCount = p.VariationCount
	}
	// Risk flags only ever escalate: a catalog hit can mark a product as
	// apparel, dangerous, or first-party contested, never clear it.
	in.IsApparel = in.IsApparel || p.IsApparel
	in.IsDangerousGood = in.IsDangerousGood || p.IsDangerousGood
	in.AmazonIsSeller = in.AmazonIsSeller || p.AmazonIsSeller

	return p.Title
}

// RescoreStats summarizes one rescore sweep.
type RescoreStats struct {
	Scanned int
	Updated int
	Failed  int
}

// Rescore re-evaluates every stored analysis against the current rate
// table and rewrites score, version, and result. Individual failures are
// collected and joined; the sweep keeps going past them.
func (s *Service) Rescore(ctx context.Context) (RescoreStats, error) {
	start := time.Now()
	var stats RescoreStats
	var errs []error

	for offset := 0; ; offset += s.batchSize {
		batch, err := s.store.ListAnalysesForRescore(ctx, s.batchSize, offset)
		if err != nil {
			errs = append(errs, fmt.Errorf("listing analyses at offset %d: %w", offset, err))
			break
		}
		if len(batch) == 0 {
			break
		}

		for i := range batch {
			a := &batch[i]
			stats.Scanned++
			if err := s.rescoreOne(ctx, a); err != nil {
				stats.Failed++
				errs = append(errs, fmt.Errorf("analysis %s: %w", a.ID, err))
				continue
			}
			stats.Updated++
		}

		if len(batch) < s.batchSize {
			break
		}
	}

	metrics.RescoreDuration.Observe(time.Since(start).Seconds())
	if len(errs) > 0 {
		metrics.RescoreErrorsTotal.Add(float64(stats.Failed))
	}

	s.log.Info("rescore sweep finished",
		"scanned", stats.Scanned,
		"updated", stats.Updated,
		"failed", stats.Failed,
		"rate_table_version", s.eval.Version(),
		"duration", time.Since(start))
	return stats, errors.Join(errs...)
}

func (s *Service) rescoreOne(ctx context.Context, a *domain.Analysis) error {
	res, err := s.eval.Evaluate(&a.Inputs)
	if err != nil {
		return fmt.Errorf("re-evaluating: %w", err)
	}

	a.Result = *res
	raw, err := a.MarshalResult()
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := s.store.UpdateAnalysisScore(ctx, a.ID, res.FinalScore, res.RateTableVersion, raw); err != nil {
		return fmt.Errorf("updating score: %w", err)
	}
	return nil
}
