package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arbiscout/arbiscout/internal/catalog"
	catalogMocks "github.com/arbiscout/arbiscout/internal/catalog/mocks"
	"github.com/arbiscout/arbiscout/internal/notify"
	"github.com/arbiscout/arbiscout/internal/ratetable"
	storeMocks "github.com/arbiscout/arbiscout/internal/store/mocks"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

func intp(v int) *int { return &v }

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func testEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	return NewEvaluator(ratetable.Default(), WithNowFunc(fixedNow))
}

func validInputs() domain.ProductInputs {
	return domain.ProductInputs{
		SellingPrice:    49.99,
		CostPrice:       15.00,
		Category:        "electronics",
		UnitWeightLb:    0.75,
		DimensionsIn:    domain.Dimensions{LengthIn: 3.9, WidthIn: 3.9, HeightIn: 3.5},
		RankProxy:       intp(1500),
		CompetitorCount: intp(4),
		SalesTrend:      domain.TrendStable,
		DelicacyRating:  3,
		VariationCount:  1,
	}
}

func TestEvaluator_Evaluate(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	in := validInputs()
	res, err := ev.Evaluate(&in)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, ratetable.BuiltinVersion, res.RateTableVersion)
	assert.GreaterOrEqual(t, res.FinalScore, 1)
	assert.LessOrEqual(t, res.FinalScore, 100)
	assert.False(t, res.DealBreaker)
}

func TestEvaluator_Evaluate_InvalidInputs(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	res, err := ev.Evaluate(&domain.ProductInputs{SellingPrice: -1})
	require.Error(t, err)
	assert.Nil(t, res)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "selling_price", verr.Field)
}

func TestService_Evaluate_CatalogEnrichment(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	mc := catalogMocks.NewMockClient(t)
	mc.EXPECT().Lookup(mock.Anything, "B00TESTSKU").Return(&catalog.Product{
		Identifier:      "B00TESTSKU",
		Title:           "USB-C Hub",
		Category:        "electronics",
		UnitWeightLb:    0.75,
		DimensionsIn:    domain.Dimensions{LengthIn: 3.9, WidthIn: 3.9, HeightIn: 3.5},
		RankProxy:       intp(1500),
		CompetitorCount: intp(4),
		SalesTrend:      domain.TrendStable,
		VariationCount:  1,
	}, nil)

	svc := NewService(storeMocks.NewMockStore(t), ev, WithCatalog(mc))

	// Only prices and delicacy provided; the catalog supplies the rest.
	sparse := &domain.ProductInputs{
		SellingPrice:   49.99,
		CostPrice:      15.00,
		DelicacyRating: 3,
	}
	got, err := svc.Evaluate(context.Background(), "B00TESTSKU", sparse)
	require.NoError(t, err)

	full := validInputs()
	want, err := ev.Evaluate(&full)
	require.NoError(t, err)
	assert.Equal(t, want.FinalScore, got.FinalScore)
	assert.Equal(t, want.Fees.SizeTier, got.Fees.SizeTier)
}

func TestService_Evaluate_ExplicitInputsWin(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	mc := catalogMocks.NewMockClient(t)
	mc.EXPECT().Lookup(mock.Anything, "B00TESTSKU").Return(&catalog.Product{
		Identifier:   "B00TESTSKU",
		Category:     "apparel",
		UnitWeightLb: 40,
		RankProxy:    intp(900000),
	}, nil)

	svc := NewService(storeMocks.NewMockStore(t), ev, WithCatalog(mc))

	in := validInputs()
	got, err := svc.Evaluate(context.Background(), "B00TESTSKU", &in)
	require.NoError(t, err)

	assert.Equal(t, "electronics", in.Category)
	assert.Equal(t, 0.75, in.UnitWeightLb)
	assert.Equal(t, 1500, *in.RankProxy)
	assert.False(t, got.DealBreaker)
}

func TestService_Evaluate_CatalogMiss(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	mc := catalogMocks.NewMockClient(t)
	mc.EXPECT().Lookup(mock.Anything, "UNKNOWN").Return(nil, catalog.ErrNotFound)

	svc := NewService(storeMocks.NewMockStore(t), ev, WithCatalog(mc))

	in := validInputs()
	res, err := svc.Evaluate(context.Background(), "UNKNOWN", &in)
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestService_Analyze(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CreateAnalysis(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, a *domain.Analysis) {
			a.ID = "4f2d11aa-0000-4000-8000-000000000001"
			a.CreatedAt = fixedNow()
			a.UpdatedAt = fixedNow()
		}).Return(nil)

	svc := NewService(ms, ev)

	a, err := svc.Analyze(context.Background(), &AnalyzeRequest{
		OwnerID: "user-1",
		Title:   "USB-C Hub",
		Notes:   "from supplier quote",
		Inputs:  validInputs(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "user-1", a.OwnerID)
	assert.Equal(t, "USB-C Hub", a.Title)
	assert.Equal(t, "electronics", a.Category)
	assert.Equal(t, a.Result.FinalScore, a.Score)
	assert.Equal(t, ratetable.BuiltinVersion, a.RateTableVersion)
	assert.Equal(t, "from supplier quote", a.Notes)
}

func TestService_Analyze_MissingOwner(t *testing.T) {
	t.Parallel()
	svc := NewService(storeMocks.NewMockStore(t), testEvaluator(t))

	_, err := svc.Analyze(context.Background(), &AnalyzeRequest{Inputs: validInputs()})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "owner_id", verr.Field)
}

func TestService_Analyze_StoreError(t *testing.T) {
	t.Parallel()
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().CreateAnalysis(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	svc := NewService(ms, testEvaluator(t))
	_, err := svc.Analyze(context.Background(), &AnalyzeRequest{
		OwnerID: "user-1",
		Inputs:  validInputs(),
	})
	require.ErrorContains(t, err, "saving analysis")
}

type fakeNotifier struct {
	alerts []*notify.OpportunityAlert
	err    error
}

func (f *fakeNotifier) SendOpportunity(_ context.Context, alert *notify.OpportunityAlert) error {
	f.alerts = append(f.alerts, alert)
	return f.err
}

func TestService_Analyze_Alerts(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T) *storeMocks.MockStore {
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().CreateAnalysis(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, a *domain.Analysis) {
				a.ID = "4f2d11aa-0000-4000-8000-000000000002"
			}).Return(nil)
		return ms
	}

	t.Run("above threshold fires", func(t *testing.T) {
		t.Parallel()
		fn := &fakeNotifier{}
		svc := NewService(newStore(t), testEvaluator(t), WithNotifier(fn, 1))

		a, err := svc.Analyze(context.Background(), &AnalyzeRequest{
			OwnerID: "user-1",
			Title:   "USB hub",
			Inputs:  validInputs(),
		})
		require.NoError(t, err)
		require.Len(t, fn.alerts, 1)
		assert.Equal(t, a.ID, fn.alerts[0].AnalysisID)
		assert.Equal(t, "USB hub", fn.alerts[0].Title)
		assert.Equal(t, a.Score, fn.alerts[0].Score)
	})

	t.Run("below threshold stays quiet", func(t *testing.T) {
		t.Parallel()
		fn := &fakeNotifier{}
		svc := NewService(newStore(t), testEvaluator(t), WithNotifier(fn, 101))

		_, err := svc.Analyze(context.Background(), &AnalyzeRequest{
			OwnerID: "user-1",
			Inputs:  validInputs(),
		})
		require.NoError(t, err)
		assert.Empty(t, fn.alerts)
	})

	t.Run("notifier failure never fails the save", func(t *testing.T) {
		t.Parallel()
		fn := &fakeNotifier{err: errors.New("webhook down")}
		svc := NewService(newStore(t), testEvaluator(t), WithNotifier(fn, 1))

		a, err := svc.Analyze(context.Background(), &AnalyzeRequest{
			OwnerID: "user-1",
			Inputs:  validInputs(),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
	})
}

func TestService_Rescore(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	stored := []domain.Analysis{
		{ID: "a-1", OwnerID: "user-1", Inputs: validInputs(), Score: 10, RateTableVersion: "old"},
		{ID: "a-2", OwnerID: "user-2", Inputs: validInputs(), Score: 99, RateTableVersion: "old"},
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAnalysesForRescore(mock.Anything, defaultRescoreBatchSize, 0).
		Return(stored, nil)
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-1", mock.Anything, ratetable.BuiltinVersion, mock.Anything).
		Return(nil)
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-2", mock.Anything, ratetable.BuiltinVersion, mock.Anything).
		Return(nil)

	svc := NewService(ms, ev)
	stats, err := svc.Rescore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RescoreStats{Scanned: 2, Updated: 2}, stats)
}

func TestService_Rescore_PartialFailure(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	stored := []domain.Analysis{
		{ID: "a-1", Inputs: validInputs()},
		{ID: "a-2", Inputs: validInputs()},
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAnalysesForRescore(mock.Anything, defaultRescoreBatchSize, 0).
		Return(stored, nil)
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-1", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("row gone"))
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-2", mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	svc := NewService(ms, ev)
	stats, err := svc.Rescore(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "a-1")
	assert.Equal(t, RescoreStats{Scanned: 2, Updated: 1, Failed: 1}, stats)
}

func TestService_Rescore_Paging(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	page := func(ids ...string) []domain.Analysis {
		out := make([]domain.Analysis, 0, len(ids))
		for _, id := range ids {
			out = append(out, domain.Analysis{ID: id, Inputs: validInputs()})
		}
		return out
	}

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAnalysesForRescore(mock.Anything, 2, 0).Return(page("a-1", "a-2"), nil)
	ms.EXPECT().ListAnalysesForRescore(mock.Anything, 2, 2).Return(page("a-3"), nil)
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).Times(3)

	svc := NewService(ms, ev, WithRescoreBatchSize(2))
	stats, err := svc.Rescore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RescoreStats{Scanned: 3, Updated: 3}, stats)
}

func TestService_Rescore_UpdatesResultJSON(t *testing.T) {
	t.Parallel()
	ev := testEvaluator(t)

	stored := []domain.Analysis{{ID: "a-1", Inputs: validInputs()}}

	var raw json.RawMessage
	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().ListAnalysesForRescore(mock.Anything, defaultRescoreBatchSize, 0).
		Return(stored, nil)
	ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-1", mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, id string, score int, version string, result json.RawMessage) {
			raw = result
		}).Return(nil)

	svc := NewService(ms, ev)
	_, err := svc.Rescore(context.Background())
	require.NoError(t, err)

	var res domain.ScoreResult
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Equal(t, ratetable.BuiltinVersion, res.RateTableVersion)
	assert.GreaterOrEqual(t, res.FinalScore, 1)
}

func TestScheduler(t *testing.T) {
	t.Parallel()
	svc := NewService(storeMocks.NewMockStore(t), testEvaluator(t))

	sched, err := NewScheduler(svc, time.Hour, nil)
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)

	sched.Start()
	<-sched.Stop().Done()
}
