package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arbiscout/arbiscout/internal/api/handlers"
	"github.com/arbiscout/arbiscout/internal/store"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

const ownerHeader = "X-Owner-ID: user-1"

func TestAnalysesHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("saves and returns the analysis", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().CreateAnalysis(mock.Anything, mock.Anything).
			Run(func(ctx context.Context, a *domain.Analysis) {
				a.ID = "4f2d11aa-0000-4000-8000-000000000001"
			}).Return(nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Post("/api/v1/analyses", ownerHeader, map[string]any{
			"title":  "USB-C Hub",
			"notes":  "supplier quote attached",
			"inputs": validInputsBody(),
		})

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), "4f2d11aa")
		assert.Contains(t, resp.Body.String(), `"score"`)
	})

	t.Run("requires owner header", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Post("/api/v1/analyses", map[string]any{
			"inputs": validInputsBody(),
		})
		require.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		body := validInputsBody()
		body["selling_price"] = 0
		resp := api.Post("/api/v1/analyses", ownerHeader, map[string]any{
			"inputs": body,
		})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}

func TestAnalysesHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("passes filters through", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().
			ListAnalyses(mock.Anything, mock.MatchedBy(func(q *store.AnalysisQuery) bool {
				return q.OwnerID == "user-1" &&
					q.MinScore != nil && *q.MinScore == 70 &&
					q.MaxScore == nil &&
					q.Category != nil && *q.Category == "electronics" &&
					q.OrderBy == "score"
			})).
			Return([]domain.Analysis{{ID: "a-1", OwnerID: "user-1", Score: 82}}, 1, nil).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Get("/api/v1/analyses?min_score=70&category=electronics&order_by=score", ownerHeader)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"total":1`)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().ListAnalyses(mock.Anything, mock.Anything).Return(nil, 0, nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Get("/api/v1/analyses", ownerHeader)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"analyses":[]`)
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().ListAnalyses(mock.Anything, mock.Anything).
			Return(nil, 0, errors.New("db error")).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Get("/api/v1/analyses", ownerHeader)
		require.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestAnalysesHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("returns the analysis", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().GetAnalysis(mock.Anything, "a-1", "user-1").
			Return(&domain.Analysis{ID: "a-1", OwnerID: "user-1", Title: "USB-C Hub"}, nil).
			Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Get("/api/v1/analyses/a-1", ownerHeader)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "USB-C Hub")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().GetAnalysis(mock.Anything, "missing", "user-1").
			Return(nil, store.ErrNotFound).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Get("/api/v1/analyses/missing", ownerHeader)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestAnalysesHandler_UpdateNotes(t *testing.T) {
	t.Parallel()

	t.Run("updates", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().UpdateAnalysisNotes(mock.Anything, "a-1", "user-1", "new notes").
			Return(nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Patch("/api/v1/analyses/a-1/notes", ownerHeader, map[string]any{
			"notes": "new notes",
		})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "updated")
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().UpdateAnalysisNotes(mock.Anything, "missing", "user-1", "x").
			Return(store.ErrNotFound).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Patch("/api/v1/analyses/missing/notes", ownerHeader, map[string]any{
			"notes": "x",
		})
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestAnalysesHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deletes", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().DeleteAnalysis(mock.Anything, "a-1", "user-1").Return(nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Delete("/api/v1/analyses/a-1", ownerHeader)
		require.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().DeleteAnalysis(mock.Anything, "missing", "user-1").
			Return(store.ErrNotFound).Once()

		_, api := humatest.New(t)
		handlers.RegisterAnalysisRoutes(api, handlers.NewAnalysesHandler(svc, ms))

		resp := api.Delete("/api/v1/analyses/missing", ownerHeader)
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}
