package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arbiscout/arbiscout/internal/api/handlers"
	"github.com/arbiscout/arbiscout/internal/ratetable"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

func TestRescoreHandler(t *testing.T) {
	t.Parallel()

	t.Run("sweeps and reports counts", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().ListAnalysesForRescore(mock.Anything, mock.Anything, 0).
			Return([]domain.Analysis{{
				ID: "a-1",
				Inputs: domain.ProductInputs{
					SellingPrice: 49.99,
					CostPrice:    15.00,
					Category:     "electronics",
					UnitWeightLb: 0.75,
					DimensionsIn: domain.Dimensions{LengthIn: 3.9, WidthIn: 3.9, HeightIn: 3.5},
				},
			}}, nil).Once()
		ms.EXPECT().UpdateAnalysisScore(mock.Anything, "a-1", mock.Anything, ratetable.BuiltinVersion, mock.Anything).
			Return(nil).Once()

		_, api := humatest.New(t)
		handlers.RegisterRescoreRoutes(api, handlers.NewRescoreHandler(svc))

		resp := api.Post("/api/v1/rescore")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"updated":1`)
		assert.Contains(t, resp.Body.String(), ratetable.BuiltinVersion)
	})

	t.Run("listing failure is a 500", func(t *testing.T) {
		t.Parallel()
		svc, ms := newTestService(t)
		ms.EXPECT().ListAnalysesForRescore(mock.Anything, mock.Anything, 0).
			Return(nil, errors.New("db down")).Once()

		_, api := humatest.New(t)
		handlers.RegisterRescoreRoutes(api, handlers.NewRescoreHandler(svc))

		resp := api.Post("/api/v1/rescore")
		require.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestRateTableHandler(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, api := humatest.New(t)
	handlers.RegisterRateTableRoutes(api, handlers.NewRateTableHandler(svc))

	resp := api.Get("/api/v1/ratetable")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), ratetable.BuiltinVersion)
}
