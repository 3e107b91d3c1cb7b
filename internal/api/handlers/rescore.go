package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/arbiscout/arbiscout/internal/engine"
)

// RescoreHandler handles re-scoring sweeps.
type RescoreHandler struct {
	svc *engine.Service
}

// NewRescoreHandler creates a new RescoreHandler.
func NewRescoreHandler(svc *engine.Service) *RescoreHandler {
	return &RescoreHandler{svc: svc}
}

// RescoreBody summarizes one rescore sweep.
type RescoreBody struct {
	Scanned          int    `json:"scanned"`
	Updated          int    `json:"updated"`
	Failed           int    `json:"failed"`
	RateTableVersion string `json:"rate_table_version"`
}

// RescoreOutput is the response for a rescore sweep.
type RescoreOutput struct {
	Body RescoreBody
}

// Rescore re-evaluates every stored analysis against the current rate
// table. Partial failures still return 200 with the failure count; the
// sweep is fix-forward.
func (h *RescoreHandler) Rescore(
	ctx context.Context,
	_ *struct{},
) (*RescoreOutput, error) {
	stats, err := h.svc.Rescore(ctx)
	if err != nil && stats.Updated == 0 && stats.Scanned == 0 {
		return nil, huma.Error500InternalServerError("rescore failed: " + err.Error())
	}

	return &RescoreOutput{Body: RescoreBody{
		Scanned:          stats.Scanned,
		Updated:          stats.Updated,
		Failed:           stats.Failed,
		RateTableVersion: h.svc.RateTableVersion(),
	}}, nil
}

// RegisterRescoreRoutes registers the rescore endpoint with the Huma API.
func RegisterRescoreRoutes(api huma.API, h *RescoreHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "rescore-analyses",
		Method:      http.MethodPost,
		Path:        "/api/v1/rescore",
		Summary:     "Re-score all analyses",
		Description: "Re-evaluates every saved analysis against the current rate table.",
		Tags:        []string{"scoring"},
	}, h.Rescore)
}
