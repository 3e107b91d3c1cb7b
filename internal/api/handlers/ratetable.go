package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/arbiscout/arbiscout/internal/engine"
)

// RateTableHandler exposes the active rate table version.
type RateTableHandler struct {
	svc *engine.Service
}

// NewRateTableHandler creates a new RateTableHandler.
func NewRateTableHandler(svc *engine.Service) *RateTableHandler {
	return &RateTableHandler{svc: svc}
}

// RateTableBody describes the active rate table.
type RateTableBody struct {
	Version string `json:"version" example:"2026-q3"`
}

// RateTableOutput is the response for the rate table info endpoint.
type RateTableOutput struct {
	Body RateTableBody
}

// GetRateTable returns the version of the rate table every evaluation
// currently runs against. Saved analyses carry the version they were
// scored with, so clients can spot stale rows.
func (h *RateTableHandler) GetRateTable(
	ctx context.Context,
	_ *struct{},
) (*RateTableOutput, error) {
	return &RateTableOutput{Body: RateTableBody{
		Version: h.svc.RateTableVersion(),
	}}, nil
}

// RegisterRateTableRoutes registers the rate table endpoint with the Huma API.
func RegisterRateTableRoutes(api huma.API, h *RateTableHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-rate-table",
		Method:      http.MethodGet,
		Path:        "/api/v1/ratetable",
		Summary:     "Get the active rate table version",
		Description: "Returns the rate table version all new evaluations are scored against.",
		Tags:        []string{"scoring"},
	}, h.GetRateTable)
}
