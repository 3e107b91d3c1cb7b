package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/arbiscout/arbiscout/internal/engine"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// EvaluateHandler handles stateless product evaluations.
type EvaluateHandler struct {
	svc *engine.Service
}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler(svc *engine.Service) *EvaluateHandler {
	return &EvaluateHandler{svc: svc}
}

// --- Input/Output types ---

// EvaluateRequestBody carries the product under consideration. The
// identifier is optional; when given, catalog data fills any inputs
// the caller left blank.
type EvaluateRequestBody struct {
	Identifier string               `json:"identifier,omitempty" doc:"Marketplace identifier for catalog enrichment"`
	Inputs     domain.ProductInputs `json:"inputs"`
}

// EvaluateInput is the input for a stateless evaluation.
type EvaluateInput struct {
	Body EvaluateRequestBody
}

// EvaluateOutput is the response for a stateless evaluation.
type EvaluateOutput struct {
	Body domain.ScoreResult
}

// --- Handlers ---

// Evaluate scores a product without persisting anything.
func (h *EvaluateHandler) Evaluate(
	ctx context.Context,
	input *EvaluateInput,
) (*EvaluateOutput, error) {
	in := input.Body.Inputs
	res, err := h.svc.Evaluate(ctx, input.Body.Identifier, &in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Error())
		}
		return nil, huma.Error500InternalServerError("evaluation failed: " + err.Error())
	}

	return &EvaluateOutput{Body: *res}, nil
}

// RegisterEvaluateRoutes registers the evaluation endpoint with the Huma API.
func RegisterEvaluateRoutes(api huma.API, h *EvaluateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "evaluate-product",
		Method:      http.MethodPost,
		Path:        "/api/v1/evaluate",
		Summary:     "Evaluate a product",
		Description: "Scores a sourcing candidate against the current rate table without persisting anything.",
		Tags:        []string{"scoring"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.Evaluate)
}
