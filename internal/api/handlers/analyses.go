package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/arbiscout/arbiscout/internal/engine"
	"github.com/arbiscout/arbiscout/internal/store"
	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// AnalysesHandler handles analysis CRUD operations. Every operation is
// scoped to the owner named in the X-Owner-ID header.
type AnalysesHandler struct {
	svc   *engine.Service
	store store.Store
}

// NewAnalysesHandler creates a new AnalysesHandler.
func NewAnalysesHandler(svc *engine.Service, s store.Store) *AnalysesHandler {
	return &AnalysesHandler{svc: svc, store: s}
}

// --- Input/Output types ---

// CreateAnalysisBody is the request body for saving a new analysis.
type CreateAnalysisBody struct {
	Identifier string               `json:"identifier,omitempty" doc:"Marketplace identifier for catalog enrichment"`
	Title      string               `json:"title,omitempty" doc:"Display title, defaults to the catalog title"`
	Notes      string               `json:"notes,omitempty"`
	Inputs     domain.ProductInputs `json:"inputs"`
}

// CreateAnalysisInput is the input for saving a new analysis.
type CreateAnalysisInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	Body    CreateAnalysisBody
}

// CreateAnalysisOutput is the response for saving a new analysis.
type CreateAnalysisOutput struct {
	Body domain.Analysis
}

// ListAnalysesInput is the input for listing analyses.
type ListAnalysesInput struct {
	OwnerID    string `header:"X-Owner-ID" doc:"Caller identity"`
	MinScore   int    `query:"min_score" minimum:"0" maximum:"100" doc:"Lowest score to include, 0 means no floor"`
	MaxScore   int    `query:"max_score" minimum:"0" maximum:"100" doc:"Highest score to include, 0 means no ceiling"`
	Category   string `query:"category" doc:"Exact category filter"`
	Identifier string `query:"identifier" doc:"Exact identifier filter"`
	Limit      int    `query:"limit" minimum:"0" maximum:"200" doc:"Page size, capped at 200"`
	Offset     int    `query:"offset" minimum:"0"`
	OrderBy    string `query:"order_by" enum:",score,created_at,updated_at" doc:"Sort column, newest first by default"`
}

// ListAnalysesBody is the response body for listing analyses.
type ListAnalysesBody struct {
	Analyses []domain.Analysis `json:"analyses"`
	Total    int               `json:"total" doc:"Total matching rows before paging"`
}

// ListAnalysesOutput is the response for listing analyses.
type ListAnalysesOutput struct {
	Body ListAnalysesBody
}

// GetAnalysisInput is the input for fetching a single analysis.
type GetAnalysisInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	ID      string `path:"id" doc:"Analysis UUID"`
}

// GetAnalysisOutput is the response for fetching a single analysis.
type GetAnalysisOutput struct {
	Body domain.Analysis
}

// UpdateNotesInput is the input for replacing an analysis's notes.
type UpdateNotesInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	ID      string `path:"id" doc:"Analysis UUID"`
	Body    struct {
		Notes string `json:"notes"`
	}
}

// UpdateNotesOutput is the response for replacing an analysis's notes.
type UpdateNotesOutput struct {
	Body StatusResponse
}

// DeleteAnalysisInput is the input for deleting an analysis.
type DeleteAnalysisInput struct {
	OwnerID string `header:"X-Owner-ID" doc:"Caller identity"`
	ID      string `path:"id" doc:"Analysis UUID"`
}

// --- Handlers ---

// CreateAnalysis evaluates a product and saves the outcome for the caller.
func (h *AnalysesHandler) CreateAnalysis(
	ctx context.Context,
	input *CreateAnalysisInput,
) (*CreateAnalysisOutput, error) {
	if input.OwnerID == "" {
		return nil, huma.Error401Unauthorized("missing X-Owner-ID header")
	}

	a, err := h.svc.Analyze(ctx, &engine.AnalyzeRequest{
		OwnerID:    input.OwnerID,
		Identifier: input.Body.Identifier,
		Title:      input.Body.Title,
		Notes:      input.Body.Notes,
		Inputs:     input.Body.Inputs,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, huma.Error422UnprocessableEntity(verr.Error())
		}
		return nil, huma.Error500InternalServerError("creating analysis: " + err.Error())
	}

	return &CreateAnalysisOutput{Body: *a}, nil
}

// ListAnalyses returns the caller's analyses, filtered and paged.
func (h *AnalysesHandler) ListAnalyses(
	ctx context.Context,
	input *ListAnalysesInput,
) (*ListAnalysesOutput, error) {
	if input.OwnerID == "" {
		return nil, huma.Error401Unauthorized("missing X-Owner-ID header")
	}

	q := &store.AnalysisQuery{
		OwnerID: input.OwnerID,
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.MinScore > 0 {
		q.MinScore = &input.MinScore
	}
	if input.MaxScore > 0 {
		q.MaxScore = &input.MaxScore
	}
	if input.Category != "" {
		q.Category = &input.Category
	}
	if input.Identifier != "" {
		q.Identifier = &input.Identifier
	}

	analyses, total, err := h.store.ListAnalyses(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing analyses: " + err.Error())
	}
	if analyses == nil {
		analyses = []domain.Analysis{}
	}

	return &ListAnalysesOutput{Body: ListAnalysesBody{
		Analyses: analyses,
		Total:    total,
	}}, nil
}

// GetAnalysis returns one of the caller's analyses by ID.
func (h *AnalysesHandler) GetAnalysis(
	ctx context.Context,
	input *GetAnalysisInput,
) (*GetAnalysisOutput, error) {
	if input.OwnerID == "" {
		return nil, huma.Error401Unauthorized("missing X-Owner-ID header")
	}

	a, err := h.store.GetAnalysis(ctx, input.ID, input.OwnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("analysis not found")
		}
		return nil, huma.Error500InternalServerError("fetching analysis: " + err.Error())
	}

	return &GetAnalysisOutput{Body: *a}, nil
}

// UpdateNotes replaces the free-form notes on one of the caller's analyses.
func (h *AnalysesHandler) UpdateNotes(
	ctx context.Context,
	input *UpdateNotesInput,
) (*UpdateNotesOutput, error) {
	if input.OwnerID == "" {
		return nil, huma.Error401Unauthorized("missing X-Owner-ID header")
	}

	err := h.store.UpdateAnalysisNotes(ctx, input.ID, input.OwnerID, input.Body.Notes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("analysis not found")
		}
		return nil, huma.Error500InternalServerError("updating notes: " + err.Error())
	}

	return &UpdateNotesOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// DeleteAnalysis removes one of the caller's analyses.
func (h *AnalysesHandler) DeleteAnalysis(
	ctx context.Context,
	input *DeleteAnalysisInput,
) (*struct{}, error) {
	if input.OwnerID == "" {
		return nil, huma.Error401Unauthorized("missing X-Owner-ID header")
	}

	if err := h.store.DeleteAnalysis(ctx, input.ID, input.OwnerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("analysis not found")
		}
		return nil, huma.Error500InternalServerError("deleting analysis: " + err.Error())
	}

	return nil, nil
}

// RegisterAnalysisRoutes registers analysis CRUD endpoints with the Huma API.
func RegisterAnalysisRoutes(api huma.API, h *AnalysesHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-analysis",
		Method:        http.MethodPost,
		Path:          "/api/v1/analyses",
		Summary:       "Evaluate and save an analysis",
		Description:   "Scores a sourcing candidate and persists the inputs and result under the caller's identity.",
		Tags:          []string{"analyses"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnauthorized, http.StatusUnprocessableEntity},
	}, h.CreateAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "list-analyses",
		Method:      http.MethodGet,
		Path:        "/api/v1/analyses",
		Summary:     "List analyses",
		Description: "Returns the caller's saved analyses, filtered and paged.",
		Tags:        []string{"analyses"},
		Errors:      []int{http.StatusUnauthorized},
	}, h.ListAnalyses)

	huma.Register(api, huma.Operation{
		OperationID: "get-analysis",
		Method:      http.MethodGet,
		Path:        "/api/v1/analyses/{id}",
		Summary:     "Get an analysis by ID",
		Description: "Returns a single saved analysis belonging to the caller.",
		Tags:        []string{"analyses"},
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.GetAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "update-analysis-notes",
		Method:      http.MethodPatch,
		Path:        "/api/v1/analyses/{id}/notes",
		Summary:     "Update analysis notes",
		Description: "Replaces the free-form notes on a saved analysis.",
		Tags:        []string{"analyses"},
		Errors:      []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.UpdateNotes)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-analysis",
		Method:        http.MethodDelete,
		Path:          "/api/v1/analyses/{id}",
		Summary:       "Delete an analysis",
		Description:   "Removes a saved analysis belonging to the caller.",
		Tags:          []string{"analyses"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusNotFound},
	}, h.DeleteAnalysis)
}
