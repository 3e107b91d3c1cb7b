package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// AnalysisRequest contains the fields the API accepts when saving an
// analysis.
type AnalysisRequest struct {
	Identifier string               `json:"identifier,omitempty"`
	Title      string               `json:"title,omitempty"`
	Notes      string               `json:"notes,omitempty"`
	Inputs     domain.ProductInputs `json:"inputs"`
}

// AnalysisPage is one page of analyses plus the total match count.
type AnalysisPage struct {
	Analyses []domain.Analysis `json:"analyses"`
	Total    int               `json:"total"`
}

// ListOptions filters and pages an analysis listing.
type ListOptions struct {
	MinScore   int
	MaxScore   int
	Category   string
	Identifier string
	Limit      int
	Offset     int
	OrderBy    string
}

func (o ListOptions) query() string {
	v := url.Values{}
	if o.MinScore > 0 {
		v.Set("min_score", strconv.Itoa(o.MinScore))
	}
	if o.MaxScore > 0 {
		v.Set("max_score", strconv.Itoa(o.MaxScore))
	}
	if o.Category != "" {
		v.Set("category", o.Category)
	}
	if o.Identifier != "" {
		v.Set("identifier", o.Identifier)
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		v.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.OrderBy != "" {
		v.Set("order_by", o.OrderBy)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// CreateAnalysis evaluates and saves a new analysis.
func (c *Client) CreateAnalysis(ctx context.Context, req *AnalysisRequest) (*domain.Analysis, error) {
	var created domain.Analysis
	if err := c.post(ctx, "/api/v1/analyses", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAnalyses returns the caller's analyses, filtered and paged.
func (c *Client) ListAnalyses(ctx context.Context, opts ListOptions) (*AnalysisPage, error) {
	var page AnalysisPage
	if err := c.get(ctx, "/api/v1/analyses"+opts.query(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAnalysis returns a single analysis by ID.
func (c *Client) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	var a domain.Analysis
	if err := c.get(ctx, "/api/v1/analyses/"+id, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAnalysisNotes replaces the notes on an analysis.
func (c *Client) UpdateAnalysisNotes(ctx context.Context, id, notes string) error {
	body := map[string]string{"notes": notes}
	return c.patch(ctx, fmt.Sprintf("/api/v1/analyses/%s/notes", id), body, nil)
}

// DeleteAnalysis removes an analysis.
func (c *Client) DeleteAnalysis(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/analyses/"+id, nil)
}
