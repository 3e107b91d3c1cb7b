package client

import (
	"context"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// evaluateRequest mirrors the evaluate endpoint's body.
type evaluateRequest struct {
	Identifier string               `json:"identifier,omitempty"`
	Inputs     domain.ProductInputs `json:"inputs"`
}

// Evaluate scores a product without persisting anything.
func (c *Client) Evaluate(ctx context.Context, identifier string, in *domain.ProductInputs) (*domain.ScoreResult, error) {
	var res domain.ScoreResult
	req := evaluateRequest{Identifier: identifier, Inputs: *in}
	if err := c.post(ctx, "/api/v1/evaluate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RescoreSummary reports the outcome of a rescore sweep.
type RescoreSummary struct {
	Scanned          int    `json:"scanned"`
	Updated          int    `json:"updated"`
	Failed           int    `json:"failed"`
	RateTableVersion string `json:"rate_table_version"`
}

// Rescore re-evaluates every saved analysis against the current rate table.
func (c *Client) Rescore(ctx context.Context) (*RescoreSummary, error) {
	var summary RescoreSummary
	if err := c.post(ctx, "/api/v1/rescore", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RateTableVersion returns the version of the server's active rate table.
func (c *Client) RateTableVersion(ctx context.Context) (string, error) {
	var body struct {
		Version string `json:"version"`
	}
	if err := c.get(ctx, "/api/v1/ratetable", &body); err != nil {
		return "", err
	}
	return body.Version, nil
}
