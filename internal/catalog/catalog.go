// Package catalog provides a product catalog lookup client abstracted
// behind an interface for testability. The catalog is an optional
// collaborator: evaluations work from caller-supplied inputs alone when no
// catalog is configured.
package catalog

import (
	"context"
	"errors"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// ErrNotFound is returned when the catalog has no record for an identifier.
var ErrNotFound = errors.New("product not found")

// Product is the catalog's view of one listing. Pointer fields mirror the
// engine's optional inputs: the catalog may know none, some, or all of them.
type Product struct {
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Category   string `json:"category"`

	UnitWeightLb float64           `json:"unit_weight_lb"`
	DimensionsIn domain.Dimensions `json:"dimensions_in"`

	IsApparel       bool `json:"is_apparel"`
	IsDangerousGood bool `json:"is_dangerous_good"`

	RankProxy       *int              `json:"rank_proxy,omitempty"`
	CompetitorCount *int              `json:"competitor_count,omitempty"`
	AmazonIsSeller  bool              `json:"amazon_is_seller"`
	SalesTrend      domain.SalesTrend `json:"sales_trend,omitempty"`
	VariationCount  int               `json:"variation_count"`
}

// Client defines the interface for catalog lookups.
type Client interface {
	Lookup(ctx context.Context, identifier string) (*Product, error)
}
