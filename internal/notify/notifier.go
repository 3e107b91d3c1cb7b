// Package notify defines the notification interface and implementations
// for opportunity alert delivery.
package notify

import (
	"context"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// OpportunityAlert contains the data needed to announce a high-scoring
// analysis.
type OpportunityAlert struct {
	AnalysisID string
	Title      string
	Identifier string
	Category   string
	Score      int
	ROIPercent float64
	NetProfit  float64
	TotalFees  float64
	SizeTier   domain.SizeTier
	Warnings   []domain.Warning
}

// Notifier defines the interface for sending opportunity notifications.
type Notifier interface {
	SendOpportunity(ctx context.Context, alert *OpportunityAlert) error
}
