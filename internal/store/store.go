// Package store defines the datastore abstraction for arbiscout.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"encoding/json"
	"errors"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

// ErrNotFound is returned when no analysis matches the given ID.
var ErrNotFound = errors.New("analysis not found")

// AnalysisQuery defines optional filters for analysis listings. OwnerID is
// mandatory: analyses are always scoped to their owner.
type AnalysisQuery struct {
	OwnerID    string
	MinScore   *int
	MaxScore   *int
	Category   *string
	Identifier *string
	Limit      int // default 50
	Offset     int
	OrderBy    string // "score", "created_at", "updated_at"
}

// Store defines all data access operations for arbiscout.
type Store interface {
	// Analyses
	CreateAnalysis(ctx context.Context, a *domain.Analysis) error
	GetAnalysis(ctx context.Context, id, ownerID string) (*domain.Analysis, error)
	ListAnalyses(ctx context.Context, opts *AnalysisQuery) ([]domain.Analysis, int, error)
	UpdateAnalysisNotes(ctx context.Context, id, ownerID, notes string) error
	DeleteAnalysis(ctx context.Context, id, ownerID string) error

	// Rescoring
	ListAnalysesForRescore(ctx context.Context, batchSize, offset int) ([]domain.Analysis, error)
	UpdateAnalysisScore(ctx context.Context, id string, score int, rateTableVersion string, result json.RawMessage) error

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close()
}
