package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/arbiscout/arbiscout/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// CreateAnalysis inserts a new analysis, filling ID and timestamps.
func (s *PostgresStore) CreateAnalysis(ctx context.Context, a *domain.Analysis) error {
	inputs, err := a.MarshalInputs()
	if err != nil {
		return fmt.Errorf("marshaling inputs: %w", err)
	}
	result, err := a.MarshalResult()
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	args := pgx.NamedArgs{
		"owner_id":           a.OwnerID,
		"identifier":         a.Identifier,
		"title":              a.Title,
		"category":           a.Category,
		"score":              a.Score,
		"rate_table_version": a.RateTableVersion,
		"inputs":             inputs,
		"result":             result,
		"notes":              a.Notes,
	}

	return s.pool.QueryRow(ctx, queryInsertAnalysis, args).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt,
	)
}

// GetAnalysis retrieves one analysis scoped to its owner.
func (s *PostgresStore) GetAnalysis(ctx context.Context, id, ownerID string) (*domain.Analysis, error) {
	a := &domain.Analysis{}
	if err := scanAnalysis(s.pool.QueryRow(ctx, queryGetAnalysis, id, ownerID), a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAnalyses queries analyses with optional filters, returning results
// and total count.
func (s *PostgresStore) ListAnalyses(
	ctx context.Context,
	opts *AnalysisQuery,
) ([]domain.Analysis, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting analyses: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var analyses []domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		if err := scanAnalysis(rows, &a); err != nil {
			return nil, 0, fmt.Errorf("scanning analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, total, nil
}

// UpdateAnalysisNotes replaces the free-form notes on an analysis.
func (s *PostgresStore) UpdateAnalysisNotes(ctx context.Context, id, ownerID, notes string) error {
	tag, err := s.pool.Exec(ctx, queryUpdateAnalysisNotes, id, ownerID, notes)
	if err != nil {
		return fmt.Errorf("updating analysis notes: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAnalysis removes an analysis scoped to its owner.
func (s *PostgresStore) DeleteAnalysis(ctx context.Context, id, ownerID string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteAnalysis, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAnalysesForRescore pages through all analyses regardless of owner,
// oldest first, for background rescoring.
func (s *PostgresStore) ListAnalysesForRescore(
	ctx context.Context,
	batchSize, offset int,
) ([]domain.Analysis, error) {
	if batchSize <= 0 {
		batchSize = defaultLimit
	}

	rows, err := s.pool.Query(ctx, queryListAnalysesForRescore, batchSize, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("querying analyses for rescore: %w", err)
	}
	defer rows.Close()

	var analyses []domain.Analysis
	for rows.Next() {
		var a domain.Analysis
		if err := scanAnalysis(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, nil
}

// UpdateAnalysisScore overwrites the stored score and result after a
// rescore pass.
func (s *PostgresStore) UpdateAnalysisScore(
	ctx context.Context,
	id string,
	score int,
	rateTableVersion string,
	result json.RawMessage,
) error {
	tag, err := s.pool.Exec(ctx, queryUpdateAnalysisScore, id, score, rateTableVersion, result)
	if err != nil {
		return fmt.Errorf("updating analysis score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// scanAnalysis reads one analysis row. The inputs and result JSONB columns
// unmarshal into their typed structs.
func scanAnalysis(row pgx.Row, a *domain.Analysis) error {
	var inputs, result []byte

	err := row.Scan(
		&a.ID, &a.OwnerID, &a.Identifier, &a.Title, &a.Category,
		&a.Score, &a.RateTableVersion, &inputs, &result, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal(inputs, &a.Inputs); err != nil {
		return fmt.Errorf("unmarshaling inputs: %w", err)
	}
	if err := json.Unmarshal(result, &a.Result); err != nil {
		return fmt.Errorf("unmarshaling result: %w", err)
	}
	return nil
}
