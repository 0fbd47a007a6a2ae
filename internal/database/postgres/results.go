package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/repository"
)

// ResultRepository implements repository.Results for PostgreSQL
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(pool *pgxpool.Pool) repository.Results {
	return &ResultRepository{pool: pool}
}

// Ping checks the connection
func (r *ResultRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// dbtx is satisfied by both the pool and a transaction
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// SaveResult stores a run, its histogram and its best summary atomically
func (r *ResultRepository) SaveResult(ctx context.Context, run *domain.SimulationRun, records []domain.HistogramRecord, best *domain.ScoredSummary) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := saveRun(ctx, tx, run); err != nil {
		return err
	}
	if len(records) > 0 {
		if err := replaceHistogram(ctx, tx, run.ID, records); err != nil {
			return err
		}
	}
	if best != nil {
		if err := saveBest(ctx, tx, run.ID, best); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, db dbtx, run *domain.SimulationRun) error {
	_, err := db.Exec(ctx, queryInsertRun,
		run.ID, run.Mode, string(run.Kind), run.Workers, run.Streams, run.Runs,
		run.Summaries, run.BestLuck, run.StartedAt, run.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

func replaceHistogram(ctx context.Context, db dbtx, runID string, records []domain.HistogramRecord) error {
	if _, err := db.Exec(ctx, queryDeleteHistogram, runID); err != nil {
		return fmt.Errorf("failed to clear histogram: %w", err)
	}

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(queryInsertHistogram, runID, rec.Observed, rec.Count, rec.Frequency, rec.EstimatedProbability)
	}
	if err := db.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert histogram: %w", err)
	}
	return nil
}

func saveBest(ctx context.Context, db dbtx, runID string, best *domain.ScoredSummary) error {
	summary, err := json.Marshal(best.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if _, err := db.Exec(ctx, queryUpsertBest, runID, summary, best.Luck, best.Probability); err != nil {
		return fmt.Errorf("failed to save best summary: %w", err)
	}
	return nil
}

// GetRun returns run metadata or domain.ErrRunNotFound
func (r *ResultRepository) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	run, err := scanRun(r.pool.QueryRow(ctx, querySelectRun, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// GetHistogram returns a run's histogram rows ordered by observed total
func (r *ResultRepository) GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error) {
	if err := r.ensureRun(ctx, runID); err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, querySelectHistogram, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query histogram: %w", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistogramRecord, error) {
		var rec domain.HistogramRecord
		err := row.Scan(&rec.Observed, &rec.Count, &rec.Frequency, &rec.EstimatedProbability)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan histogram: %w", err)
	}
	return records, nil
}

// GetBest returns the stored best summary of a run
func (r *ResultRepository) GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error) {
	var (
		raw  []byte
		best domain.ScoredSummary
	)
	err := r.pool.QueryRow(ctx, querySelectBest, runID).Scan(&raw, &best.Luck, &best.Probability)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get best summary: %w", err)
	}
	if err := json.Unmarshal(raw, &best.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &best, nil
}

// ListRuns returns the most recent runs first
func (r *ResultRepository) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	rows, err := r.pool.Query(ctx, queryListRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SimulationRun, error) {
		run, err := scanRun(row)
		if err != nil {
			return domain.SimulationRun{}, err
		}
		return *run, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan runs: %w", err)
	}
	return runs, nil
}

func (r *ResultRepository) ensureRun(ctx context.Context, runID string) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, queryRunExists, runID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check run: %w", err)
	}
	if !exists {
		return domain.ErrRunNotFound
	}
	return nil
}

func scanRun(row pgx.Row) (*domain.SimulationRun, error) {
	var (
		run  domain.SimulationRun
		kind string
	)
	err := row.Scan(&run.ID, &run.Mode, &kind, &run.Workers, &run.Streams, &run.Runs,
		&run.Summaries, &run.BestLuck, &run.StartedAt, &run.CompletedAt)
	if err != nil {
		return nil, err
	}
	run.Kind = domain.HistogramKind(kind)
	return &run, nil
}
