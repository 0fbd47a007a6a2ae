package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/repository"
)

// ResultRepository implements repository.Results on a SQLite database
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *sql.DB) repository.Results {
	return &ResultRepository{db: db}
}

// Ping checks the connection
func (r *ResultRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dbtx is satisfied by both *sql.DB and *sql.Tx
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// SaveResult stores a run, its histogram and its best summary atomically
func (r *ResultRepository) SaveResult(ctx context.Context, run *domain.SimulationRun, records []domain.HistogramRecord, best *domain.ScoredSummary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

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

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit result: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, db dbtx, run *domain.SimulationRun) error {
	_, err := db.ExecContext(ctx, queryInsertRun,
		run.ID, run.Mode, string(run.Kind), run.Workers, run.Streams, run.Runs,
		run.Summaries, run.BestLuck, formatTime(run.StartedAt), formatTime(run.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

func replaceHistogram(ctx context.Context, db dbtx, runID string, records []domain.HistogramRecord) error {
	if _, err := db.ExecContext(ctx, queryDeleteHistogram, runID); err != nil {
		return fmt.Errorf("failed to clear histogram: %w", err)
	}

	stmt, err := db.PrepareContext(ctx, queryInsertHistogram)
	if err != nil {
		return fmt.Errorf("failed to prepare histogram insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, runID, rec.Observed, rec.Count, rec.Frequency, rec.EstimatedProbability); err != nil {
			return fmt.Errorf("failed to insert histogram row %d: %w", rec.Observed, err)
		}
	}
	return nil
}

func saveBest(ctx context.Context, db dbtx, runID string, best *domain.ScoredSummary) error {
	summary, err := json.Marshal(best.Summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if _, err := db.ExecContext(ctx, queryUpsertBest, runID, string(summary), best.Luck, best.Probability); err != nil {
		return fmt.Errorf("failed to save best summary: %w", err)
	}
	return nil
}

// GetRun returns run metadata or domain.ErrRunNotFound
func (r *ResultRepository) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	run, err := scanRun(r.db.QueryRowContext(ctx, querySelectRun, id))
	if errors.Is(err, sql.ErrNoRows) {
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

	rows, err := r.db.QueryContext(ctx, querySelectHistogram, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query histogram: %w", err)
	}
	defer rows.Close()

	records := []domain.HistogramRecord{}
	for rows.Next() {
		var rec domain.HistogramRecord
		if err := rows.Scan(&rec.Observed, &rec.Count, &rec.Frequency, &rec.EstimatedProbability); err != nil {
			return nil, fmt.Errorf("failed to scan histogram: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetBest returns the stored best summary of a run
func (r *ResultRepository) GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error) {
	var (
		raw  string
		best domain.ScoredSummary
	)
	err := r.db.QueryRowContext(ctx, querySelectBest, runID).Scan(&raw, &best.Luck, &best.Probability)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get best summary: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &best.Summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &best, nil
}

// ListRuns returns the most recent runs first
func (r *ResultRepository) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	rows, err := r.db.QueryContext(ctx, queryListRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.SimulationRun{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (r *ResultRepository) ensureRun(ctx context.Context, runID string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, queryRunExists, runID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check run: %w", err)
	}
	if !exists {
		return domain.ErrRunNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (*domain.SimulationRun, error) {
	var (
		run                      domain.SimulationRun
		kind, started, completed string
	)
	err := row.Scan(&run.ID, &run.Mode, &kind, &run.Workers, &run.Streams, &run.Runs,
		&run.Summaries, &run.BestLuck, &started, &completed)
	if err != nil {
		return nil, err
	}
	run.Kind = domain.HistogramKind(kind)
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return nil, fmt.Errorf("invalid started_at %q: %w", started, err)
	}
	if run.CompletedAt, err = time.Parse(timeLayout, completed); err != nil {
		return nil, fmt.Errorf("invalid completed_at %q: %w", completed, err)
	}
	return &run, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
