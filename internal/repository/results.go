package repository

import (
	"context"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// Results defines the interface for simulation result persistence
type Results interface {
	Ping(ctx context.Context) error
	// SaveResult upserts run metadata, replaces its histogram rows when
	// records is non-empty and stores best when non-nil, all in one
	// transaction. On error nothing is written.
	SaveResult(ctx context.Context, run *domain.SimulationRun, records []domain.HistogramRecord, best *domain.ScoredSummary) error
	GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
	GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error)
	GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error)
	ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error)
}
