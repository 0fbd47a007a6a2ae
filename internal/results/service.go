// Package results records finished simulation runs in a result store.
package results

import (
	"context"
	"fmt"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/logger"
	"github.com/osse101/DropLuck_Go/internal/metrics"
	"github.com/osse101/DropLuck_Go/internal/repository"
)

// Log messages
const (
	LogMsgRunRecorded     = "Simulation run recorded"
	LogMsgRunRecordFailed = "Failed to record simulation run"
)

// Service handles result persistence
type Service interface {
	// Record stores a run with its histogram and best summary in one
	// transaction; either may be empty.
	Record(ctx context.Context, run *domain.SimulationRun, histogram []domain.HistogramRecord, best *domain.ScoredSummary) error
	GetRun(ctx context.Context, id string) (*domain.SimulationRun, error)
	GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error)
	GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error)
	ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error)
	Ping(ctx context.Context) error
}

type service struct {
	repo   repository.Results
	driver string
}

// NewService creates a result service over repo; driver labels metrics.
func NewService(repo repository.Results, driver string) Service {
	return &service{repo: repo, driver: driver}
}

func (s *service) Record(ctx context.Context, run *domain.SimulationRun, histogram []domain.HistogramRecord, best *domain.ScoredSummary) error {
	log := logger.FromContext(ctx)

	if err := s.repo.SaveResult(ctx, run, histogram, best); err != nil {
		metrics.ResultsPersistErrors.WithLabelValues(s.driver).Inc()
		log.Error(LogMsgRunRecordFailed, "run_id", run.ID, "driver", s.driver, "error", err)
		return fmt.Errorf("record run %s: %w", run.ID, err)
	}

	metrics.ResultsPersisted.WithLabelValues(s.driver).Inc()
	log.Info(LogMsgRunRecorded, "run_id", run.ID, "driver", s.driver, "histogram_rows", len(histogram))
	return nil
}

func (s *service) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	return s.repo.GetRun(ctx, id)
}

func (s *service) GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error) {
	return s.repo.GetHistogram(ctx, runID)
}

func (s *service) GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error) {
	return s.repo.GetBest(ctx, runID)
}

func (s *service) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	return s.repo.ListRuns(ctx, limit)
}

func (s *service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
