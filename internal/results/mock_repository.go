package results

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// MockRepository is a mock implementation of repository.Results
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepository) SaveResult(ctx context.Context, run *domain.SimulationRun, records []domain.HistogramRecord, best *domain.ScoredSummary) error {
	return m.Called(ctx, run, records, best).Error(0)
}

func (m *MockRepository) GetRun(ctx context.Context, id string) (*domain.SimulationRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SimulationRun), args.Error(1)
}

func (m *MockRepository) GetHistogram(ctx context.Context, runID string) ([]domain.HistogramRecord, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistogramRecord), args.Error(1)
}

func (m *MockRepository) GetBest(ctx context.Context, runID string) (*domain.ScoredSummary, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoredSummary), args.Error(1)
}

func (m *MockRepository) ListRuns(ctx context.Context, limit int) ([]domain.SimulationRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SimulationRun), args.Error(1)
}
