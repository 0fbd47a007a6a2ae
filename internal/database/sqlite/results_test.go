package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/database"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/repository"
)

func newTestRepo(t *testing.T) repository.Results {
	t.Helper()
	ctx := context.Background()

	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.MigrateSQLite(ctx, db))
	// Migrating twice is a no-op.
	require.NoError(t, database.MigrateSQLite(ctx, db))

	return NewResultRepository(db)
}

func testRun(id string, started time.Time) *domain.SimulationRun {
	return &domain.SimulationRun{
		ID:          id,
		Mode:        domain.ModeCycles,
		Kind:        domain.HistogramRanged,
		Workers:     4,
		Streams:     1,
		Runs:        17,
		Summaries:   1000,
		BestLuck:    0.0125,
		StartedAt:   started,
		CompletedAt: started.Add(3 * time.Second),
	}
}

func TestResultRepository_RunRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	started := time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC)

	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.SaveResult(ctx, testRun("run-1", started), nil, nil))

	got, err := repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.HistogramRanged, got.Kind)
	assert.Equal(t, 1000, got.Summaries)
	assert.InDelta(t, 0.0125, got.BestLuck, 1e-15)
	assert.True(t, started.Equal(got.StartedAt))
	assert.True(t, started.Add(3*time.Second).Equal(got.CompletedAt))

	// Saving again updates the completion fields.
	updated := testRun("run-1", started)
	updated.Summaries = 2000
	updated.BestLuck = 0.001
	require.NoError(t, repo.SaveResult(ctx, updated, nil, nil))

	got, err = repo.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2000, got.Summaries)
	assert.InDelta(t, 0.001, got.BestLuck, 1e-15)

	_, err = repo.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestResultRepository_Histogram(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	run := testRun("run-1", time.Now())

	first := []domain.HistogramRecord{
		{Observed: 30, Count: 2, Frequency: 0.2, EstimatedProbability: 0.18},
		{Observed: 12, Count: 8, Frequency: 0.8, EstimatedProbability: 0.75},
	}
	require.NoError(t, repo.SaveResult(ctx, run, first, nil))

	got, err := repo.GetHistogram(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 12, got[0].Observed)
	assert.Equal(t, 30, got[1].Observed)

	// A second save replaces the rows.
	second := []domain.HistogramRecord{{Observed: 5, Count: 1, Frequency: 1, EstimatedProbability: 0.5}}
	require.NoError(t, repo.SaveResult(ctx, run, second, nil))
	got, err = repo.GetHistogram(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	// Saving without records leaves the stored rows alone.
	require.NoError(t, repo.SaveResult(ctx, run, nil, nil))
	got, err = repo.GetHistogram(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, second, got)

	_, err = repo.GetHistogram(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestResultRepository_Best(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	best := &domain.ScoredSummary{
		Summary: domain.StreamSummary{
			Runs:            22,
			RangedDraws:     937,
			RangedSuccesses: 4,
			RangedCollected: 221,
			RangedTarget:    220,
			BinaryDraws:     308,
			BinaryCollected: 154,
			BinaryTarget:    154,
		},
		Luck:        0.26221587,
		Probability: 6.45e-5,
	}
	require.NoError(t, repo.SaveResult(ctx, testRun("run-1", time.Now()), nil, best))

	got, err := repo.GetBest(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, best, got)

	_, err = repo.GetBest(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestResultRepository_SaveResultIsAtomic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	best := &domain.ScoredSummary{Summary: domain.StreamSummary{Runs: 1}, Luck: 0.5, Probability: 0.1}

	// Duplicate observed totals violate the histogram primary key.
	dup := []domain.HistogramRecord{
		{Observed: 7, Count: 1, Frequency: 0.5},
		{Observed: 7, Count: 1, Frequency: 0.5},
	}
	require.Error(t, repo.SaveResult(ctx, testRun("run-1", time.Now()), dup, best))

	_, err := repo.GetRun(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
	_, err = repo.GetBest(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestResultRepository_ListRuns(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.SaveResult(ctx, testRun(id, base.Add(time.Duration(i)*time.Hour)), nil, nil))
	}

	runs, err := repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)

	empty := newTestRepo(t)
	runs, err = empty.ListRuns(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
