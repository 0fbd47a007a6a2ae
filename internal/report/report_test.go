package report

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/stats"
	"github.com/osse101/DropLuck_Go/internal/worker"
)

func scorer(t *testing.T) stats.Scorer {
	t.Helper()
	sc, err := stats.SpeedrunScorer(10, 10, 7, stats.MustExpectedDrawsSolver())
	require.NoError(t, err)
	return sc
}

func sample(ranged, successes, binary int) domain.StreamSummary {
	return domain.StreamSummary{
		Runs: 1, RangedDraws: ranged, RangedSuccesses: successes, RangedTarget: 10, RangedTargetPerRun: 10,
		BinaryDraws: binary, BinarySuccesses: binary, BinaryTarget: 7,
	}
}

func TestHistogram_Ranged(t *testing.T) {
	sc := scorer(t)
	summaries := []domain.StreamSummary{sample(40, 2, 14), sample(12, 2, 9), sample(40, 3, 14), sample(40, 2, 15)}

	records, err := Histogram(domain.HistogramRanged, summaries, sc)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 12, records[0].Observed)
	assert.Equal(t, 1, records[0].Count)
	assert.InDelta(t, 0.25, records[0].Frequency, 1e-12)

	assert.Equal(t, 40, records[1].Observed)
	assert.Equal(t, 3, records[1].Count)
	assert.InDelta(t, 0.75, records[1].Frequency, 1e-12)
	// Estimated from the first summary with 40 draws (2 successes).
	assert.Equal(t, sc.RangedProbability(summaries[0]), records[1].EstimatedProbability)
}

func TestHistogram_Binary(t *testing.T) {
	sc := scorer(t)
	summaries := []domain.StreamSummary{sample(40, 2, 14), sample(12, 2, 9), sample(40, 3, 14)}

	records, err := Histogram(domain.HistogramBinary, summaries, sc)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 9, records[0].Observed)
	assert.Equal(t, 14, records[1].Observed)
	assert.Equal(t, 2, records[1].Count)
	assert.InDelta(t, sc.Binary.Probability(14), records[1].EstimatedProbability, 1e-15)

	sum := 0.0
	for _, r := range records {
		sum += r.Frequency
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestHistogram_Errors(t *testing.T) {
	_, err := Histogram(domain.HistogramRanged, nil, scorer(t))
	assert.ErrorIs(t, err, domain.ErrNoSummaries)

	_, err = Histogram("other", []domain.StreamSummary{sample(1, 1, 7)}, scorer(t))
	assert.ErrorIs(t, err, domain.ErrUnsupportedKind)
}

func TestWriteCSV(t *testing.T) {
	records := []domain.HistogramRecord{
		{Observed: 12, Count: 1, Frequency: 0.25, EstimatedProbability: 0.001},
		{Observed: 40, Count: 3, Frequency: 0.75, EstimatedProbability: 0.02},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ColumnBarters, records))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "barters,count,frequency,estimated_probability", lines[0])
	assert.Equal(t, "12,1,0.25,0.001", lines[1])
	assert.Equal(t, "40,3,0.75,0.02", lines[2])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "blazes.csv")
	require.NoError(t, WriteCSVFile(path, ObservedColumn(domain.HistogramBinary), []domain.HistogramRecord{{Observed: 7, Count: 1, Frequency: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "blazes,count"))
	assert.Equal(t, ColumnBarters, ObservedColumn(domain.HistogramRanged))
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := context.Background()
	r.Report(ctx, simulation.Event{Kind: simulation.EventStarted, Mode: domain.ModeCycles, Workers: 4, StreamCount: 1})
	r.Report(ctx, simulation.Event{
		Kind: simulation.EventProgress, StreamCount: 1, Cycles: 1234567, TargetCycles: 2469134,
		Elapsed: 10 * time.Second, Best: &worker.Candidate{Luck: 0.001},
	})

	out := buf.String()
	assert.Contains(t, out, LogMsgStarted)
	assert.Contains(t, out, "simulated=1,234,567")
	assert.Contains(t, out, "complete=50.00%")
	assert.Contains(t, out, "1 in 1,000")
}

func TestFormatLuck(t *testing.T) {
	assert.Equal(t, "0.5 (1 in 2)", FormatLuck(0.5))
	assert.Equal(t, "0", FormatLuck(0))
}
