// Package report turns simulated summaries into frequency tables, CSV files
// and human-readable progress lines.
package report

import (
	"fmt"
	"sort"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/stats"
)

// Histogram counts summaries by their observed ranged or binary draw total.
// Each row's estimated probability is the model's point probability for the
// first summary seen with that total. Rows are sorted by observed total.
func Histogram(kind domain.HistogramKind, summaries []domain.StreamSummary, scorer stats.Scorer) ([]domain.HistogramRecord, error) {
	if len(summaries) == 0 {
		return nil, domain.ErrNoSummaries
	}

	var key func(domain.StreamSummary) int
	var estimate func(domain.StreamSummary) float64
	switch kind {
	case domain.HistogramRanged:
		key = func(s domain.StreamSummary) int { return s.RangedDraws }
		estimate = scorer.RangedProbability
	case domain.HistogramBinary:
		key = func(s domain.StreamSummary) int { return s.BinaryDraws }
		estimate = scorer.BinaryProbability
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}

	rows := make(map[int]*domain.HistogramRecord)
	for _, s := range summaries {
		k := key(s)
		if row, ok := rows[k]; ok {
			row.Count++
			continue
		}
		rows[k] = &domain.HistogramRecord{Observed: k, Count: 1, EstimatedProbability: estimate(s)}
	}

	records := make([]domain.HistogramRecord, 0, len(rows))
	total := float64(len(summaries))
	for _, row := range rows {
		row.Frequency = float64(row.Count) / total
		records = append(records, *row)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Observed < records[j].Observed })
	return records, nil
}

// ObservedColumn is the CSV header used for kind.
func ObservedColumn(kind domain.HistogramKind) string {
	if kind == domain.HistogramBinary {
		return ColumnBlazes
	}
	return ColumnBarters
}
