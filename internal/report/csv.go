package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// WriteCSV writes records with a header row; observedColumn names the first column.
func WriteCSV(w io.Writer, observedColumn string, records []domain.HistogramRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{observedColumn, ColumnCount, ColumnFrequency, ColumnEstimatedProbability}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Observed),
			strconv.Itoa(r.Count),
			strconv.FormatFloat(r.Frequency, 'g', floatFormatPrecision, 64),
			strconv.FormatFloat(r.EstimatedProbability, 'g', floatFormatPrecision, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.Observed, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile creates path (and its directory) and writes records to it.
func WriteCSVFile(path, observedColumn string, records []domain.HistogramRecord) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteCSV(f, observedColumn, records)
}
