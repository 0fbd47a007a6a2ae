package domain

import "time"

// RunTarget is the minimum cumulative amount of each farmed item a run must collect.
// Ranged is the multi-count item (ender pearls); Binary is the zero-or-one item (blaze rods).
type RunTarget struct {
	Ranged int `json:"ranged" yaml:"ranged" validate:"min=0"`
	Binary int `json:"binary" yaml:"binary" validate:"min=0"`
}

// StreamSummary is the flat numeric digest of one simulated stream.
type StreamSummary struct {
	Runs int `json:"runs"`

	RangedDraws        int `json:"ranged_draws"`
	RangedSuccesses    int `json:"ranged_successes"`
	RangedCollected    int `json:"ranged_collected"`
	RangedTarget       int `json:"ranged_target"`
	RangedTargetPerRun int `json:"ranged_target_per_run"`

	BinaryDraws     int `json:"binary_draws"`
	BinarySuccesses int `json:"binary_successes"`
	BinaryCollected int `json:"binary_collected"`
	BinaryTarget    int `json:"binary_target"`
}

// ScoredSummary pairs a summary with its luck and point probability.
type ScoredSummary struct {
	Summary     StreamSummary `json:"summary"`
	Luck        float64       `json:"luck"`
	Probability float64       `json:"probability"`
}

// HistogramKind selects which observed total a histogram is keyed by.
type HistogramKind string

const (
	HistogramRanged HistogramKind = "ranged"
	HistogramBinary HistogramKind = "binary"
)

// HistogramRecord is one row of a frequency table over simulated streams.
type HistogramRecord struct {
	Observed             int     `json:"observed" db:"observed"`
	Count                int     `json:"count" db:"count"`
	Frequency            float64 `json:"frequency" db:"frequency"`
	EstimatedProbability float64 `json:"estimated_probability" db:"estimated_probability"`
}

// SimulationRun is the persisted metadata of one coordinator run.
type SimulationRun struct {
	ID          string        `json:"id" db:"id"`
	Mode        string        `json:"mode" db:"mode"`
	Kind        HistogramKind `json:"kind" db:"kind"`
	Workers     int           `json:"workers" db:"workers"`
	Streams     int           `json:"streams" db:"streams"`
	Runs        int           `json:"runs" db:"runs"`
	Summaries   int           `json:"summaries" db:"summaries"`
	BestLuck    float64       `json:"best_luck" db:"best_luck"`
	StartedAt   time.Time     `json:"started_at" db:"started_at"`
	CompletedAt time.Time     `json:"completed_at" db:"completed_at"`
}

// Simulation modes
const (
	ModeCycles = "cycles"
	ModeUntil  = "until"
	ModeScore  = "score"
)
