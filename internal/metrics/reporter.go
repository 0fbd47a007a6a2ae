package metrics

import (
	"context"

	"github.com/osse101/DropLuck_Go/internal/simulation"
)

// Reporter records coordinator events as Prometheus metrics.
type Reporter struct{}

// NewReporter creates a new metrics reporter
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report implements simulation.Reporter.
func (r *Reporter) Report(_ context.Context, ev simulation.Event) {
	mode := ev.Mode

	switch ev.Kind {
	case simulation.EventStarted:
		ActiveWorkers.Set(float64(ev.Workers))
		StreamsSimulated.WithLabelValues(mode).Set(0)
		BestLuck.WithLabelValues(mode).Set(1)
	case simulation.EventNewBest:
		LuckierStreams.WithLabelValues(mode).Inc()
	case simulation.EventCompleted:
		SimulationRuns.WithLabelValues(mode, OutcomeCompleted).Inc()
		SimulationDuration.WithLabelValues(mode).Observe(ev.Elapsed.Seconds())
		ActiveWorkers.Set(0)
	case simulation.EventFailed:
		SimulationRuns.WithLabelValues(mode, OutcomeFailed).Inc()
		ActiveWorkers.Set(0)
	}

	StreamsSimulated.WithLabelValues(mode).Set(float64(ev.StreamsSimulated()))
	SimulationRate.WithLabelValues(mode).Set(ev.Rate())
	if ev.Best != nil {
		BestLuck.WithLabelValues(mode).Set(ev.Best.Luck)
	}
}
