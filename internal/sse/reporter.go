package sse

import (
	"context"

	"github.com/osse101/DropLuck_Go/internal/simulation"
)

// ProgressPayload is the body of every simulation.* event.
type ProgressPayload struct {
	RunID            string   `json:"run_id"`
	Mode             string   `json:"mode"`
	Workers          int      `json:"workers"`
	Cycles           int64    `json:"cycles"`
	StreamsSimulated int64    `json:"streams_simulated"`
	StreamsPerSecond float64  `json:"streams_per_second"`
	ElapsedSeconds   float64  `json:"elapsed_seconds"`
	Fraction         float64  `json:"fraction,omitempty"`
	Threshold        float64  `json:"threshold,omitempty"`
	BestLuck         *float64 `json:"best_luck,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// NewProgressPayload flattens a coordinator event.
func NewProgressPayload(ev simulation.Event) ProgressPayload {
	p := ProgressPayload{
		RunID:            ev.RunID,
		Mode:             ev.Mode,
		Workers:          ev.Workers,
		Cycles:           ev.Cycles,
		StreamsSimulated: ev.StreamsSimulated(),
		StreamsPerSecond: ev.Rate(),
		ElapsedSeconds:   ev.Elapsed.Seconds(),
		Fraction:         ev.Fraction(),
		Threshold:        ev.Threshold,
	}
	if ev.Best != nil {
		luck := ev.Best.Luck
		p.BestLuck = &luck
	}
	if ev.Err != nil {
		p.Error = ev.Err.Error()
	}
	return p
}

// Reporter broadcasts coordinator events on a hub.
type Reporter struct {
	hub *Hub
}

// NewReporter creates a reporter publishing to hub.
func NewReporter(hub *Hub) *Reporter {
	return &Reporter{hub: hub}
}

// Report implements simulation.Reporter.
func (r *Reporter) Report(_ context.Context, ev simulation.Event) {
	r.hub.Broadcast(EventType(ev.Kind), NewProgressPayload(ev))
}

// EventType maps a coordinator event kind to its SSE type.
func EventType(kind simulation.EventKind) string {
	switch kind {
	case simulation.EventStarted:
		return EventTypeSimulationStarted
	case simulation.EventNewBest:
		return EventTypeSimulationNewBest
	case simulation.EventCompleted:
		return EventTypeSimulationDone
	case simulation.EventFailed:
		return EventTypeSimulationFailed
	default:
		return EventTypeSimulationProgress
	}
}
