package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/DropLuck_Go/internal/worker"
)

// Event is a coordinator progress report.
type Event struct {
	Kind  EventKind
	RunID string
	Mode  string

	Workers      int
	StreamCount  int
	Cycles       int64
	TargetCycles int64   // zero for run-until
	Threshold    float64 // zero for run-for-cycles

	Elapsed time.Duration
	Best    *worker.Candidate
	Err     error
}

// StreamsSimulated is the number of stream summaries produced so far.
func (e Event) StreamsSimulated() int64 {
	return e.Cycles * int64(e.StreamCount)
}

// Rate is streams simulated per second.
func (e Event) Rate() float64 {
	secs := e.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(e.StreamsSimulated()) / secs
}

// Fraction is the completed share of a cycle-bounded run, 0 when unbounded.
func (e Event) Fraction() float64 {
	if e.TargetCycles <= 0 {
		return 0
	}
	f := float64(e.Cycles) / float64(e.TargetCycles)
	if f > 1 {
		return 1
	}
	return f
}

// Remaining estimates time left for a cycle-bounded run.
func (e Event) Remaining() time.Duration {
	f := e.Fraction()
	if f <= 0 || f >= 1 {
		return 0
	}
	return time.Duration(float64(e.Elapsed) * (1 - f) / f)
}

// Reporter receives coordinator events. Implementations must not block.
type Reporter interface {
	Report(ctx context.Context, ev Event)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(ctx context.Context, ev Event)

// Report calls f.
func (f ReporterFunc) Report(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// MultiReporter fans events out in order.
type MultiReporter []Reporter

// Report forwards ev to every reporter.
func (m MultiReporter) Report(ctx context.Context, ev Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, ev)
		}
	}
}

// Tracker remembers the latest event, for polling readers such as the
// progress endpoint.
type Tracker struct {
	mu     sync.RWMutex
	latest *Event
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Report stores ev.
func (t *Tracker) Report(_ context.Context, ev Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latest = &ev
}

// Latest returns the most recent event, if any.
func (t *Tracker) Latest() (Event, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.latest == nil {
		return Event{}, false
	}
	return *t.latest, true
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, Event) {}
