// Package worker runs independent simulation loops and reports their
// progress on a shared heartbeat channel.
package worker

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/drop"
	"github.com/osse101/DropLuck_Go/internal/farm"
	"github.com/osse101/DropLuck_Go/internal/stats"
)

// Candidate is a scored stream summary.
type Candidate struct {
	Summary domain.StreamSummary
	Luck    float64
}

// Heartbeat is a worker's periodic progress report. Best is nil until the
// worker has scored at least one stream.
type Heartbeat struct {
	WorkerID int
	Cycles   int64
	Best     *Candidate
}

// FarmSpec names the catalogue and item one side of a run is farmed from.
type FarmSpec struct {
	Catalogue catalogue.Catalogue
	Item      domain.Item
}

// Config describes one worker.
type Config struct {
	ID      int
	Streams [][]domain.RunTarget
	Ranged  FarmSpec
	Binary  FarmSpec
	Scorer  stats.Scorer
	Seed    int64

	// Collect keeps every simulated summary for the final result.
	Collect bool

	CheckpointInterval time.Duration
	Logger             *slog.Logger
}

// Outcome is what a worker hands back when it stops.
type Outcome struct {
	WorkerID  int
	Cycles    int64
	Summaries []domain.StreamSummary
	Best      *Candidate
}

// Worker simulates every stream once per cycle, forever, until stopped.
// All state is private to the worker; only heartbeats leave it.
type Worker struct {
	id       int
	streams  [][]domain.RunTarget
	farmers  farm.Farmers
	scorer   stats.Scorer
	collect  bool
	interval time.Duration
	log      *slog.Logger

	cycles    int64
	summaries []domain.StreamSummary

	best           *Candidate
	bestLuck       float64
	bestRangedRaw  int
	bestBinaryRaw  int
	lastCheckpoint time.Time
}

// New builds a worker with its own seeded random sources.
func New(cfg Config) (*Worker, error) {
	ranged, err := drop.NewSampler(cfg.Ranged.Catalogue, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtWorkerSampler, cfg.ID, "ranged", err)
	}
	binary, err := drop.NewSampler(cfg.Binary.Catalogue, rand.New(rand.NewSource(cfg.Seed^0x5deece66d)))
	if err != nil {
		return nil, fmt.Errorf(ErrFmtWorkerSampler, cfg.ID, "binary", err)
	}

	interval := cfg.CheckpointInterval
	if interval <= 0 {
		interval = DefaultCheckpointInterval
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Worker{
		id:      cfg.ID,
		streams: cfg.Streams,
		farmers: farm.Farmers{
			Ranged: farm.Farmer{Drawer: ranged, Item: cfg.Ranged.Item},
			Binary: farm.Farmer{Drawer: binary, Item: cfg.Binary.Item},
		},
		scorer:        cfg.Scorer,
		collect:       cfg.Collect,
		interval:      interval,
		log:           log.With("worker", cfg.ID),
		bestLuck:      math.Inf(1),
		bestRangedRaw: math.MaxInt,
		bestBinaryRaw: math.MaxInt,
	}, nil
}

// ID returns the worker's index.
func (w *Worker) ID() int {
	return w.id
}

// Run loops until stop is closed. The stop signal is honoured between cycles,
// so one full pass over the streams always completes. A panic inside the
// loop is returned as domain.ErrWorkerFailed.
func (w *Worker) Run(stop <-chan struct{}, heartbeats chan<- Heartbeat) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error(LogMsgWorkerPanicked, "panic", r)
			err = fmt.Errorf(ErrFmtWorkerPanic, domain.ErrWorkerFailed, w.id, r)
		}
	}()

	w.log.Debug(LogMsgWorkerStarted, "streams", len(w.streams))
	w.lastCheckpoint = time.Now()

	for {
		select {
		case <-stop:
			w.log.Debug(LogMsgWorkerStopped, "cycles", w.cycles)
			return w.outcome(), nil
		default:
		}

		w.cycle()

		if time.Since(w.lastCheckpoint) < w.interval {
			continue
		}
		select {
		case heartbeats <- w.heartbeat():
			w.lastCheckpoint = time.Now()
		case <-stop:
			w.log.Debug(LogMsgWorkerStopped, "cycles", w.cycles)
			return w.outcome(), nil
		}
	}
}

// cycle simulates every stream once.
func (w *Worker) cycle() {
	for _, targets := range w.streams {
		s := farm.SimulateSummary(w.farmers, targets)
		if w.collect {
			w.summaries = append(w.summaries, s)
		}
		w.consider(s)
	}
	w.cycles++
}

// consider scores s only when one of its raw draw totals beats the current
// best's. Cheap, but it can miss a stream whose combined luck is lower while
// neither raw total is.
func (w *Worker) consider(s domain.StreamSummary) {
	if s.RangedDraws >= w.bestRangedRaw && s.BinaryDraws >= w.bestBinaryRaw {
		return
	}
	luck := w.scorer.Luck(s)
	if luck >= w.bestLuck {
		return
	}
	w.bestLuck = luck
	w.bestRangedRaw = s.RangedDraws
	w.bestBinaryRaw = s.BinaryDraws
	w.best = &Candidate{Summary: s, Luck: luck}
	w.log.Debug(LogMsgWorkerNewBest, "luck", luck, "ranged_draws", s.RangedDraws, "binary_draws", s.BinaryDraws)
}

func (w *Worker) heartbeat() Heartbeat {
	hb := Heartbeat{WorkerID: w.id, Cycles: w.cycles}
	if w.best != nil {
		best := *w.best
		hb.Best = &best
	}
	return hb
}

func (w *Worker) outcome() Outcome {
	hb := w.heartbeat()
	return Outcome{
		WorkerID:  w.id,
		Cycles:    w.cycles,
		Summaries: w.summaries,
		Best:      hb.Best,
	}
}
