// Package simulation coordinates concurrent workers that simulate drop
// streams, either for a fixed number of cycles or until a stream at least
// as lucky as a threshold is found.
package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/logger"
	"github.com/osse101/DropLuck_Go/internal/stats"
	"github.com/osse101/DropLuck_Go/internal/worker"
)

// Result is the luckiest stream found by RunUntil.
type Result struct {
	Summary     domain.StreamSummary
	Luck        float64
	Probability float64
	Cycles      int64
	Scorer      stats.Scorer
}

// Simulation is a single-use coordinator.
type Simulation struct {
	goals   Goals
	totals  Totals
	opts    Options
	scorer  stats.Scorer
	started atomic.Bool
}

// New validates goals and builds the probability models from their totals.
func New(goals Goals, opts ...Option) (*Simulation, error) {
	if err := goals.Validate(); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		return nil, fmt.Errorf(ErrFmtWorkers, domain.ErrInvalidWorkers, o.Workers)
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Solver == nil {
		solver, err := stats.NewExpectedDrawsSolver(stats.DefaultSolverCacheSize)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtSolverDefault, err)
		}
		o.Solver = solver
	}

	totals := goals.Totals()
	ranged, err := stats.NewRangedModel(o.Ranged.Catalogue, o.Ranged.Item, totals.Ranged, totals.RangedPerRun, o.Solver)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtRangedModel, err)
	}
	binary, err := stats.NewBinaryModel(o.Binary.Catalogue, o.Binary.Item, totals.Binary)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtBinaryModel, err)
	}

	return &Simulation{
		goals:  goals,
		totals: totals,
		opts:   o,
		scorer: stats.Scorer{Ranged: ranged, Binary: binary},
	}, nil
}

// Scorer returns the models built for these goals.
func (s *Simulation) Scorer() stats.Scorer {
	return s.scorer
}

// Goals returns the goals being simulated.
func (s *Simulation) Goals() Goals {
	return s.goals
}

// Totals returns the aggregate targets.
func (s *Simulation) Totals() Totals {
	return s.totals
}

// Workers is the configured worker count.
func (s *Simulation) Workers() int {
	return s.opts.Workers
}

// RunForCycles simulates until the workers have together completed at
// least n cycles and returns every summary produced, which is at least
// n*len(streams). Workers may overshoot by whatever they did since their
// last heartbeat.
func (s *Simulation) RunForCycles(ctx context.Context, n int64) ([]domain.StreamSummary, error) {
	if n <= 0 {
		return nil, fmt.Errorf(ErrFmtCycles, domain.ErrInvalidCycles, n)
	}
	if !s.started.CompareAndSwap(false, true) {
		return nil, domain.ErrAlreadyStarted
	}

	run, err := s.start(ctx, domain.ModeCycles, true)
	if err != nil {
		return nil, err
	}
	run.event.TargetCycles = n

	if err := run.loop(func() bool { return run.cycles() >= n }, LogMsgCycleTargetReached); err != nil {
		return nil, err
	}

	outcomes, err := run.finish()
	if err != nil {
		return nil, err
	}
	return worker.Summaries(outcomes), nil
}

// RunUntil simulates until some stream's combined luck is at or below p.
// The search is unbounded: a p that is effectively unreachable runs until
// ctx is cancelled.
func (s *Simulation) RunUntil(ctx context.Context, p float64) (Result, error) {
	if !(p > 0 && p <= 1) {
		return Result{}, fmt.Errorf(ErrFmtPValue, domain.ErrInvalidPValue, p)
	}
	if !s.started.CompareAndSwap(false, true) {
		return Result{}, domain.ErrAlreadyStarted
	}

	run, err := s.start(ctx, domain.ModeUntil, false)
	if err != nil {
		return Result{}, err
	}
	run.event.Threshold = p

	reached := func() bool { return run.best != nil && run.best.Luck <= p }
	if err := run.loop(reached, LogMsgThresholdReached); err != nil {
		return Result{}, err
	}

	if _, err := run.finish(); err != nil {
		return Result{}, err
	}

	best := run.best
	return Result{
		Summary:     best.Summary,
		Luck:        best.Luck,
		Probability: s.scorer.Probability(best.Summary),
		Cycles:      run.cycles(),
		Scorer:      s.scorer,
	}, nil
}

func (s *Simulation) start(ctx context.Context, mode string, collect bool) (*activeRun, error) {
	master := rand.New(rand.NewSource(s.opts.Seed))
	workers := make([]*worker.Worker, s.opts.Workers)
	for i := range workers {
		w, err := worker.New(worker.Config{
			ID:                 i,
			Streams:            s.goals.Streams,
			Ranged:             s.opts.Ranged,
			Binary:             s.opts.Binary,
			Scorer:             s.scorer,
			Seed:               master.Int63(),
			Collect:            collect,
			CheckpointInterval: s.opts.CheckpointInterval,
			Logger:             logger.FromContext(ctx),
		})
		if err != nil {
			return nil, fmt.Errorf(ErrFmtBuildWorker, i, err)
		}
		workers[i] = w
	}

	runID, ok := logger.RunIDFromContext(ctx)
	if !ok {
		runID = logger.GenerateRunID()
		ctx = logger.WithRunID(ctx, runID)
	}

	run := &activeRun{
		ctx:        ctx,
		pool:       worker.NewPool(workers),
		reporter:   s.opts.Reporter,
		poll:       s.opts.PollInterval,
		workerSeen: make([]int64, len(workers)),
		startedAt:  time.Now(),
		event: Event{
			RunID:       runID,
			Mode:        mode,
			Workers:     len(workers),
			StreamCount: len(s.goals.Streams),
		},
	}

	logger.FromContext(ctx).Info(LogMsgSimulationStarted,
		"mode", mode, "workers", len(workers), "streams", len(s.goals.Streams))
	run.pool.Start()
	run.emit(EventStarted, nil)
	return run, nil
}

// activeRun is the coordinator state of one run.
type activeRun struct {
	ctx      context.Context
	pool     *worker.Pool
	reporter Reporter
	poll     time.Duration

	workerSeen []int64
	best       *worker.Candidate
	startedAt  time.Time
	event      Event
}

func (r *activeRun) cycles() int64 {
	var total int64
	for _, c := range r.workerSeen {
		total += c
	}
	return total
}

func (r *activeRun) observe(hb worker.Heartbeat) {
	r.workerSeen[hb.WorkerID] = hb.Cycles
	if hb.Best != nil && (r.best == nil || hb.Best.Luck < r.best.Luck) {
		r.best = hb.Best
		r.emit(EventNewBest, nil)
	}
}

// loop drains heartbeats until done reports true, a worker fails or ctx ends.
func (r *activeRun) loop(done func() bool, reachedMsg string) error {
	log := logger.FromContext(r.ctx)
	ticker := time.NewTicker(r.poll)
	defer ticker.Stop()

	for {
		select {
		case hb := <-r.pool.Heartbeats():
			r.observe(hb)
		case <-ticker.C:
			r.emit(EventProgress, nil)
		case <-r.pool.Done():
			// Workers only exit on their own when one has failed.
			return nil
		case <-r.ctx.Done():
			r.pool.Stop()
			_, _ = r.pool.Wait()
			log.Warn(LogMsgSimulationCancelled, "cycles", r.cycles())
			r.emit(EventFailed, r.ctx.Err())
			return r.ctx.Err()
		}

		if done() {
			log.Info(reachedMsg, "cycles", r.cycles())
			return nil
		}
	}
}

// finish stops the workers, folds their final state in and reports completion.
func (r *activeRun) finish() ([]worker.Outcome, error) {
	log := logger.FromContext(r.ctx)
	r.pool.Stop()
	outcomes, err := r.pool.Wait()
	if err != nil {
		log.Error(LogMsgSimulationFailed, "error", err)
		r.emit(EventFailed, err)
		return nil, err
	}

	r.fold(outcomes)
	r.emit(EventCompleted, nil)
	log.Info(LogMsgSimulationCompleted, "cycles", r.cycles(), "elapsed", time.Since(r.startedAt))
	return outcomes, nil
}

// fold takes the workers' final cycle counts and keeps the luckier of the
// heartbeat best and the outcome best.
func (r *activeRun) fold(outcomes []worker.Outcome) {
	for _, o := range outcomes {
		r.workerSeen[o.WorkerID] = o.Cycles
	}
	if b := worker.Best(outcomes); b != nil && (r.best == nil || b.Luck < r.best.Luck) {
		r.best = b
	}
}

func (r *activeRun) emit(kind EventKind, err error) {
	ev := r.event
	ev.Kind = kind
	ev.Cycles = r.cycles()
	ev.Elapsed = time.Since(r.startedAt)
	ev.Err = err
	if r.best != nil {
		best := *r.best
		ev.Best = &best
	}
	r.reporter.Report(r.ctx, ev)
}
