package simulation

import (
	"runtime"
	"time"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/stats"
	"github.com/osse101/DropLuck_Go/internal/worker"
)

// Options configures a Simulation.
type Options struct {
	Workers            int
	Seed               int64
	CheckpointInterval time.Duration
	PollInterval       time.Duration
	Ranged             worker.FarmSpec
	Binary             worker.FarmSpec
	Reporter           Reporter
	Solver             *stats.ExpectedDrawsSolver
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions farms ender pearls from bartering and blaze rods from
// blazes on one worker per CPU, seeded from the clock.
func DefaultOptions() Options {
	return Options{
		Workers:            runtime.NumCPU(),
		Seed:               time.Now().UnixNano(),
		CheckpointInterval: worker.DefaultCheckpointInterval,
		PollInterval:       DefaultPollInterval,
		Ranged:             worker.FarmSpec{Catalogue: catalogue.Barter(), Item: domain.ItemEnderPearl},
		Binary:             worker.FarmSpec{Catalogue: catalogue.Blaze(), Item: domain.ItemBlazeRod},
		Reporter:           nopReporter{},
	}
}

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSeed makes worker random sources reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithCheckpointInterval sets how often workers report.
func WithCheckpointInterval(d time.Duration) Option {
	return func(o *Options) { o.CheckpointInterval = d }
}

// WithPollInterval sets how often the coordinator reports progress.
func WithPollInterval(d time.Duration) Option {
	return func(o *Options) { o.PollInterval = d }
}

// WithRangedFarm replaces the ranged-count catalogue and item.
func WithRangedFarm(cat catalogue.Catalogue, item domain.Item) Option {
	return func(o *Options) { o.Ranged = worker.FarmSpec{Catalogue: cat, Item: item} }
}

// WithBinaryFarm replaces the binary catalogue and item.
func WithBinaryFarm(cat catalogue.Catalogue, item domain.Item) Option {
	return func(o *Options) { o.Binary = worker.FarmSpec{Catalogue: cat, Item: item} }
}

// WithReporter sets the progress reporter.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}

// WithSolver shares an expected-draws solver between simulations.
func WithSolver(s *stats.ExpectedDrawsSolver) Option {
	return func(o *Options) { o.Solver = s }
}
