package main

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/report"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/stats"
)

// Built-in goals
const (
	defaultBarterRuns      = 17
	defaultPearlsPerRun    = 10
	defaultUntilRuns       = 22
	defaultUntilRodsPerRun = 7
	defaultBartersFileName = "barters.csv"
	defaultBlazesFileName  = "blazes.csv"
)

// defaultRodTargets is the per-run rod target of the built-in fights stream.
var defaultRodTargets = []int{6, 7, 8, 7, 8, 8, 5, 3, 1, 8, 8, 6, 8, 6, 3, 1, 7, 7, 7, 7, 7, 3, 8, 8, 6, 8, 7, 7, 7, 7, 7, 7, 8}

func barterGoals() simulation.Goals {
	return simulation.NewBuilder().
		AddRuns(defaultBarterRuns, domain.RunTarget{Ranged: defaultPearlsPerRun}).
		Goals()
}

func fightGoals() simulation.Goals {
	b := simulation.NewBuilder()
	for _, rods := range defaultRodTargets {
		b.AddRun(domain.RunTarget{Binary: rods})
	}
	return b.Goals()
}

// HistogramCommand simulates a fixed number of cycles and writes a
// frequency table of one observed draw total.
type HistogramCommand struct {
	cfg          *config.Config
	out          io.Writer
	name         string
	description  string
	kind         domain.HistogramKind
	fileName     string
	defaultGoals func() simulation.Goals
}

// NewBartersCommand builds the ender pearl barter histogram command.
func NewBartersCommand(cfg *config.Config, out io.Writer) *HistogramCommand {
	return &HistogramCommand{
		cfg:          cfg,
		out:          out,
		name:         "barters",
		description:  "Histogram of barters needed for 17 runs of 10 ender pearls",
		kind:         domain.HistogramRanged,
		fileName:     defaultBartersFileName,
		defaultGoals: barterGoals,
	}
}

// NewFightsCommand builds the blaze rod fight histogram command.
func NewFightsCommand(cfg *config.Config, out io.Writer) *HistogramCommand {
	return &HistogramCommand{
		cfg:          cfg,
		out:          out,
		name:         "fights",
		description:  "Histogram of blaze fights needed for the 33-run rod list",
		kind:         domain.HistogramBinary,
		fileName:     defaultBlazesFileName,
		defaultGoals: fightGoals,
	}
}

func (c *HistogramCommand) Name() string        { return c.name }
func (c *HistogramCommand) Description() string { return c.description }

func (c *HistogramCommand) Run(args []string) error {
	fs := newFlagSet(c.name, c.out)
	sf := bindSimFlags(fs, c.cfg)
	cycles := fs.Int64("cycles", c.cfg.Cycles, "cycles to simulate across all workers")
	output := fs.String("output", filepath.Join(c.cfg.OutputDir, c.fileName), "CSV output path")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	goals, err := sf.goals(c.defaultGoals())
	if err != nil {
		return err
	}

	ctx, stop := signalContext()
	defer stop()
	ctx = withRunID(ctx)

	a, err := newApp(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	opts, err := sf.options(c.cfg, a.reporter())
	if err != nil {
		return err
	}
	sim, err := simulation.New(goals, opts...)
	if err != nil {
		return err
	}

	PrintHeader(c.name)
	PrintInfo("Simulating %s cycles of %d stream(s) on %d workers",
		humanize.Comma(*cycles), len(goals.Streams), sim.Workers())

	started := time.Now()
	summaries, err := sim.RunForCycles(ctx, *cycles)
	if err != nil {
		return err
	}

	records, err := report.Histogram(c.kind, summaries, sim.Scorer())
	if err != nil {
		return err
	}
	if err := report.WriteCSVFile(*output, report.ObservedColumn(c.kind), records); err != nil {
		return err
	}
	PrintSuccess("Wrote %d rows from %s streams to %s", len(records), humanize.Comma(int64(len(summaries))), *output)

	best := luckiest(summaries, sim.Scorer())
	if best != nil {
		PrintInfo("Luckiest stream: %s", report.FormatLuck(best.Luck))
	}

	return c.persist(ctx, a, sim, started, summaries, records, best)
}

func (c *HistogramCommand) persist(ctx context.Context, a *app, sim *simulation.Simulation, started time.Time,
	summaries []domain.StreamSummary, records []domain.HistogramRecord, best *domain.ScoredSummary) error {
	run := newRun(ctx, domain.ModeCycles, c.kind, sim, started)
	run.Summaries = len(summaries)
	run.BestLuck = 1
	if best != nil {
		run.BestLuck = best.Luck
	}
	return a.record(ctx, run, records, best)
}

// luckiest scores every summary and returns the one with the lowest luck.
func luckiest(summaries []domain.StreamSummary, scorer stats.Scorer) *domain.ScoredSummary {
	var best *domain.ScoredSummary
	for _, s := range summaries {
		scored := scorer.Score(s)
		if best == nil || scored.Luck < best.Luck {
			best = &scored
		}
	}
	return best
}
