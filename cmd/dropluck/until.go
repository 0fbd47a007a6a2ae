package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/report"
	"github.com/osse101/DropLuck_Go/internal/simulation"
)

// UntilCommand simulates streams until one is at least as lucky as p.
type UntilCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *UntilCommand) Name() string { return "until" }

func (c *UntilCommand) Description() string {
	return "Simulate streams until one is as lucky as the given p-value"
}

func (c *UntilCommand) Run(args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	sf := bindSimFlags(fs, c.cfg)
	p := fs.Float64("p", c.cfg.PValue, "target combined luck")
	runs := fs.Int("runs", defaultUntilRuns, "runs per stream for the built-in goals")
	pearls := fs.Int("pearls", defaultPearlsPerRun, "ender pearls per run for the built-in goals")
	rods := fs.Int("rods", defaultUntilRodsPerRun, "blaze rods per run for the built-in goals")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	def := simulation.NewBuilder().
		AddRuns(*runs, domain.RunTarget{Ranged: *pearls, Binary: *rods}).
		Goals()
	goals, err := sf.goals(def)
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

	PrintHeader(c.Name())
	PrintInfo("Searching for a stream with luck <= %s on %d workers", report.FormatLuck(*p), sim.Workers())

	started := time.Now()
	res, err := sim.RunUntil(ctx, *p)
	if err != nil {
		return err
	}

	s := res.Summary
	PrintSuccess("Found after %s streams: luck %s", humanize.Comma(res.Cycles*int64(len(goals.Streams))), report.FormatLuck(res.Luck))
	PrintInfo("%s %d over %d barters (%d successful), luck %s",
		itemLabel(domain.ItemEnderPearl, "collected"), s.RangedCollected, s.RangedDraws, s.RangedSuccesses,
		report.FormatLuck(res.Scorer.RangedLuck(s)))
	PrintInfo("%s %d over %d fights, luck %s",
		itemLabel(domain.ItemBlazeRod, "collected"), s.BinaryCollected, s.BinaryDraws,
		report.FormatLuck(res.Scorer.BinaryLuck(s)))
	PrintInfo("Probability: %g", res.Probability)

	run := newRun(ctx, domain.ModeUntil, "", sim, started)
	run.Summaries = int(res.Cycles) * len(goals.Streams)
	run.BestLuck = res.Luck
	return a.record(ctx, run, nil, &domain.ScoredSummary{Summary: s, Luck: res.Luck, Probability: res.Probability})
}
