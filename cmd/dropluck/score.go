package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/report"
	"github.com/osse101/DropLuck_Go/internal/stats"
)

// Observed counts scored by default
const (
	defaultScorePearls    = defaultBarterRuns * defaultPearlsPerRun
	defaultScoreBarters   = 239
	defaultScoreSuccesses = 39
	defaultScoreRods      = 211
	defaultScoreFights    = 305
)

// ScoreCommand scores observed counts against the analytic models
// without simulating.
type ScoreCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *ScoreCommand) Name() string { return "score" }

func (c *ScoreCommand) Description() string {
	return "Score observed barter and fight counts without simulating"
}

func (c *ScoreCommand) Run(args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	pearls := fs.Int("pearls", defaultScorePearls, "ender pearls targeted over the stream")
	perRun := fs.Int("per-run", defaultPearlsPerRun, "ender pearls targeted per run")
	barters := fs.Int("barters", defaultScoreBarters, "barters made")
	successes := fs.Int("successes", defaultScoreSuccesses, "barters that dropped ender pearls")
	rods := fs.Int("rods", defaultScoreRods, "blaze rods targeted over the stream")
	fights := fs.Int("fights", defaultScoreFights, "blazes fought")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	scored, err := scoreCounts(*pearls, *perRun, *barters, *successes, *rods, *fights)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, scoreLineFmt, itemLabel(domain.ItemEnderPearl, "luck"), report.FormatLuck(scored.ranged))
	fmt.Fprintf(c.out, scoreLineFmt, itemLabel(domain.ItemBlazeRod, "luck"), report.FormatLuck(scored.binary))
	fmt.Fprintf(c.out, scoreLineFmt, "luck:", report.FormatLuck(scored.Luck))
	fmt.Fprintf(c.out, scoreLineFmt, "probability:", fmt.Sprintf("%g", scored.Probability))

	if c.cfg.StoreDriver == config.StoreNone {
		return nil
	}

	ctx := withRunID(context.Background())
	a, err := newApp(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	now := time.Now()
	run := &domain.SimulationRun{
		ID:          runIDFrom(ctx),
		Mode:        domain.ModeScore,
		Streams:     1,
		Summaries:   1,
		BestLuck:    scored.Luck,
		StartedAt:   now,
		CompletedAt: now,
	}
	return a.record(ctx, run, nil, &scored.ScoredSummary)
}

const scoreLineFmt = "%-18s%s\n"

// itemLabel renders "<Display Name> <what>:" for output lines.
func itemLabel(item domain.Item, what string) string {
	return item.DisplayName() + " " + what + ":"
}

type scoredCounts struct {
	domain.ScoredSummary
	ranged float64
	binary float64
}

func scoreCounts(pearls, perRun, barters, successes, rods, fights int) (scoredCounts, error) {
	solver, err := stats.NewExpectedDrawsSolver(stats.DefaultSolverCacheSize)
	if err != nil {
		return scoredCounts{}, err
	}
	scorer, err := stats.SpeedrunScorer(pearls, perRun, rods, solver)
	if err != nil {
		return scoredCounts{}, err
	}

	summary := domain.StreamSummary{
		RangedDraws:        barters,
		RangedSuccesses:    successes,
		RangedTarget:       pearls,
		RangedTargetPerRun: perRun,
		BinaryDraws:        fights,
		BinarySuccesses:    rods,
		BinaryTarget:       rods,
	}
	return scoredCounts{
		ScoredSummary: scorer.Score(summary),
		ranged:        scorer.RangedLuck(summary),
		binary:        scorer.BinaryLuck(summary),
	}, nil
}
