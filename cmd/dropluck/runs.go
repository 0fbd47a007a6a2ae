package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/report"
	"github.com/osse101/DropLuck_Go/internal/server"
)

// RunsCommand lists stored simulation runs.
type RunsCommand struct {
	cfg *config.Config
	out io.Writer
}

func (c *RunsCommand) Name() string        { return "runs" }
func (c *RunsCommand) Description() string { return "List simulation runs in the result store" }

func (c *RunsCommand) Run(args []string) error {
	fs := newFlagSet(c.Name(), c.out)
	limit := fs.Int("limit", server.DefaultRunsLimit, "maximum runs to list")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, c.cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	store, err := a.requireStore()
	if err != nil {
		return err
	}
	runs, err := store.ListRuns(ctx, *limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODE\tKIND\tSTREAMS\tBEST LUCK\tSTARTED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Mode, r.Kind, humanize.Comma(int64(r.Summaries)),
			report.FormatLuck(r.BestLuck), humanize.Time(r.StartedAt))
	}
	return tw.Flush()
}
