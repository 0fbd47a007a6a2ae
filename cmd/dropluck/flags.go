package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/osse101/DropLuck_Go/internal/catalogue"
	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/logger"
	"github.com/osse101/DropLuck_Go/internal/simulation"
)

// simFlags are the flags shared by every simulating command.
type simFlags struct {
	workers     int
	seed        int64
	goalsFile   string
	rangedTable string
	binaryTable string
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func bindSimFlags(fs *flag.FlagSet, cfg *config.Config) *simFlags {
	f := &simFlags{}
	fs.IntVar(&f.workers, "workers", cfg.Workers, "number of concurrent workers")
	fs.Int64Var(&f.seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&f.goalsFile, "goals", cfg.GoalsFile, "YAML goals file replacing the built-in streams")
	fs.StringVar(&f.rangedTable, "ranged-table", catalogue.NameBarter, "preset name or YAML drop table for the ender pearl farm")
	fs.StringVar(&f.binaryTable, "binary-table", catalogue.NameBlaze, "preset name or YAML drop table for the blaze rod farm")
	return f
}

// goals loads the goals file when one was given, else returns def.
func (f *simFlags) goals(def simulation.Goals) (simulation.Goals, error) {
	if f.goalsFile == "" {
		return def, nil
	}
	return simulation.LoadGoals(f.goalsFile)
}

func (f *simFlags) options(cfg *config.Config, reporter simulation.Reporter) ([]simulation.Option, error) {
	ranged, err := loadTable(f.rangedTable)
	if err != nil {
		return nil, err
	}
	binary, err := loadTable(f.binaryTable)
	if err != nil {
		return nil, err
	}

	opts := cfg.SimulationOptions()
	opts = append(opts,
		simulation.WithWorkers(f.workers),
		simulation.WithReporter(reporter),
		simulation.WithRangedFarm(ranged, domain.ItemEnderPearl),
		simulation.WithBinaryFarm(binary, domain.ItemBlazeRod),
	)
	if f.seed != 0 {
		opts = append(opts, simulation.WithSeed(f.seed))
	}
	return opts, nil
}

// loadTable resolves a preset name, falling back to a YAML file path.
func loadTable(nameOrPath string) (catalogue.Catalogue, error) {
	if cat, ok := catalogue.Preset(nameOrPath); ok {
		return cat, nil
	}
	return catalogue.NewLoader().Load(nameOrPath)
}

// withRunID tags ctx with a fresh run ID.
func withRunID(ctx context.Context) context.Context {
	return logger.WithRunID(ctx, logger.GenerateRunID())
}

func runIDFrom(ctx context.Context) string {
	id, _ := logger.RunIDFromContext(ctx)
	return id
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return nil
}
