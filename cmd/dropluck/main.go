// Command dropluck simulates drop streams and scores how lucky observed
// ender pearl barters and blaze rod fights were.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DropLuck_Go/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		PrintError("%v", err)
		return 1
	}
	initLogger(cfg)

	registry := newRegistry(cfg)
	if len(args) < 1 {
		registry.PrintHelp(os.Stdout)
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError("unknown command %q", args[0])
		registry.PrintHelp(os.Stdout)
		return 1
	}

	if err := cmd.Run(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		PrintError("%s failed: %v", cmd.Name(), err)
		return 1
	}
	return 0
}

func newRegistry(cfg *config.Config) *Registry {
	r := NewRegistry()
	r.Register(NewBartersCommand(cfg, os.Stdout))
	r.Register(NewFightsCommand(cfg, os.Stdout))
	r.Register(&UntilCommand{cfg: cfg, out: os.Stdout})
	r.Register(&ScoreCommand{cfg: cfg, out: os.Stdout})
	r.Register(&RunsCommand{cfg: cfg, out: os.Stdout})
	return r
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
