package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/DropLuck_Go/internal/config"
	"github.com/osse101/DropLuck_Go/internal/database"
	"github.com/osse101/DropLuck_Go/internal/database/postgres"
	"github.com/osse101/DropLuck_Go/internal/database/sqlite"
	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/metrics"
	"github.com/osse101/DropLuck_Go/internal/report"
	"github.com/osse101/DropLuck_Go/internal/results"
	"github.com/osse101/DropLuck_Go/internal/server"
	"github.com/osse101/DropLuck_Go/internal/simulation"
	"github.com/osse101/DropLuck_Go/internal/sse"
)

// app owns the optional collaborators of a command: result store, HTTP
// surface and progress reporters.
type app struct {
	cfg     *config.Config
	tracker *simulation.Tracker
	hub     *sse.Hub
	server  *server.Server
	results results.Service
	closers []func()
}

// newApp opens the configured store and, when HTTP_PORT is set, starts
// the progress server.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{cfg: cfg, tracker: simulation.NewTracker()}

	svc, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}
	a.results = svc

	if cfg.HTTPPort > 0 {
		a.hub = sse.NewHub()
		a.hub.Start()

		deps := server.Deps{Hub: a.hub, Progress: a.tracker}
		if svc != nil {
			deps.Runs = svc
			deps.Store = svc
		}
		a.server = server.NewServer(cfg.HTTPPort, deps)
		go func() {
			if err := a.server.Start(); err != nil {
				slog.Error("HTTP server stopped", "error", err)
			}
		}()
	}

	return a, nil
}

func openStore(ctx context.Context, cfg *config.Config) (results.Service, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigrateSQLite(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return results.NewService(sqlite.NewResultRepository(db), config.StoreSQLite), func() { db.Close() }, nil

	case config.StorePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.DefaultPoolOptions())
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return results.NewService(postgres.NewResultRepository(pool), config.StorePostgres), pool.Close, nil

	default:
		return nil, nil, nil
	}
}

// reporter fans coordinator events out to logs, metrics, the progress
// tracker and, when serving, SSE clients.
func (a *app) reporter() simulation.Reporter {
	reporters := simulation.MultiReporter{
		report.NewLogReporter(nil),
		metrics.NewReporter(),
		a.tracker,
	}
	if a.hub != nil {
		reporters = append(reporters, sse.NewReporter(a.hub))
	}
	return reporters
}

// record stores a finished run when a store is configured.
func (a *app) record(ctx context.Context, run *domain.SimulationRun, histogram []domain.HistogramRecord, best *domain.ScoredSummary) error {
	if a.results == nil {
		return nil
	}
	return a.results.Record(ctx, run, histogram, best)
}

// requireStore returns the result service or an error naming the setting.
func (a *app) requireStore() (results.Service, error) {
	if a.results == nil {
		return nil, fmt.Errorf("no result store configured: set %s to %s or %s",
			config.EnvStoreDriver, config.StoreSQLite, config.StorePostgres)
	}
	return a.results, nil
}

// Close stops the server and hub and closes the store.
func (a *app) Close() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownGracePeriod)
		if err := a.server.Stop(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("HTTP server shutdown failed", "error", err)
		}
		cancel()
	}
	if a.hub != nil {
		a.hub.Stop()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newRun fills the metadata shared by every persisted run.
func newRun(ctx context.Context, mode string, kind domain.HistogramKind, sim *simulation.Simulation, started time.Time) *domain.SimulationRun {
	runID := runIDFrom(ctx)
	totals := sim.Totals()
	return &domain.SimulationRun{
		ID:          runID,
		Mode:        mode,
		Kind:        kind,
		Workers:     sim.Workers(),
		Streams:     len(sim.Goals().Streams),
		Runs:        totals.Runs,
		StartedAt:   started,
		CompletedAt: time.Now(),
	}
}
