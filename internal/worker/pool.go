package worker

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/DropLuck_Go/internal/domain"
)

// Pool runs a fixed set of workers until stopped.
type Pool struct {
	workers    []*Worker
	heartbeats chan Heartbeat
	quit       chan struct{}
	stopOnce   sync.Once
	done       chan struct{}

	outcomes []Outcome
	err      error
}

// NewPool creates a pool over workers. The heartbeat channel holds one
// pending report per worker.
func NewPool(workers []*Worker) *Pool {
	return &Pool{
		workers:    workers,
		heartbeats: make(chan Heartbeat, len(workers)),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
		outcomes:   make([]Outcome, len(workers)),
	}
}

// Heartbeats is the shared progress channel. It is never closed; use Done.
func (p *Pool) Heartbeats() <-chan Heartbeat {
	return p.heartbeats
}

// Done is closed once every worker has returned.
func (p *Pool) Done() <-chan struct{} {
	return p.done
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Start launches the workers. A failing worker stops the rest.
func (p *Pool) Start() {
	var g errgroup.Group
	for i, w := range p.workers {
		g.Go(func() error {
			out, err := w.Run(p.quit, p.heartbeats)
			if err != nil {
				slog.Error(LogMsgPoolWorkerError, "worker", w.ID(), "error", err)
				p.Stop()
				return err
			}
			p.outcomes[i] = out
			return nil
		})
	}

	go func() {
		p.err = g.Wait()
		close(p.done)
	}()
}

// Stop asks every worker to finish its current cycle and return. Safe to
// call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		slog.Debug(LogMsgPoolStopping, "workers", len(p.workers))
		close(p.quit)
	})
}

// Wait blocks until all workers have returned and gives back their outcomes
// in worker order. Any worker failure fails the whole pool.
func (p *Pool) Wait() ([]Outcome, error) {
	<-p.done
	if p.err != nil {
		return nil, p.err
	}
	return p.outcomes, nil
}

// Summaries concatenates every outcome's summaries in worker order.
func Summaries(outcomes []Outcome) []domain.StreamSummary {
	n := 0
	for _, o := range outcomes {
		n += len(o.Summaries)
	}
	all := make([]domain.StreamSummary, 0, n)
	for _, o := range outcomes {
		all = append(all, o.Summaries...)
	}
	return all
}

// Best picks the luckiest candidate across outcomes, nil if none scored.
func Best(outcomes []Outcome) *Candidate {
	var best *Candidate
	for _, o := range outcomes {
		if o.Best != nil && (best == nil || o.Best.Luck < best.Luck) {
			best = o.Best
		}
	}
	return best
}
