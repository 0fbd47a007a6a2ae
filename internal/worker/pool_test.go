package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DropLuck_Go/internal/domain"
	"github.com/osse101/DropLuck_Go/internal/farm"
	"github.com/osse101/DropLuck_Go/internal/testing/leaktest"
)

func newTestPool(t *testing.T, n int) *Pool {
	t.Helper()
	workers := make([]*Worker, n)
	for i := range workers {
		w, err := New(testConfig(t, i, twoRunStream))
		require.NoError(t, err)
		workers[i] = w
	}
	return NewPool(workers)
}

func TestPool(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	pool := newTestPool(t, TestWorkerCount)
	pool.Start()

	seen := make(map[int]bool)
	deadline := time.After(TestWaitTimeout)
	for len(seen) < TestWorkerCount {
		select {
		case hb := <-pool.Heartbeats():
			seen[hb.WorkerID] = true
		case <-deadline:
			t.Fatalf("heartbeats from %d workers only", len(seen))
		}
	}

	pool.Stop()
	pool.Stop()

	outcomes, err := pool.Wait()
	require.NoError(t, err)
	require.Len(t, outcomes, TestWorkerCount)

	total := 0
	for i, o := range outcomes {
		assert.Equal(t, i, o.WorkerID)
		assert.Len(t, o.Summaries, int(o.Cycles))
		total += len(o.Summaries)
	}
	assert.Len(t, Summaries(outcomes), total)

	best := Best(outcomes)
	require.NotNil(t, best)
	for _, o := range outcomes {
		assert.LessOrEqual(t, best.Luck, o.Best.Luck)
	}
}

func TestPool_WorkerFailureFailsPool(t *testing.T) {
	pool := newTestPool(t, 3)
	pool.workers[1].farmers.Binary = farm.Farmer{Drawer: panicDrawer{}, Item: domain.ItemBlazeRod}
	pool.Start()

	select {
	case <-pool.Done():
	case <-time.After(TestWaitTimeout):
		t.Fatal("pool did not stop after worker failure")
	}

	outcomes, err := pool.Wait()
	assert.ErrorIs(t, err, domain.ErrWorkerFailed)
	assert.Nil(t, outcomes)
}

func TestBest_Empty(t *testing.T) {
	assert.Nil(t, Best(nil))
	assert.Nil(t, Best([]Outcome{{WorkerID: 0}}))
	assert.Empty(t, Summaries(nil))
}
