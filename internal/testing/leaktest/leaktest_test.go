package leaktest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() { defer wg.Done() }()
		}
		wg.Wait()
	})
}

func TestWaitFor_DetectsRunningGoroutine(t *testing.T) {
	checker := NewGoroutineChecker(t)

	release := make(chan struct{})
	go func() { <-release }()

	n, ok := waitFor(checker.before, 3*pollInterval)
	assert.False(t, ok)
	assert.Greater(t, n, checker.before)

	close(release)
	checker.Check(0)
}
