package worker

import "time"

// ============================================================================
// Log Messages - Simulation Workers
// ============================================================================

const (
	LogMsgWorkerStarted   = "Simulation worker started"
	LogMsgWorkerStopped   = "Simulation worker stopped"
	LogMsgWorkerPanicked  = "Simulation worker panicked"
	LogMsgWorkerNewBest   = "Simulation worker found luckier stream"
	LogMsgPoolStopping    = "Stopping simulation workers"
	LogMsgPoolWorkerError = "Simulation worker returned error"
)

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultCheckpointInterval is how often a worker reports progress.
	DefaultCheckpointInterval = 2 * time.Second
)

// ============================================================================
// Error formats
// ============================================================================

const (
	ErrFmtWorkerPanic   = "%w: worker %d: %v"
	ErrFmtWorkerSampler = "worker %d %s sampler: %w"
)

// ============================================================================
// Test Configuration
// ============================================================================

const (
	TestCheckpointInterval = 10 * time.Millisecond
	TestWaitTimeout        = 5 * time.Second
	TestWorkerCount        = 4
)
