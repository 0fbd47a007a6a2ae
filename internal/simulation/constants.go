package simulation

import "time"

// ============================================================================
// Defaults
// ============================================================================

const (
	// DefaultPollInterval is how often the coordinator wakes to report progress.
	DefaultPollInterval = 5 * time.Second
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSimulationStarted   = "Simulation started"
	LogMsgSimulationCompleted = "Simulation completed"
	LogMsgSimulationFailed    = "Simulation failed"
	LogMsgSimulationCancelled = "Simulation cancelled"
	LogMsgThresholdReached    = "Luck threshold reached"
	LogMsgCycleTargetReached  = "Cycle target reached"
)

// ============================================================================
// Event kinds
// ============================================================================

// EventKind tags a progress event.
type EventKind string

const (
	EventStarted   EventKind = "started"
	EventProgress  EventKind = "progress"
	EventNewBest   EventKind = "new_best"
	EventCompleted EventKind = "completed"
	EventFailed    EventKind = "failed"
)

// ============================================================================
// Error formats
// ============================================================================

const (
	ErrFmtNoStreams     = "%w: no streams"
	ErrFmtEmptyStream   = "%w: stream %d has no runs"
	ErrFmtRunTarget     = "%w: stream %d run %d: %s"
	ErrFmtWorkers       = "%w: %d"
	ErrFmtPValue        = "%w: %v"
	ErrFmtCycles        = "%w: %d"
	ErrFmtRangedModel   = "ranged model: %w"
	ErrFmtBinaryModel   = "binary model: %w"
	ErrFmtReadGoals     = "failed to read goals file %s: %w"
	ErrFmtParseGoals    = "failed to parse goals file %s: %w"
	ErrFmtSchemaGoals   = "schema validation failed for %s: %w"
	ErrFmtBuildWorker   = "build worker %d: %w"
	ErrFmtSolverDefault = "default solver: %w"
)
