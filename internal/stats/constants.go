package stats

// ============================================================================
// Solver cache
// ============================================================================

const (
	// DefaultSolverCacheSize bounds how many (min, max) tables a solver keeps.
	DefaultSolverCacheSize = 64
)

// ============================================================================
// Identity model values
// ============================================================================

const (
	IdentityLuck        = 1.0
	IdentityProbability = 0.0
)

// ============================================================================
// Error formats
// ============================================================================

const (
	ErrFmtShape       = "%w: shape %v must be positive and finite"
	ErrFmtSuccessProb = "%w: success probability %v outside (0, 1]"
	ErrFmtRange       = "%w: min=%d max=%d"
	ErrFmtPerRun      = "%w: per-run target %d with total %d"
	ErrFmtCacheSize   = "invalid solver cache size %d: %w"
)
