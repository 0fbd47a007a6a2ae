package catalogue

// ============================================================================
// Preset names
// ============================================================================

const (
	NameBarter = "barter"
	NameBlaze  = "blaze"
)

// ============================================================================
// Error formats
// ============================================================================

const (
	ErrFmtReadFileFailed  = "failed to read catalogue file %s: %w"
	ErrFmtParseFailed     = "failed to parse catalogue file %s: %w"
	ErrFmtSchemaFailed    = "schema validation failed for %s: %w"
	ErrFmtEntryInvalid    = "%w: entry %d (%s): %s"
	ErrFmtDuplicateItem   = "%w: %s"
	ErrFmtItemMissing     = "%w: %s not in %s"
	ErrFmtZeroTotalWeight = "%w: %s has zero total weight"
	ErrFmtNoEntries       = "%w: %s has no entries"
)
