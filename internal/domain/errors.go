package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalogue errors
	ErrMsgEmptyCatalogue      = "catalogue has no drawable entries"
	ErrMsgItemNotInCatalogue  = "item not in catalogue"
	ErrMsgDuplicateItem       = "duplicate catalogue item"
	ErrMsgInvalidCatalogEntry = "invalid catalogue entry"

	// Probability model errors
	ErrMsgInvalidDistribution = "invalid distribution parameters"
	ErrMsgInvalidRange        = "invalid count range"

	// Simulation errors
	ErrMsgInvalidGoals    = "invalid goals"
	ErrMsgWorkerFailed    = "simulation worker failed"
	ErrMsgAlreadyStarted  = "simulation already started"
	ErrMsgInvalidWorkers  = "worker count must be positive"
	ErrMsgInvalidPValue   = "p-value must be in (0, 1]"
	ErrMsgInvalidCycles   = "cycle count must be positive"
	ErrMsgNoSummaries     = "no summaries to report"
	ErrMsgRunNotFound     = "simulation run not found"
	ErrMsgUnsupportedKind = "unsupported histogram kind"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrEmptyCatalogue      = errors.New(ErrMsgEmptyCatalogue)
	ErrItemNotInCatalogue  = errors.New(ErrMsgItemNotInCatalogue)
	ErrDuplicateItem       = errors.New(ErrMsgDuplicateItem)
	ErrInvalidCatalogEntry = errors.New(ErrMsgInvalidCatalogEntry)

	ErrInvalidDistribution = errors.New(ErrMsgInvalidDistribution)
	ErrInvalidRange        = errors.New(ErrMsgInvalidRange)

	ErrInvalidGoals    = errors.New(ErrMsgInvalidGoals)
	ErrWorkerFailed    = errors.New(ErrMsgWorkerFailed)
	ErrAlreadyStarted  = errors.New(ErrMsgAlreadyStarted)
	ErrInvalidWorkers  = errors.New(ErrMsgInvalidWorkers)
	ErrInvalidPValue   = errors.New(ErrMsgInvalidPValue)
	ErrInvalidCycles   = errors.New(ErrMsgInvalidCycles)
	ErrNoSummaries     = errors.New(ErrMsgNoSummaries)
	ErrRunNotFound     = errors.New(ErrMsgRunNotFound)
	ErrUnsupportedKind = errors.New(ErrMsgUnsupportedKind)
)
