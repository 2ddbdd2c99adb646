package errs

import "errors"

// Sentinel errors shared across layers
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Scenario errors
	ErrScenarioFailed   = errors.New("scenario failed")
	ErrScenarioPanicked = errors.New("scenario panicked")
)
