package framework

import "errors"

// Error kinds returned on caller contract violations. They signal misuse, not
// transient failure, and are never retried or recovered inside the engine.
var (
	ErrNullArgument     = errors.New("null argument")
	ErrEmptyCollection  = errors.New("empty collection")
	ErrInvalidRange     = errors.New("value out of range")
	ErrInvalidCondition = errors.New("invalid condition")
)
