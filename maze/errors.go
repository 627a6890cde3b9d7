package maze

import "errors"

// Sentinel errors for maze construction and queries.
var (
	// ErrMalformedGrid indicates an incomplete rectangle, an out-of-bounds
	// cell, or otherwise inconsistent construction input.
	ErrMalformedGrid = errors.New("maze: malformed grid")

	// ErrStartGoalMismatch indicates documentary start/goal markers that
	// disagree with the expected endpoints.
	ErrStartGoalMismatch = errors.New("maze: start/goal mismatch")

	// ErrNoEndpoints indicates that neither options nor markers define the
	// start and goal positions.
	ErrNoEndpoints = errors.New("maze: no start/goal defined")

	// ErrInvalidStep indicates a step-cost query for a pair that is not a
	// permitted adjacent move.
	ErrInvalidStep = errors.New("maze: invalid step")

	// ErrOutOfBounds indicates a position outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("maze: position out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("maze: invalid option supplied")
)
