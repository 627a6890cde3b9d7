package mazetext

import (
	"fmt"

	"github.com/katalvlaran/mazegrid/maze"
)

// Sentinel errors for text decoding. Each wraps maze.ErrMalformedGrid so
// errors.Is matches at both granularities.
var (
	// ErrEmptyInput indicates input with no cell tokens at all.
	ErrEmptyInput = fmt.Errorf("mazetext: empty input (%w)", maze.ErrMalformedGrid)

	// ErrBadToken indicates a token that violates the cell grammar: fewer
	// than four runes, a permission rune other than '0'/'1', a duplicate
	// marker, or more than one label.
	ErrBadToken = fmt.Errorf("mazetext: bad token (%w)", maze.ErrMalformedGrid)

	// ErrNonRectangular indicates rows with differing token counts.
	ErrNonRectangular = fmt.Errorf("mazetext: ragged rows (%w)", maze.ErrMalformedGrid)
)

// Canonical endpoints of the classic 5×5 layout: bottom-left start,
// top-right goal.
var (
	CanonicalStart = maze.Position{Row: 4, Col: 0}
	CanonicalGoal  = maze.Position{Row: 0, Col: 4}
)

// Option configures parsing via functional arguments.
type Option func(*parseOptions)

type parseOptions struct {
	start, goal  maze.Position
	hasEndpoints bool
}

// WithExpectedEndpoints forwards fixed start/goal coordinates to maze
// construction. Documentary S/G markers in the text must then agree with
// these coordinates or parsing fails with maze.ErrStartGoalMismatch.
func WithExpectedEndpoints(start, goal maze.Position) Option {
	return func(o *parseOptions) {
		o.start = start
		o.goal = goal
		o.hasEndpoints = true
	}
}
