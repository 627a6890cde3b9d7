package queens

import (
	"errors"
	"time"
)

// Sentinel errors for puzzle configuration.
var (
	// ErrBoardSize indicates a non-positive board size.
	ErrBoardSize = errors.New("queens: board size must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("queens: invalid option supplied")
)

// Defaults for the climbing budgets.
const (
	// DefaultMaxSideways bounds consecutive equal-conflict moves per climb.
	DefaultMaxSideways = 100
	// DefaultMaxSteps bounds total moves per climb.
	DefaultMaxSteps = 1000
	// DefaultMaxRestarts bounds the attempts of RandomRestart.
	DefaultMaxRestarts = 50
)

// Board places one queen per column: board[col] = row.
type Board []int

// Move relocates the queen of column Col to row Row.
type Move struct {
	Col, Row int
}

// Result reports the outcome of a climb or a restart loop.
type Result struct {
	// Board is the final placement, solved or not.
	Board Board
	// Success is true when Board has zero conflicts.
	Success bool
	// Steps counts every accepted move, sideways included.
	Steps int
	// Sideways counts the accepted equal-conflict moves.
	Sideways int
	// Restarts counts the extra random starts beyond the first attempt.
	Restarts int
	// StartConflicts is the conflict count of the first board examined.
	StartConflicts int
	// FinalConflicts is the conflict count of Board.
	FinalConflicts int
	// Elapsed is the total wall-clock duration.
	Elapsed time.Duration
}

// Option configures the solver via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// solver is invoked.
type Option func(*options)

type options struct {
	seed        int64
	hasSeed     bool
	maxSideways int
	maxSteps    int
	maxRestarts int

	err error
}

func defaultOptions() options {
	return options{
		maxSideways: DefaultMaxSideways,
		maxSteps:    DefaultMaxSteps,
		maxRestarts: DefaultMaxRestarts,
	}
}

// WithSeed fixes the pseudo-random source, making the run reproducible.
// Without it the solver seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithMaxSideways bounds consecutive equal-conflict moves. Zero disables
// sideways moves entirely; negative values are invalid.
func WithMaxSideways(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxSideways = n
	}
}

// WithMaxSteps bounds the total accepted moves of one climb.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxSteps = n
	}
}

// WithMaxRestarts bounds the attempts of RandomRestart.
func WithMaxRestarts(n int) Option {
	return func(o *options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.maxRestarts = n
	}
}
