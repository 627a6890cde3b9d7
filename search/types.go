// Package search defines the shared option, result, and error types for the
// four search strategies.
package search

import (
	"errors"

	"github.com/katalvlaran/mazegrid/maze"
)

// Sentinel errors for search invocation.
var (
	// ErrNilMaze is returned if a nil maze pointer is passed.
	ErrNilMaze = errors.New("search: maze is nil")

	// ErrNilHeuristic is returned when an informed search receives a nil
	// heuristic function.
	ErrNilHeuristic = errors.New("search: heuristic is nil")
)

// Option configures a search invocation via functional arguments.
type Option func(*Options)

// Options holds the per-invocation switches shared by all four strategies.
type Options struct {
	// Metrics requests a Metrics record populated during the run.
	Metrics bool

	// Optimality additionally runs the BFS oracle to fill the Complete and
	// Optimal verdicts. Implies Metrics; costs one extra BFS.
	Optimality bool
}

// DefaultOptions returns the zero configuration: no metrics, no oracle.
func DefaultOptions() Options { return Options{} }

// WithMetrics requests metrics collection for this invocation.
func WithMetrics() Option {
	return func(o *Options) { o.Metrics = true }
}

// WithOptimality requests the optimality/completeness evaluation against the
// BFS ground truth. Implies WithMetrics.
func WithOptimality() Option {
	return func(o *Options) { o.Optimality = true }
}

// buildOptions folds the functional options and resolves implications.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Optimality {
		o.Metrics = true
	}
	return o
}

// Result is the outcome of one search invocation: the found path (empty when
// no path exists) and, when requested, the populated metrics record.
type Result struct {
	Path    maze.Path
	Metrics *Metrics // nil unless WithMetrics/WithOptimality was supplied
}

// Verdict is a tri-state answer used for the oracle's completeness and
// optimality judgments: unknown until the oracle runs, then yes or no.
type Verdict uint8

const (
	// VerdictUnknown means the oracle was not consulted, or the judgment is
	// not meaningful for this run (e.g. optimality without a found path).
	VerdictUnknown Verdict = iota
	// VerdictYes is an affirmative judgment.
	VerdictYes
	// VerdictNo is a negative judgment.
	VerdictNo
)

// String renders the verdict as "yes", "no", or "-" for unknown.
func (v Verdict) String() string {
	switch v {
	case VerdictYes:
		return "yes"
	case VerdictNo:
		return "no"
	default:
		return "-"
	}
}

func verdictOf(b bool) Verdict {
	if b {
		return VerdictYes
	}
	return VerdictNo
}

// reconstruct backtracks parent links from goal to start and reverses the
// result in place. Returns Path{start} when start == goal, and nil when the
// goal was never reached.
func reconstruct(parent map[maze.Position]maze.Position, start, goal maze.Position) maze.Path {
	if start == goal {
		return maze.Path{start}
	}
	if _, ok := parent[goal]; !ok {
		return nil
	}
	path := maze.Path{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
