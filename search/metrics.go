package search

import (
	"time"

	"github.com/katalvlaran/mazegrid/maze"
)

// Metrics is the performance and quality record of a single search
// invocation. A fresh record is created per run, owned exclusively by that
// run, and populated incrementally at the instrumentation points documented
// in the package comment.
type Metrics struct {
	// Elapsed is the wall time of the whole search, entry to return,
	// excluding any formatting done by consumers.
	Elapsed time.Duration

	// Expanded counts nodes dequeued from the frontier whose neighbors were
	// inspected.
	Expanded int

	// Generated counts nodes newly discovered and placed into the frontier;
	// the start node counts as 1.
	Generated int

	// PeakFrontier is the maximum frontier size observed.
	PeakFrontier int

	// PeakExplored is the maximum size observed for the discovered/visited
	// bookkeeping set.
	PeakExplored int

	// Found reports whether a path from start to goal was returned.
	Found bool

	// Complete is the oracle's completeness verdict: the run agrees with the
	// BFS ground truth on whether a path exists. Unknown until the oracle
	// runs.
	Complete Verdict

	// Optimal is the oracle's optimality verdict: the run's path cost equals
	// the ground-truth cost. Only meaningful when both found a path;
	// otherwise stays Unknown.
	Optimal Verdict

	// PathCost is the total step cost of the returned path (0 when none).
	PathCost int64

	// PathLen is the number of positions in the returned path (0 when none).
	PathLen int
}

// PeakStructures is the memory proxy: the sum of the frontier and explored
// peaks, each tracked independently. The two maxima need not have occurred
// simultaneously; this is a defined metric, not the peak of the sum.
func (m *Metrics) PeakStructures() int {
	if m == nil {
		return 0
	}
	return m.PeakFrontier + m.PeakExplored
}

// The recorders below are nil-safe so the algorithms can invoke them
// unconditionally; a run without metrics passes a nil *Metrics and pays
// nothing.

func (m *Metrics) addGenerated() {
	if m != nil {
		m.Generated++
	}
}

func (m *Metrics) addExpanded() {
	if m != nil {
		m.Expanded++
	}
}

func (m *Metrics) observeFrontier(n int) {
	if m != nil && n > m.PeakFrontier {
		m.PeakFrontier = n
	}
}

func (m *Metrics) observeExplored(n int) {
	if m != nil && n > m.PeakExplored {
		m.PeakExplored = n
	}
}

func (m *Metrics) setElapsed(d time.Duration) {
	if m != nil {
		m.Elapsed = d
	}
}

// recordOutcome fills the path-derived fields. Under the uniform-cost model
// the path cost equals its edge count.
func (m *Metrics) recordOutcome(path maze.Path) {
	if m == nil {
		return
	}
	m.Found = len(path) > 0
	m.PathLen = len(path)
	if len(path) > 0 {
		m.PathCost = int64(len(path) - 1)
	}
}
