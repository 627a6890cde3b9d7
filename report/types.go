package report

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/search"
)

// Sentinel errors for suite resolution and execution.
var (
	// ErrUnknownAlgorithm indicates a run spec naming no known algorithm.
	ErrUnknownAlgorithm = errors.New("report: unknown algorithm")

	// ErrUnknownHeuristic indicates a run spec naming no known heuristic, or
	// omitting one where the algorithm requires it.
	ErrUnknownHeuristic = errors.New("report: unknown heuristic")

	// ErrEmptySuite indicates a suite with no runs.
	ErrEmptySuite = errors.New("report: suite has no runs")
)

// Record is the outcome of one algorithm/heuristic combination.
type Record struct {
	// ID identifies this record across exports and logs.
	ID uuid.UUID
	// Algorithm is the display name: BFS, DFS, A*, Greedy.
	Algorithm string
	// Heuristic is the heuristic name, or "-" for uninformed searches.
	Heuristic string
	// Path is the found route, empty when no path exists.
	Path maze.Path
	// Labels is the human-readable label sequence of Path.
	Labels string
	// Metrics holds the counters and verdicts of the first run.
	Metrics *search.Metrics
	// Aggregate holds repeated-run timing statistics, nil for single runs.
	Aggregate *Aggregate
}

// Aggregate summarizes the wall-clock time of repeated runs.
type Aggregate struct {
	Runs     int
	MeanMs   float64
	MedianMs float64
	StdDevMs float64
}

// TimeMs returns the representative duration of r in milliseconds: the
// aggregate mean when repeats were requested, otherwise the single run.
func (r Record) TimeMs() float64 {
	if r.Aggregate != nil {
		return r.Aggregate.MeanMs
	}
	return float64(r.Metrics.Elapsed.Nanoseconds()) / 1e6
}
