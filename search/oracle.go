package search

import "github.com/katalvlaran/mazegrid/maze"

// evaluate fills the Complete and Optimal verdicts of met by running a fresh,
// un-instrumented BFS as ground truth.
//
// Completeness: the run under test and the ground truth agree on whether a
// path exists, in both directions. Optimality: the run's path cost equals
// the ground-truth shortest cost; judged only when both found a path,
// otherwise the verdict stays Unknown.
func evaluate(mz *maze.Maze, met *Metrics) {
	if met == nil {
		return
	}
	truth := bfsCore(mz, nil)
	truthFound := len(truth) > 0

	met.Complete = verdictOf(truthFound == met.Found)
	if truthFound && met.Found {
		met.Optimal = verdictOf(met.PathCost == int64(len(truth)-1))
	}
}
