package search

import (
	"github.com/katalvlaran/mazegrid/heuristic"
	"github.com/katalvlaran/mazegrid/maze"
)

// AStar runs A* search from mz.Start toward mz.Goal, ordering the frontier
// by f(n) = g(n) + h(n) where g is the accumulated path cost and h the
// supplied heuristic estimate to the goal.
//
// With an admissible heuristic A* returns a minimum-cost path. On directed
// mazes admissibility of the usual grid heuristics is not formally
// guaranteed (see package heuristic); the oracle verdicts report what
// actually happened.
//
// Returns ErrNilMaze or ErrNilHeuristic for invalid input.
func AStar(mz *maze.Maze, h heuristic.Func, opts ...Option) (*Result, error) {
	return runBestFirst(mz, h, func(g int64, est float64) float64 {
		return float64(g) + est
	}, opts)
}
