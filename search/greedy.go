package search

import (
	"github.com/katalvlaran/mazegrid/heuristic"
	"github.com/katalvlaran/mazegrid/maze"
)

// Greedy runs greedy best-first search from mz.Start toward mz.Goal,
// ordering the frontier solely by the heuristic estimate h(n), with no
// cost-so-far term. Fast, complete on finite grids, and not optimal; it
// shares the visited and tie-break discipline of AStar.
//
// Returns ErrNilMaze or ErrNilHeuristic for invalid input.
func Greedy(mz *maze.Maze, h heuristic.Func, opts ...Option) (*Result, error) {
	return runBestFirst(mz, h, func(_ int64, est float64) float64 {
		return est
	}, opts)
}
