package search

import (
	"time"

	"github.com/katalvlaran/mazegrid/maze"
)

// DFS runs iterative depth-first search from mz.Start toward mz.Goal.
//
// The frontier is a LIFO stack; nodes are marked visited at generation time.
// Neighbors are pushed in reverse of the fixed N, S, E, W order so that
// North is explored first, making the traversal deterministic. DFS returns
// the first path found in depth-first order, with no optimality guarantee.
//
// Returns ErrNilMaze for a nil maze; an unreachable goal yields an empty
// Path, not an error.
func DFS(mz *maze.Maze, opts ...Option) (*Result, error) {
	if mz == nil {
		return nil, ErrNilMaze
	}
	o := buildOptions(opts)

	var met *Metrics
	if o.Metrics {
		met = &Metrics{}
	}

	begin := time.Now()
	path := dfsCore(mz, met)
	met.setElapsed(time.Since(begin))
	met.recordOutcome(path)

	if o.Optimality {
		evaluate(mz, met)
	}
	return &Result{Path: path, Metrics: met}, nil
}

func dfsCore(mz *maze.Maze, met *Metrics) maze.Path {
	start, goal := mz.Start(), mz.Goal()

	stack := make([]maze.Position, 0, mz.Rows()*mz.Cols())
	visited := make(map[maze.Position]bool, mz.Rows()*mz.Cols())
	parent := make(map[maze.Position]maze.Position)

	visited[start] = true
	stack = append(stack, start)
	met.addGenerated()
	met.observeFrontier(len(stack))
	met.observeExplored(len(visited))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		met.observeFrontier(len(stack))

		if cur == goal {
			break
		}
		met.addExpanded()

		nbs := mz.Neighbors(cur)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			met.addGenerated()
			stack = append(stack, nb)
			met.observeFrontier(len(stack))
			met.observeExplored(len(visited))
		}
	}

	return reconstruct(parent, start, goal)
}
