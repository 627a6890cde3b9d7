package search

import (
	"time"

	"github.com/katalvlaran/mazegrid/maze"
)

// BFS runs breadth-first search from mz.Start toward mz.Goal.
//
// The frontier is a FIFO queue; nodes are marked visited at generation time,
// which bounds frontier growth and guarantees that a returned path has the
// minimum number of edges. BFS is the ground truth the oracle uses to judge
// the other strategies.
//
// Returns ErrNilMaze for a nil maze. An unreachable goal is not an error:
// the Result carries an empty Path and, with metrics, Found=false.
func BFS(mz *maze.Maze, opts ...Option) (*Result, error) {
	if mz == nil {
		return nil, ErrNilMaze
	}
	o := buildOptions(opts)

	var met *Metrics
	if o.Metrics {
		met = &Metrics{}
	}

	begin := time.Now()
	path := bfsCore(mz, met)
	met.setElapsed(time.Since(begin))
	met.recordOutcome(path)

	if o.Optimality {
		evaluate(mz, met)
	}
	return &Result{Path: path, Metrics: met}, nil
}

// bfsCore is the instrumented BFS loop, shared with the oracle (which calls
// it with a nil metrics record).
func bfsCore(mz *maze.Maze, met *Metrics) maze.Path {
	start, goal := mz.Start(), mz.Goal()

	queue := make([]maze.Position, 0, mz.Rows()*mz.Cols())
	visited := make(map[maze.Position]bool, mz.Rows()*mz.Cols())
	parent := make(map[maze.Position]maze.Position)

	visited[start] = true
	queue = append(queue, start)
	met.addGenerated()
	met.observeFrontier(len(queue))
	met.observeExplored(len(visited))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		met.observeFrontier(len(queue))

		if cur == goal {
			break
		}
		met.addExpanded()

		for _, nb := range mz.Neighbors(cur) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			parent[nb] = cur
			met.addGenerated()
			queue = append(queue, nb)
			met.observeFrontier(len(queue))
			met.observeExplored(len(visited))
		}
	}

	return reconstruct(parent, start, goal)
}
