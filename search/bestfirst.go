package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/mazegrid/heuristic"
	"github.com/katalvlaran/mazegrid/maze"
)

// priorityKey maps a node's accumulated cost g and heuristic estimate h to
// its frontier priority. A* uses g+h; Greedy uses h alone. Lower is better.
type priorityKey func(g int64, h float64) float64

// runBestFirst is the common wrapper for the two informed searches:
// validation, option folding, timing, outcome recording, oracle.
func runBestFirst(mz *maze.Maze, h heuristic.Func, key priorityKey, opts []Option) (*Result, error) {
	if mz == nil {
		return nil, ErrNilMaze
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	o := buildOptions(opts)

	var met *Metrics
	if o.Metrics {
		met = &Metrics{}
	}

	begin := time.Now()
	path, err := bestFirstCore(mz, h, key, met)
	met.setElapsed(time.Since(begin))
	if err != nil {
		return nil, err
	}
	met.recordOutcome(path)

	if o.Optimality {
		evaluate(mz, met)
	}
	return &Result{Path: path, Metrics: met}, nil
}

// bestFirstCore pops the lowest-priority frontier entry, finalizes it, and
// relaxes its outgoing moves. Relaxation is lazy: a better g re-pushes the
// node and the stale higher-cost entry is skipped when later popped, so the
// reconstructed cost is always the best one discovered.
func bestFirstCore(mz *maze.Maze, h heuristic.Func, key priorityKey, met *Metrics) (maze.Path, error) {
	w := &bestFirstWalker{
		mz:     mz,
		h:      h,
		key:    key,
		met:    met,
		goal:   mz.Goal(),
		gScore: make(map[maze.Position]int64),
		parent: make(map[maze.Position]maze.Position),
		closed: make(map[maze.Position]bool),
	}

	start := mz.Start()
	w.gScore[start] = 0
	w.push(start, 0)
	met.addGenerated()
	met.observeFrontier(w.pq.Len())
	met.observeExplored(len(w.gScore))

	for w.pq.Len() > 0 {
		item := heap.Pop(&w.pq).(*frontierItem)
		met.observeFrontier(w.pq.Len())

		// Lazy deletion: ignore entries finalized or superseded by a better g.
		if w.closed[item.pos] || item.g > w.gScore[item.pos] {
			continue
		}
		if item.pos == w.goal {
			return reconstruct(w.parent, start, w.goal), nil
		}

		w.closed[item.pos] = true
		met.addExpanded()
		if err := w.relax(item); err != nil {
			return nil, err
		}
	}

	return reconstruct(w.parent, start, w.goal), nil
}

// bestFirstWalker encapsulates mutable best-first state.
type bestFirstWalker struct {
	mz   *maze.Maze
	h    heuristic.Func
	key  priorityKey
	met  *Metrics
	goal maze.Position

	seq    uint64
	pq     frontierHeap
	gScore map[maze.Position]int64
	parent map[maze.Position]maze.Position
	closed map[maze.Position]bool
}

// relax attempts to improve the cost of every neighbor of item.pos.
// StepCost failure here would mean Neighbors yielded a non-permitted move,
// an internal-consistency bug; it is propagated rather than masked.
func (w *bestFirstWalker) relax(item *frontierItem) error {
	for _, nb := range w.mz.Neighbors(item.pos) {
		step, err := w.mz.StepCost(item.pos, nb)
		if err != nil {
			return fmt.Errorf("search: relaxing %v→%v: %w", item.pos, nb, err)
		}
		if w.closed[nb] {
			continue
		}
		tentative := item.g + step
		old, seen := w.gScore[nb]
		if seen && tentative >= old {
			continue
		}
		w.gScore[nb] = tentative
		w.parent[nb] = item.pos
		if !seen {
			w.met.addGenerated()
		}
		w.push(nb, tentative)
		w.met.observeFrontier(w.pq.Len())
		w.met.observeExplored(len(w.gScore))
	}
	return nil
}

func (w *bestFirstWalker) push(p maze.Position, g int64) {
	w.seq++
	heap.Push(&w.pq, &frontierItem{
		pos:      p,
		g:        g,
		priority: w.key(g, w.h(p, w.goal)),
		seq:      w.seq,
	})
}

// frontierItem is one priority-queue entry. seq is a monotone insertion
// counter used to break priority ties FIFO, keeping pops deterministic.
type frontierItem struct {
	pos      maze.Position
	g        int64
	priority float64
	seq      uint64
}

// frontierHeap is a min-heap of *frontierItem ordered by priority, then by
// insertion sequence. Stale entries from lazy re-insertion remain in the heap
// and are filtered on pop.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(*frontierItem)) }

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
