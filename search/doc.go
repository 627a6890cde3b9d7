// Package search implements four search strategies over a maze.Maze
// (breadth-first, depth-first, A*, and greedy best-first) with uniform
// instrumentation and an opt-in BFS-backed optimality/completeness oracle.
//
// Shared contract:
//
//   - Every search begins at Maze.Start and terminates upon dequeuing
//     Maze.Goal, or when the frontier is exhausted (empty Path, Found=false;
//     a normal outcome, never an error).
//   - BFS and DFS mark nodes visited at generation time; BFS therefore
//     returns a path with the minimum number of edges and serves as the
//     ground-truth oracle.
//   - A* orders its frontier by f(n) = g(n) + h(n), Greedy by h(n) alone;
//     both share one best-first engine parameterized by a priority key.
//     Relaxation uses lazy re-insertion: a better g re-pushes the node and
//     stale entries are skipped when popped. Ties break FIFO via a monotone
//     sequence number, keeping results deterministic.
//
// Instrumentation points (identical across all four strategies):
//
//   - Generated: incremented when a node is first discovered and placed into
//     the frontier (the start counts as 1).
//   - Expanded: incremented when a dequeued node has its neighbors inspected.
//     The goal dequeue and stale lazy-deletion pops are not expansions.
//   - PeakFrontier / PeakExplored: observed after every insertion and
//     removal. PeakStructures sums the two independent peaks, not the peak
//     of the instantaneous sum.
//   - Elapsed wraps the whole search from entry to return.
//
// Metrics collection is opt-in (WithMetrics); the oracle additionally costs
// one BFS run and is opt-in separately (WithOptimality, which implies
// metrics).
//
// Searches are synchronous and single-threaded; a Maze is read-only, so
// independent searches may run concurrently. Callers wanting bounded
// execution compose a cutoff around the search boundary.
package search
