// Package mazegrid is a small engine for comparative pathfinding over
// directed grid mazes.
//
// 🚀 What is mazegrid?
//
//	A focused library for grid mazes whose walls are one-way:
//		• maze/      — the grid model: per-cell directional permission flags,
//		               labels, adjacency, step costs, ASCII rendering
//		• mazetext/  — the NSEW bitmask text encoding: parse & format
//		• heuristic/ — Manhattan, Euclidean and Zero distance estimates
//		• search/    — BFS, DFS, A* and Greedy Best-First with uniform
//		               instrumentation and a BFS-backed optimality oracle
//		• queens/    — hill-climbing n-queens (sideways moves, random restarts)
//		• report/    — run suites, repeated-run aggregation, comparison tables
//
// ✨ Why choose mazegrid?
//
//   - Honest directed adjacency – a permitted A→B move never implies B→A
//   - Comparable numbers – all four searches share one set of
//     instrumentation points (generated, expanded, frontier/explored peaks)
//   - Deterministic – fixed neighbor order, FIFO tie-breaking, injected seeds
//
// Quick ASCII example, a 3×3 maze rendered with a found path:
//
//	..G
//	.oo
//	So.
//
// Dive into README.md for the text format grammar and full examples.
package mazegrid
