// Package heuristic provides distance estimates for informed search over
// 4-directional unit-cost grids.
//
// Every heuristic is a pure, stateless function of two positions satisfying
// Func; any function of that signature may be substituted.
//
// Admissibility caveat: Manhattan and Euclidean are admissible and consistent
// on symmetric unit-cost grids. Directed mazes (non-reciprocal walls) can in
// principle force detours that break admissibility, so A* optimality is not
// formally guaranteed there. The estimates are still the standard choice and
// are used as-is.
package heuristic
