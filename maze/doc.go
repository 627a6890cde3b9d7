// Package maze models a rectangular grid maze with directed, per-cell
// movement permissions.
//
// What:
//
//   - Maze wraps a rows×cols grid of Cells, each carrying four independent
//     Blocked flags (North, South, East, West) and an optional display label.
//   - Neighbors yields permitted moves in the fixed order N, S, E, W.
//   - StepCost is uniform (1) for any permitted adjacent move.
//   - Start and Goal are fixed at construction and validated against any
//     documentary markers carried by the cells.
//   - Render draws a maze with a path overlaid ('S', 'G', 'o', '.').
//
// Why directed:
//
//   - A cell's flag governs movement out of that cell only. A permitted A→B
//     move does not imply B→A is permitted. Symmetric "shared wall"
//     abstractions silently produce wrong adjacency here; only the source
//     cell's mask is ever consulted.
//
// Invariants:
//
//   - Every position in [0,rows)×[0,cols) has a defined cell; construction
//     fails on holes (ErrMalformedGrid); no partial mazes.
//   - The maze is deep-copied at construction and never mutated afterwards;
//     it may be shared freely across concurrent searches.
//
// Errors:
//
//   - ErrMalformedGrid: empty dimensions, missing or out-of-bounds cells,
//     duplicate documentary markers.
//   - ErrStartGoalMismatch: documentary markers disagree with the expected
//     endpoints, or endpoints lie outside the grid.
//   - ErrNoEndpoints: neither WithEndpoints nor markers define start/goal.
//   - ErrInvalidStep: StepCost queried for a non-permitted or non-adjacent
//     pair; indicates a caller bug, never occurs during normal search.
package maze
