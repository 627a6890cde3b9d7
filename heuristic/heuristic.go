package heuristic

import (
	"math"

	"github.com/katalvlaran/mazegrid/maze"
)

// Func estimates the remaining cost from a to b. Implementations must be
// pure, side-effect free, and return a non-negative value.
type Func func(a, b maze.Position) float64

// Manhattan returns |Δrow| + |Δcol|. On a symmetric 4-directional unit-cost
// grid it is admissible and consistent.
func Manhattan(a, b maze.Position) float64 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return float64(dr + dc)
}

// Euclidean returns sqrt(Δrow² + Δcol²). Never greater than Manhattan, so it
// is admissible wherever Manhattan is.
func Euclidean(a, b maze.Position) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Zero estimates nothing. A* with Zero degenerates to uniform-cost search.
func Zero(maze.Position, maze.Position) float64 { return 0 }
