package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/maze"
)

// Shared builders for the algorithm tests.

func openCells(rows, cols int) map[maze.Position]maze.Cell {
	cells := make(map[maze.Position]maze.Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[maze.Position{Row: r, Col: c}] = maze.Cell{}
		}
	}
	return cells
}

func block(cells map[maze.Position]maze.Cell, pos maze.Position, dirs ...maze.Direction) {
	cell := cells[pos]
	for _, d := range dirs {
		cell.Blocked[d] = true
	}
	cells[pos] = cell
}

func mustMaze(t *testing.T, rows, cols int, cells map[maze.Position]maze.Cell, start, goal maze.Position) *maze.Maze {
	t.Helper()
	m, err := maze.New(rows, cols, cells, maze.WithEndpoints(start, goal))
	require.NoError(t, err)
	return m
}

// crossedMaze is the reference scenario: a 3×3 grid fully open except a wall
// blocking east at (1,1) and north at (0,1); start (2,0), goal (0,2). The
// shortest path has 4 edges.
func crossedMaze(t *testing.T) *maze.Maze {
	t.Helper()
	cells := openCells(3, 3)
	block(cells, maze.Position{Row: 1, Col: 1}, maze.East)
	block(cells, maze.Position{Row: 0, Col: 1}, maze.North)
	return mustMaze(t, 3, 3, cells, maze.Position{Row: 2, Col: 0}, maze.Position{Row: 0, Col: 2})
}

// oneWayMaze isolates the start behind a one-way wall: (0,0) permits east
// into (0,1), but the start (0,1) blocks west, so the goal (0,0) is
// unreachable even though the reverse move exists.
func oneWayMaze(t *testing.T) *maze.Maze {
	t.Helper()
	cells := openCells(1, 2)
	block(cells, maze.Position{Row: 0, Col: 1}, maze.West)
	return mustMaze(t, 1, 2, cells, maze.Position{Row: 0, Col: 1}, maze.Position{Row: 0, Col: 0})
}

// walledStartMaze walls the start off completely on a 2×2 grid.
func walledStartMaze(t *testing.T) *maze.Maze {
	t.Helper()
	cells := openCells(2, 2)
	block(cells, maze.Position{}, maze.North, maze.South, maze.East, maze.West)
	return mustMaze(t, 2, 2, cells, maze.Position{}, maze.Position{Row: 1, Col: 1})
}

// requireValidPath asserts the path starts at Start, ends at Goal, and every
// consecutive pair is a permitted move (edge count = PathCost).
func requireValidPath(t *testing.T, m *maze.Maze, path maze.Path) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, m.Start(), path[0])
	require.Equal(t, m.Goal(), path[len(path)-1])
	cost, err := m.PathCost(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(path)-1), cost)
}
