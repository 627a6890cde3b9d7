package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/search"
)

func TestDFS_NilMaze(t *testing.T) {
	_, err := search.DFS(nil)
	assert.ErrorIs(t, err, search.ErrNilMaze)
}

func TestDFS_FindsSomeValidPath(t *testing.T) {
	m := crossedMaze(t)

	res, err := search.DFS(m, search.WithMetrics())
	require.NoError(t, err)
	requireValidPath(t, m, res.Path)
	// No optimality guarantee, but never shorter than BFS.
	bfsRes, err := search.BFS(m)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.Path), len(bfsRes.Path))
}

func TestDFS_ExploresNorthFirst(t *testing.T) {
	// Open 3×3, start bottom-left, goal bottom-right. Depth-first order with
	// North pushed last (popped first) walks the long way around the grid.
	m := mustMaze(t, 3, 3, openCells(3, 3), maze.Position{Row: 2, Col: 0}, maze.Position{Row: 2, Col: 2})

	res, err := search.DFS(m)
	require.NoError(t, err)
	assert.Equal(t, maze.Path{
		{Row: 2, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 1, Col: 2},
		{Row: 2, Col: 2},
	}, res.Path)
}

func TestDFS_SuboptimalYetHonest(t *testing.T) {
	m := mustMaze(t, 3, 3, openCells(3, 3), maze.Position{Row: 2, Col: 0}, maze.Position{Row: 2, Col: 2})

	res, err := search.DFS(m, search.WithOptimality())
	require.NoError(t, err)
	// BFS cost is 2; DFS takes 6 edges here and must not claim optimality.
	assert.Equal(t, int64(6), res.Metrics.PathCost)
	assert.Equal(t, search.VerdictYes, res.Metrics.Complete)
	assert.Equal(t, search.VerdictNo, res.Metrics.Optimal)
}

func TestDFS_NoPath(t *testing.T) {
	m := walledStartMaze(t)

	res, err := search.DFS(m, search.WithOptimality())
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.False(t, res.Metrics.Found)
	assert.Equal(t, search.VerdictYes, res.Metrics.Complete)
	assert.Equal(t, search.VerdictUnknown, res.Metrics.Optimal)
}

func TestDFS_HonorsOneWayEdges(t *testing.T) {
	m := oneWayMaze(t)

	res, err := search.DFS(m, search.WithMetrics())
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.False(t, res.Metrics.Found)
}

func TestDFS_Idempotent(t *testing.T) {
	m := crossedMaze(t)

	first, err := search.DFS(m, search.WithMetrics())
	require.NoError(t, err)
	second, err := search.DFS(m, search.WithMetrics())
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	first.Metrics.Elapsed, second.Metrics.Elapsed = 0, 0
	assert.Equal(t, first.Metrics, second.Metrics)
}
