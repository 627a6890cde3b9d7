package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/heuristic"
	"github.com/katalvlaran/mazegrid/search"
)

func TestMetrics_PeakStructuresSumsIndependentPeaks(t *testing.T) {
	// The memory proxy is the sum of the two independently tracked maxima,
	// not the peak of the instantaneous sum.
	m := &search.Metrics{PeakFrontier: 3, PeakExplored: 5}
	assert.Equal(t, 8, m.PeakStructures())

	var nilMetrics *search.Metrics
	assert.Zero(t, nilMetrics.PeakStructures())
}

func TestMetrics_CounterSanityAcrossAlgorithms(t *testing.T) {
	m := crossedMaze(t)
	cellCount := m.Rows() * m.Cols()

	results := map[string]*search.Result{}
	var err error
	results["bfs"], err = search.BFS(m, search.WithMetrics())
	require.NoError(t, err)
	results["dfs"], err = search.DFS(m, search.WithMetrics())
	require.NoError(t, err)
	results["astar"], err = search.AStar(m, heuristic.Manhattan, search.WithMetrics())
	require.NoError(t, err)
	results["greedy"], err = search.Greedy(m, heuristic.Manhattan, search.WithMetrics())
	require.NoError(t, err)

	for name, res := range results {
		met := res.Metrics
		require.NotNil(t, met, name)
		// Every expanded node was generated first; nothing is generated twice.
		assert.GreaterOrEqual(t, met.Generated, met.Expanded, name)
		assert.LessOrEqual(t, met.Generated, cellCount, name)
		assert.GreaterOrEqual(t, met.PeakExplored, 1, name)
		assert.GreaterOrEqual(t, met.PeakFrontier, 1, name)
		assert.Equal(t, met.PeakFrontier+met.PeakExplored, met.PeakStructures(), name)
		assert.True(t, met.Found, name)
		assert.Equal(t, met.PathLen, len(res.Path), name)
		assert.Equal(t, int64(met.PathLen-1), met.PathCost, name)
	}
}
