package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/report"
)

func TestLabelSequence(t *testing.T) {
	cells := map[maze.Position]maze.Cell{
		{Row: 0, Col: 0}: {Label: 'a'},
		{Row: 0, Col: 1}: {Label: 'b'},
		{Row: 0, Col: 2}: {Label: 'c'},
	}
	m, err := maze.New(1, 3, cells,
		maze.WithEndpoints(maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 2}))
	require.NoError(t, err)

	path := maze.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}
	assert.Equal(t, "a(S) -> b -> c(G)", report.LabelSequence(m, path))
}

func TestLabelSequence_DefaultsAndEdges(t *testing.T) {
	cells := map[maze.Position]maze.Cell{
		{Row: 0, Col: 0}: {},
		{Row: 0, Col: 1}: {},
	}
	m, err := maze.New(1, 2, cells,
		maze.WithEndpoints(maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 1}))
	require.NoError(t, err)

	path := maze.Path{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	assert.Equal(t, ".(S) -> .(G)", report.LabelSequence(m, path))
	assert.Equal(t, "(no path)", report.LabelSequence(m, nil))
}

func TestLabelSequence_StartEqualsGoal(t *testing.T) {
	cells := map[maze.Position]maze.Cell{{Row: 0, Col: 0}: {Label: 'x'}}
	m, err := maze.New(1, 1, cells,
		maze.WithEndpoints(maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 0}))
	require.NoError(t, err)

	path := maze.Path{{Row: 0, Col: 0}}
	assert.Equal(t, "x(S)(G)", report.LabelSequence(m, path))
}
