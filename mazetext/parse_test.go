package mazetext_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazegrid/maze"
	"github.com/katalvlaran/mazegrid/mazetext"
)

func parse(t *testing.T, text string, opts ...mazetext.Option) *maze.Maze {
	t.Helper()
	m, err := mazetext.Parse(strings.NewReader(text), opts...)
	require.NoError(t, err)
	return m
}

func TestParse_MarkersDefineEndpoints(t *testing.T) {
	m := parse(t, "0110S 0011\n1010 1001G\n")

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, maze.Position{Row: 0, Col: 0}, m.Start())
	assert.Equal(t, maze.Position{Row: 1, Col: 1}, m.Goal())

	// Token 0110: north and west forbidden, south and east permitted.
	origin := maze.Position{Row: 0, Col: 0}
	assert.True(t, m.Blocked(origin, maze.North))
	assert.False(t, m.Blocked(origin, maze.South))
	assert.False(t, m.Blocked(origin, maze.East))
	assert.True(t, m.Blocked(origin, maze.West))
}

func TestParse_Labels(t *testing.T) {
	m := parse(t, "1111Sa 1111\n1111 1111bG\n")

	assert.Equal(t, 'a', m.LabelAt(maze.Position{Row: 0, Col: 0}))
	assert.Equal(t, 'b', m.LabelAt(maze.Position{Row: 1, Col: 1}))
	assert.Equal(t, maze.DefaultLabel, m.LabelAt(maze.Position{Row: 0, Col: 1}))
}

func TestParse_OneWayPassage(t *testing.T) {
	// (0,0) permits east but (0,1) forbids west: the passage works one way.
	m := parse(t, "1111S 1110G\n")

	assert.Contains(t, m.Neighbors(maze.Position{Row: 0, Col: 0}), maze.Position{Row: 0, Col: 1})
	assert.NotContains(t, m.Neighbors(maze.Position{Row: 0, Col: 1}), maze.Position{Row: 0, Col: 0})
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	m := parse(t, "\n\n1111S 1111\n\n1111 1111G\n\n")
	assert.Equal(t, 2, m.Rows())
}

func TestParse_BadTokens(t *testing.T) {
	cases := map[string]string{
		"bad bit":          "10A0S 1111G",
		"short token":      "011S 1111G",
		"double marker":    "1111SG 1111",
		"double label":     "1111ab 1111S 1111G",
		"non-letter extra": "1111S? 1111G",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := mazetext.Parse(strings.NewReader(text))
			assert.ErrorIs(t, err, mazetext.ErrBadToken)
			assert.ErrorIs(t, err, maze.ErrMalformedGrid)
		})
	}
}

func TestParse_DuplicateStart(t *testing.T) {
	_, err := mazetext.Parse(strings.NewReader("1111S 1111S\n1111 1111G\n"))
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)
}

func TestParse_MissingGoal(t *testing.T) {
	_, err := mazetext.Parse(strings.NewReader("1111S 1111\n"))
	assert.ErrorIs(t, err, maze.ErrMalformedGrid)
}

func TestParse_NoMarkersNoEndpoints(t *testing.T) {
	_, err := mazetext.Parse(strings.NewReader("1111 1111\n"))
	assert.ErrorIs(t, err, maze.ErrNoEndpoints)
}

func TestParse_NonRectangular(t *testing.T) {
	_, err := mazetext.Parse(strings.NewReader("1111S 1111\n1111G\n"))
	assert.ErrorIs(t, err, mazetext.ErrNonRectangular)
}

func TestParse_Empty(t *testing.T) {
	for _, text := range []string{"", "\n", "  \n\t\n"} {
		_, err := mazetext.Parse(strings.NewReader(text))
		assert.ErrorIs(t, err, mazetext.ErrEmptyInput)
	}
}

func TestParse_ExpectedEndpointsMismatch(t *testing.T) {
	_, err := mazetext.Parse(strings.NewReader("1111S 1111\n1111 1111G\n"),
		mazetext.WithExpectedEndpoints(mazetext.CanonicalStart, mazetext.CanonicalGoal))
	assert.ErrorIs(t, err, maze.ErrStartGoalMismatch)
}

func TestParseFile_Classic(t *testing.T) {
	m, err := mazetext.ParseFile("testdata/classic.maze",
		mazetext.WithExpectedEndpoints(mazetext.CanonicalStart, mazetext.CanonicalGoal))
	require.NoError(t, err)

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, mazetext.CanonicalStart, m.Start())
	assert.Equal(t, mazetext.CanonicalGoal, m.Goal())
}

func TestParseFile_Missing(t *testing.T) {
	_, err := mazetext.ParseFile("testdata/no-such.maze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such.maze")
}
