package mazetext

import (
	"strings"

	"github.com/katalvlaran/mazegrid/maze"
)

// Format re-emits m in the tokenized text encoding with normalized spacing:
// one space between tokens, one newline after each row. The output parses
// back to an equivalent maze.
func Format(m *maze.Maze) (string, error) {
	var b strings.Builder
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell, err := m.Cell(maze.Position{Row: r, Col: c})
			if err != nil {
				return "", err
			}
			writeToken(&b, cell)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func writeToken(b *strings.Builder, cell maze.Cell) {
	for d := 0; d < maze.NumDirections; d++ {
		if cell.Blocked[maze.Direction(d)] {
			b.WriteByte('0')
		} else {
			b.WriteByte('1')
		}
	}
	if cell.Label != 0 {
		b.WriteRune(cell.Label)
	}
	switch cell.Marker {
	case maze.MarkerStart:
		b.WriteByte('S')
	case maze.MarkerGoal:
		b.WriteByte('G')
	}
}
