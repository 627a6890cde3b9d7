package maze

import (
	"fmt"
	"strings"
)

// Runes used by Render.
const (
	renderEmpty = '.'
	renderPath  = 'o'
	renderStart = 'S'
	renderGoal  = 'G'
)

// Render draws the maze as rows×cols lines: '.' for plain cells, 'o' for
// path cells, with 'S' and 'G' fixed at the endpoints regardless of the path.
// Returns ErrOutOfBounds if the path visits a position outside the grid.
// The path is not checked for adjacency here; use PathCost for that.
func (m *Maze) Render(path Path) (string, error) {
	rows := make([][]rune, m.rows)
	for r := range rows {
		rows[r] = make([]rune, m.cols)
		for c := range rows[r] {
			rows[r][c] = renderEmpty
		}
	}

	for _, p := range path {
		if !m.InBounds(p) {
			return "", fmt.Errorf("%w: path position %v", ErrOutOfBounds, p)
		}
		if p != m.start && p != m.goal {
			rows[p.Row][p.Col] = renderPath
		}
	}
	rows[m.start.Row][m.start.Col] = renderStart
	rows[m.goal.Row][m.goal.Col] = renderGoal

	var b strings.Builder
	b.Grow(m.rows * (m.cols + 1))
	for r, line := range rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String(), nil
}
