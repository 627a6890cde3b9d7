package report

import (
	"strings"

	"github.com/katalvlaran/mazegrid/maze"
)

// LabelSequence renders path as the arrow-joined sequence of cell labels,
// tagging the maze endpoints: "A(S) -> B -> C(G)". An empty path yields
// "(no path)".
func LabelSequence(m *maze.Maze, path maze.Path) string {
	if len(path) == 0 {
		return "(no path)"
	}
	parts := make([]string, 0, len(path))
	for _, p := range path {
		var b strings.Builder
		b.WriteRune(m.LabelAt(p))
		if p == m.Start() {
			b.WriteString("(S)")
		}
		if p == m.Goal() {
			b.WriteString("(G)")
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " -> ")
}
