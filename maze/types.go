// Package maze defines the core grid types: Position, Direction, Cell, Path,
// and the construction options for Maze.
package maze

// Position identifies a grid cell by zero-based (row, column).
// It is an immutable value type; equality and map hashing are by value.
type Position struct {
	Row, Col int
}

// Shift returns the position one step from p in direction d.
func (p Position) Shift(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Direction enumerates the four grid directions in the canonical
// neighbor-expansion order: North, South, East, West.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West

	// NumDirections is the number of grid directions.
	NumDirections = 4
)

// Offset returns the (row, col) delta of one step in direction d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	default: // West
		return 0, -1
	}
}

// String returns the single-letter name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	default:
		return "W"
	}
}

// Marker is a documentary start/goal annotation carried by a cell from its
// source encoding. Markers never affect adjacency; construction only checks
// them against the expected endpoints.
type Marker uint8

const (
	// MarkerNone means the cell carries no documentary annotation.
	MarkerNone Marker = iota
	// MarkerStart marks the cell as the documented start.
	MarkerStart
	// MarkerGoal marks the cell as the documented goal.
	MarkerGoal
)

// DefaultLabel is returned by LabelAt for cells without an explicit label.
const DefaultLabel = '.'

// Cell holds the directional permissions and display metadata of one grid
// cell. Blocked is indexed by Direction: true forbids movement out of this
// cell in that direction. The flag of the target cell is never consulted, so
// permissions may be non-reciprocal.
type Cell struct {
	Blocked [NumDirections]bool
	Label   rune // 0 = no label; LabelAt substitutes DefaultLabel
	Marker  Marker
}

// Path is an ordered sequence of positions from start to goal inclusive.
// An empty Path signals "no path found" and is a normal outcome, not an error.
type Path []Position

// Option configures Maze construction via functional arguments.
// Invalid options are recorded internally and surfaced as ErrOptionViolation
// when New is invoked.
type Option func(*mazeOptions)

type mazeOptions struct {
	start, goal  Position
	hasEndpoints bool

	err error
}

// WithEndpoints fixes the expected start and goal coordinates. If the cells
// carry documentary markers, construction verifies the markers against these
// coordinates and fails with ErrStartGoalMismatch on disagreement.
func WithEndpoints(start, goal Position) Option {
	return func(o *mazeOptions) {
		o.start = start
		o.goal = goal
		o.hasEndpoints = true
	}
}
