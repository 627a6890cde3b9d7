package maze

import "fmt"

// Maze is a rectangular grid of Cells with fixed start and goal positions.
// It is immutable once built: construction deep-copies its input and no
// method mutates state, so a Maze may be shared across concurrent searches.
type Maze struct {
	rows, cols  int
	cells       [][]Cell
	start, goal Position
}

// New constructs a Maze from a complete mapping of every in-bounds Position
// to its Cell. Endpoints come from WithEndpoints, from documentary markers on
// the cells, or both (in which case they must agree).
//
// Returns ErrMalformedGrid for empty dimensions, missing or out-of-bounds
// cells, or duplicate markers; ErrStartGoalMismatch when markers disagree
// with the expected endpoints or an endpoint is out of bounds; and
// ErrNoEndpoints when no start/goal can be determined.
//
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, cells map[Position]Cell, opts ...Option) (*Maze, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrMalformedGrid, rows, cols)
	}

	var o mazeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(cells) != rows*cols {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrMalformedGrid, len(cells), rows*cols)
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}

	var (
		markedStart, markedGoal Position
		startCount, goalCount   int
	)
	for pos, cell := range cells {
		if pos.Row < 0 || pos.Row >= rows || pos.Col < 0 || pos.Col >= cols {
			return nil, fmt.Errorf("%w: cell at %v outside %dx%d", ErrMalformedGrid, pos, rows, cols)
		}
		grid[pos.Row][pos.Col] = cell
		switch cell.Marker {
		case MarkerStart:
			startCount++
			markedStart = pos
		case MarkerGoal:
			goalCount++
			markedGoal = pos
		}
	}
	// Map keys are unique and all in bounds, so len(cells) == rows*cols
	// guarantees every position is defined exactly once.

	if startCount > 1 || goalCount > 1 {
		return nil, fmt.Errorf("%w: expected at most one start and one goal marker, found S=%d G=%d",
			ErrMalformedGrid, startCount, goalCount)
	}

	m := &Maze{rows: rows, cols: cols, cells: grid}
	switch {
	case o.hasEndpoints:
		if startCount == 1 && markedStart != o.start {
			return nil, fmt.Errorf("%w: start marker at %v, expected %v", ErrStartGoalMismatch, markedStart, o.start)
		}
		if goalCount == 1 && markedGoal != o.goal {
			return nil, fmt.Errorf("%w: goal marker at %v, expected %v", ErrStartGoalMismatch, markedGoal, o.goal)
		}
		m.start, m.goal = o.start, o.goal
	case startCount == 1 && goalCount == 1:
		m.start, m.goal = markedStart, markedGoal
	case startCount+goalCount > 0:
		return nil, fmt.Errorf("%w: expected exactly one start and one goal marker, found S=%d G=%d",
			ErrMalformedGrid, startCount, goalCount)
	default:
		return nil, ErrNoEndpoints
	}

	if !m.InBounds(m.start) {
		return nil, fmt.Errorf("%w: start %v outside %dx%d", ErrStartGoalMismatch, m.start, rows, cols)
	}
	if !m.InBounds(m.goal) {
		return nil, fmt.Errorf("%w: goal %v outside %dx%d", ErrStartGoalMismatch, m.goal, rows, cols)
	}

	return m, nil
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.cols }

// Start returns the fixed start position.
func (m *Maze) Start() Position { return m.start }

// Goal returns the fixed goal position.
func (m *Maze) Goal() Position { return m.goal }

// InBounds reports whether p lies within [0,rows)×[0,cols).
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.rows && p.Col >= 0 && p.Col < m.cols
}

// Blocked reports whether movement out of p in direction d is forbidden.
// Positions outside the grid are always blocked.
func (m *Maze) Blocked(p Position, d Direction) bool {
	if !m.InBounds(p) {
		return true
	}
	return m.cells[p.Row][p.Col].Blocked[d]
}

// Passable reports whether p permits at least one outgoing move.
func (m *Maze) Passable(p Position) bool {
	if !m.InBounds(p) {
		return false
	}
	for d := Direction(0); d < NumDirections; d++ {
		if !m.cells[p.Row][p.Col].Blocked[d] {
			return true
		}
	}
	return false
}

// Neighbors returns the positions reachable from p in one step, in the fixed
// order N, S, E, W. Only the mask of p is consulted; reciprocity of the
// target cell is never required. Targets outside the grid are skipped.
// The order is part of the contract: it fixes DFS stack order and frontier
// insertion order, which makes all searches deterministic.
func (m *Maze) Neighbors(p Position) []Position {
	if !m.InBounds(p) {
		return nil
	}
	out := make([]Position, 0, NumDirections)
	for d := Direction(0); d < NumDirections; d++ {
		if m.cells[p.Row][p.Col].Blocked[d] {
			continue
		}
		if next := p.Shift(d); m.InBounds(next) {
			out = append(out, next)
		}
	}
	return out
}

// StepCost returns the uniform cost (1) of the permitted adjacent move
// from→to, or ErrInvalidStep if to is not a permitted immediate neighbor
// of from. A failure here during a search indicates a bug, not bad input.
func (m *Maze) StepCost(from, to Position) (int64, error) {
	if !m.InBounds(from) || !m.InBounds(to) {
		return 0, fmt.Errorf("%w: %v→%v out of bounds", ErrInvalidStep, from, to)
	}
	for d := Direction(0); d < NumDirections; d++ {
		if from.Shift(d) != to {
			continue
		}
		if m.cells[from.Row][from.Col].Blocked[d] {
			return 0, fmt.Errorf("%w: %v→%v blocked to the %s", ErrInvalidStep, from, to, d)
		}
		return 1, nil
	}
	return 0, fmt.Errorf("%w: %v and %v are not adjacent", ErrInvalidStep, from, to)
}

// LabelAt returns the display label of p, or DefaultLabel when the cell has
// none or p is out of bounds. Labels are display-only; no algorithm consults
// them.
func (m *Maze) LabelAt(p Position) rune {
	if !m.InBounds(p) {
		return DefaultLabel
	}
	if l := m.cells[p.Row][p.Col].Label; l != 0 {
		return l
	}
	return DefaultLabel
}

// Cell returns a copy of the cell at p.
// Returns ErrOutOfBounds if p lies outside the grid.
func (m *Maze) Cell(p Position) (Cell, error) {
	if !m.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	return m.cells[p.Row][p.Col], nil
}

// PathCost sums StepCost over every consecutive pair of path, validating each
// transition. An empty or single-position path costs 0. Any invalid
// transition yields ErrInvalidStep.
func (m *Maze) PathCost(path Path) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		c, err := m.StepCost(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("maze: path step %d: %w", i, err)
		}
		total += c
	}
	return total, nil
}

// String returns a short diagnostic summary of the maze.
func (m *Maze) String() string {
	return fmt.Sprintf("Maze(%dx%d start=%v goal=%v)", m.rows, m.cols, m.start, m.goal)
}
