package mazetext

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/mazegrid/maze"
)

// Parse decodes a tokenized maze from r and constructs the validated grid.
// Blank lines are ignored; all remaining lines must carry the same number of
// tokens. Marker placement rules (exactly one S and one G, agreement with
// WithExpectedEndpoints) are enforced by maze construction.
func Parse(r io.Reader, opts ...Option) (*maze.Maze, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	rows, err := scanRows(r)
	if err != nil {
		return nil, err
	}

	cols := len(rows[0])
	cells := make(map[maze.Position]maze.Cell, len(rows)*cols)
	for ri, tokens := range rows {
		if len(tokens) != cols {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d",
				ErrNonRectangular, ri, len(tokens), cols)
		}
		for ci, tok := range tokens {
			cell, err := parseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d col %d %q", err, ri, ci, tok)
			}
			cells[maze.Position{Row: ri, Col: ci}] = cell
		}
	}

	var mopts []maze.Option
	if o.hasEndpoints {
		mopts = append(mopts, maze.WithEndpoints(o.start, o.goal))
	}
	return maze.New(len(rows), cols, cells, mopts...)
}

// ParseFile opens path and decodes it via Parse.
func ParseFile(path string, opts ...Option) (*maze.Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mazetext: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (file %s)", err, path)
	}
	return m, nil
}

// scanRows splits the input into per-row token slices, dropping blank lines.
func scanRows(r io.Reader) ([][]string, error) {
	var rows [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		tokens := strings.Fields(sc.Text())
		if len(tokens) == 0 {
			continue
		}
		rows = append(rows, tokens)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mazetext: reading input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	return rows, nil
}

// parseToken decodes a single cell token: four permission bits in N,S,E,W
// order, then at most one label letter and at most one 'S'/'G' marker, in any
// order. '1' permits the move, so the stored Blocked flag is the inversion.
func parseToken(tok string) (maze.Cell, error) {
	runes := []rune(tok)
	if len(runes) < maze.NumDirections {
		return maze.Cell{}, ErrBadToken
	}

	var cell maze.Cell
	for d := 0; d < maze.NumDirections; d++ {
		switch runes[d] {
		case '1':
			// permitted
		case '0':
			cell.Blocked[maze.Direction(d)] = true
		default:
			return maze.Cell{}, ErrBadToken
		}
	}

	for _, r := range runes[maze.NumDirections:] {
		switch {
		case r == 'S':
			if cell.Marker != maze.MarkerNone {
				return maze.Cell{}, ErrBadToken
			}
			cell.Marker = maze.MarkerStart
		case r == 'G':
			if cell.Marker != maze.MarkerNone {
				return maze.Cell{}, ErrBadToken
			}
			cell.Marker = maze.MarkerGoal
		case unicode.IsLetter(r):
			if cell.Label != 0 {
				return maze.Cell{}, ErrBadToken
			}
			cell.Label = r
		default:
			return maze.Cell{}, ErrBadToken
		}
	}
	return cell, nil
}
