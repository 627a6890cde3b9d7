package queens

import (
	"math/rand"
	"strings"
)

// Random returns a board of size n with each queen on a uniformly random row.
func Random(n int, rng *rand.Rand) Board {
	b := make(Board, n)
	for c := range b {
		b[c] = rng.Intn(n)
	}
	return b
}

// Clone returns an independent copy of b.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	copy(out, b)
	return out
}

// Conflicts counts the attacking pairs: two queens in the same row or on the
// same diagonal. Columns cannot conflict by construction. A solved board has
// zero conflicts.
func (b Board) Conflicts() int {
	count := 0
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i] == b[j] {
				count++
				continue
			}
			if abs(b[i]-b[j]) == j-i {
				count++
			}
		}
	}
	return count
}

// Moves enumerates every single-queen relocation within its own column, in
// column-major then row order. The current row of each queen is excluded.
func (b Board) Moves() []Move {
	n := len(b)
	out := make([]Move, 0, n*(n-1))
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			if r == b[c] {
				continue
			}
			out = append(out, Move{Col: c, Row: r})
		}
	}
	return out
}

// Apply returns a copy of b with m applied. b itself is untouched.
func (b Board) Apply(m Move) Board {
	out := b.Clone()
	out[m.Col] = m.Row
	return out
}

// String renders the board with 'Q' for queens and '.' elsewhere, one rank
// per line, row 0 on top.
func (b Board) String() string {
	n := len(b)
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if b[c] == r {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
