// Package mazetext reads and writes the whitespace-tokenized text encoding of
// a grid maze.
//
// Each non-blank input line describes one row, top to bottom. Each
// whitespace-separated token describes one cell:
//
//	<N><S><E><W>[label][S|G]
//
//   - The first four runes are permission bits in North, South, East, West
//     order. '1' permits movement out of the cell in that direction, '0'
//     forbids it. Bits describe outgoing moves only, so two adjacent cells
//     may disagree and produce a one-way passage.
//   - An optional letter after the bits is the cell's display label.
//   - An optional trailing 'S' or 'G' marks the documented start or goal.
//
// Example (2×2, start top-left, goal bottom-right):
//
//	0110S 0011
//	1010  1001G
//
// What to expect:
//
//   - Parse / ParseFile - decode a maze, validating the token grammar,
//     rectangularity, and marker placement.
//   - Format - re-emit a maze in the same encoding with normalized spacing.
//   - CanonicalStart / CanonicalGoal - the fixed endpoints of the classic
//     5×5 layout shipped in testdata, usable with WithExpectedEndpoints.
//
// All grammar violations wrap maze.ErrMalformedGrid, so callers can match
// either the precise mazetext sentinel or the broad maze one.
package mazetext
