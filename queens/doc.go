// Package queens solves the n-queens puzzle with stochastic hill climbing.
//
// A board of size n is a slice board[col] = row, so every column holds exactly
// one queen and only rows and diagonals can conflict. The neighborhood of a
// board is every single-queen move within its own column, which gives
// n×(n-1) neighbors per step.
//
// The climber is the classic variant with sideways moves: it always steps to
// a neighbor with strictly fewer conflicts when one exists, walks across
// plateaus for a bounded number of equal-conflict moves, and stops when stuck.
// RandomRestart wraps it with fresh random boards until a solution appears or
// the restart budget runs out.
//
// All randomness flows from a single injected seed (WithSeed), so every run
// is reproducible. Ties among equally good neighbors are broken uniformly at
// random from the same source.
package queens
