package queens

import (
	"fmt"
	"math/rand"
	"time"
)

// HillClimb runs one climb from a random board of size n.
//
// Each step scores every neighbor and moves to a strictly better one when it
// exists, breaking ties uniformly at random. Plateau moves are taken while
// the consecutive sideways budget lasts; a strict improvement resets it. The
// climb stops on a solution, a local minimum, or the step budget.
//
// Returns ErrBoardSize for n <= 0 and ErrOptionViolation for invalid options.
func HillClimb(n int, opts ...Option) (*Result, error) {
	o, rng, err := prepare(n, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	board := Random(n, rng)
	res := &Result{StartConflicts: board.Conflicts()}

	board, steps, sideways := climb(board, rng, o)
	res.Board = board
	res.Steps = steps
	res.Sideways = sideways
	res.FinalConflicts = board.Conflicts()
	res.Success = res.FinalConflicts == 0
	res.Elapsed = time.Since(start)
	return res, nil
}

// RandomRestart repeats HillClimb with fresh random boards until a solution
// appears or the restart budget runs out. Steps and sideways counts accumulate
// across attempts; Restarts counts the attempts beyond the first.
func RandomRestart(n int, opts ...Option) (*Result, error) {
	o, rng, err := prepare(n, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{}
	for attempt := 0; attempt < o.maxRestarts; attempt++ {
		board := Random(n, rng)
		if attempt == 0 {
			res.StartConflicts = board.Conflicts()
		}
		res.Restarts = attempt

		board, steps, sideways := climb(board, rng, o)
		res.Steps += steps
		res.Sideways += sideways
		res.Board = board
		res.FinalConflicts = board.Conflicts()
		if res.FinalConflicts == 0 {
			res.Success = true
			break
		}
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// prepare validates the size, folds the options, and builds the random source.
func prepare(n int, opts []Option) (options, *rand.Rand, error) {
	if n <= 0 {
		return options{}, nil, fmt.Errorf("%w: %d", ErrBoardSize, n)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return options{}, nil, o.err
	}
	seed := o.seed
	if !o.hasSeed {
		seed = time.Now().UnixNano()
	}
	return o, rand.New(rand.NewSource(seed)), nil
}

// climb performs one hill-climbing run and returns the final board with the
// accepted move counts.
func climb(board Board, rng *rand.Rand, o options) (Board, int, int) {
	current := board.Clone()
	conflicts := current.Conflicts()
	steps, sideways, plateau := 0, 0, 0

	for conflicts > 0 && steps < o.maxSteps {
		move, best, ok := bestMove(current, conflicts, rng)
		if !ok {
			break // strict local minimum, every neighbor is worse
		}
		if best == conflicts {
			if plateau >= o.maxSideways {
				break
			}
			plateau++
			sideways++
		} else {
			plateau = 0
		}
		current = current.Apply(move)
		conflicts = best
		steps++
	}
	return current, steps, sideways
}

// bestMove scores every neighbor and returns a uniformly random move among
// those with the lowest conflict count, provided it does not exceed limit.
func bestMove(b Board, limit int, rng *rand.Rand) (Move, int, bool) {
	var (
		chosen Move
		best   = limit + 1
		seen   = 0
	)
	for _, m := range b.Moves() {
		c := b.Apply(m).Conflicts()
		switch {
		case c < best:
			best = c
			chosen = m
			seen = 1
		case c == best:
			// Reservoir pick keeps each tied move equally likely.
			seen++
			if rng.Intn(seen) == 0 {
				chosen = m
			}
		}
	}
	if best > limit {
		return Move{}, 0, false
	}
	return chosen, best, true
}
