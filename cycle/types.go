// Package cycle — sentinel errors and defaults for problem-cycle
// generation and batch solving.
package cycle

import "errors"

// Sentinel errors for cycle construction and solving.
var (
	// ErrNilMap indicates a nil *grid.Map.
	ErrNilMap = errors.New("cycle: map is nil")

	// ErrNilCycle indicates a nil *ProblemCycle.
	ErrNilCycle = errors.New("cycle: problem cycle is nil")

	// ErrNilExecutor indicates a nil heuristic executor.
	ErrNilExecutor = errors.New("cycle: executor is nil")

	// ErrNilRNG indicates a nil random source.
	ErrNilRNG = errors.New("cycle: rng is nil")

	// ErrBadLength indicates a requested cycle length below 2; a closed
	// loop of non-trivial problems needs at least two legs.
	ErrBadLength = errors.New("cycle: length must be at least 2")

	// ErrTooFewFreeCells indicates a map with fewer than two passable
	// cells, on which no non-trivial problem exists.
	ErrTooFewFreeCells = errors.New("cycle: map has fewer than two passable cells")

	// ErrGoalSampling indicates the generator could not sample a goal
	// satisfying the cycle constraints (pathological maps, e.g. two
	// free cells with an odd cycle length).
	ErrGoalSampling = errors.New("cycle: could not sample a distinct goal")
)

// DefaultLength is the problem-cycle length used when callers pass a
// non-positive length.
const DefaultLength = 100
