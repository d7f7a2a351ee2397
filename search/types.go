// Package search defines the problem/result types, the open-list state
// and the sentinel errors of the A* solver.
package search

import "errors"

// Sentinel errors for solver input validation. These are caller bugs:
// the cycle generator only emits passable, in-range, non-trivial pairs.
var (
	// ErrNilMap indicates a nil *grid.Map.
	ErrNilMap = errors.New("search: map is nil")

	// ErrNilExecutor indicates a nil heuristic executor.
	ErrNilExecutor = errors.New("search: executor is nil")

	// ErrCellOutOfRange indicates a start or goal index outside the map.
	ErrCellOutOfRange = errors.New("search: cell index out of range")

	// ErrCellUnpassable indicates a start or goal on a wall.
	ErrCellUnpassable = errors.New("search: cell is not passable")
)

// EdgeCost is the uniform cost of moving between adjacent cells.
const EdgeCost float32 = 1

// Problem is one start/goal query over a shared map.
type Problem struct {
	Start int
	Goal  int
}

// State is one open-list entry. F is always G+H; the three fields
// order entries totally (F, then G, then Position) so that
// min-extraction is deterministic given equal priorities.
type State struct {
	Position int
	G        float32
	H        float32
	F        float32
}

// NewState builds a State, deriving F = G+H.
func NewState(position int, g, h float32) State {
	return State{Position: position, G: g, H: h, F: g + h}
}

// less is the open-list priority: smaller F first, ties by smaller G,
// then by smaller cell index.
func (s State) less(other State) bool {
	if s.F != other.F {
		return s.F < other.F
	}
	if s.G != other.G {
		return s.G < other.G
	}

	return s.Position < other.Position
}

// ProblemResult reports one solved (or exhausted) search.
type ProblemResult struct {
	// Expansions is the chronological sequence of cells popped from the
	// open list (stale duplicates excluded, the goal pop included).
	Expansions []int

	// NumTraversals counts edge relaxations that improved a cell's g.
	NumTraversals int

	// SolutionPath runs goal→start, both endpoints included. Empty when
	// the problem was not solved.
	SolutionPath []int

	// Solved reports whether the goal was reached.
	Solved bool
}
