package cycle

import (
	"math/rand"

	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/search"
)

// maxSampleFactor bounds goal resampling: the generator tries at most
// maxSampleFactor times the map's cell count (grid.Map.Len) draws per
// goal before giving up with ErrGoalSampling.
const maxSampleFactor = 64

// ProblemCycle is an immutable closed loop of start/goal problems.
type ProblemCycle struct {
	problems []search.Problem
}

// New generates a cycle of the given length over mp using rng.
// length ≤ 0 selects DefaultLength. The walk starts at a random free
// cell, hops to length−1 random free goals (each distinct from its
// start, the last also distinct from the origin) and closes the loop
// back to the origin.
//
// Complexity: O(length) expected draws on non-degenerate maps.
func New(mp *grid.Map, length int, rng *rand.Rand) (*ProblemCycle, error) {
	// 1) Validate inputs.
	if mp == nil {
		return nil, ErrNilMap
	}
	if rng == nil {
		return nil, ErrNilRNG
	}
	if length <= 0 {
		length = DefaultLength
	}
	if length < 2 {
		return nil, ErrBadLength
	}
	if mp.FreeCells() < 2 {
		return nil, ErrTooFewFreeCells
	}

	// 2) Random origin; every leg chains off the previous goal.
	origin, err := mp.RandomFreePosition(rng)
	if err != nil {
		return nil, err
	}

	problems := make([]search.Problem, 0, length)
	start := origin
	var goal int
	for i := 0; i < length-1; i++ {
		// The goal of the final sampled leg must also differ from the
		// origin, or closing the loop would create a trivial problem.
		goal, err = samplePosition(mp, rng, start, origin, i == length-2)
		if err != nil {
			return nil, err
		}
		problems = append(problems, search.Problem{Start: start, Goal: goal})
		start = goal
	}

	// 3) Close the loop.
	problems = append(problems, search.Problem{Start: start, Goal: origin})

	return &ProblemCycle{problems: problems}, nil
}

// samplePosition draws a free cell distinct from start (and, when
// avoidOrigin is set, from origin), bounded to keep pathological maps
// from spinning forever.
func samplePosition(mp *grid.Map, rng *rand.Rand, start, origin int, avoidOrigin bool) (int, error) {
	limit := maxSampleFactor * mp.Len()
	for attempt := 0; attempt < limit; attempt++ {
		pos, err := mp.RandomFreePosition(rng)
		if err != nil {
			return 0, err
		}
		if pos == start {
			continue
		}
		if avoidOrigin && pos == origin {
			continue
		}

		return pos, nil
	}

	return 0, ErrGoalSampling
}

// Len returns the number of problems in the cycle.
func (pc *ProblemCycle) Len() int { return len(pc.problems) }

// Get returns problem i.
func (pc *ProblemCycle) Get(i int) search.Problem { return pc.problems[i] }

// Problems returns the full ordered problem list. The slice is shared
// with the cycle and must not be mutated.
func (pc *ProblemCycle) Problems() []search.Problem { return pc.problems }
