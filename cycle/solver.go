package cycle

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/heuristic/executor"
	"github.com/katalvlaran/heursearch/search"
)

// Unsolved is the aggregate sentinel: any unsolved problem poisons
// TotalExpansions and TotalPathLength with this value, which the
// fitness layer converts to +Inf.
const Unsolved = math.MaxInt

// Solver evaluates one heuristic over every problem of a cycle.
// The map, the cycle and the compiled heuristic are all immutable, so
// one Solver may be reused for repeated Solve calls.
type Solver struct {
	mp    *grid.Map
	cycle *ProblemCycle
	exec  executor.Executor
}

// NewSolver validates and binds the three collaborators.
func NewSolver(mp *grid.Map, pc *ProblemCycle, exec executor.Executor) (*Solver, error) {
	if mp == nil {
		return nil, ErrNilMap
	}
	if pc == nil {
		return nil, ErrNilCycle
	}
	if exec == nil {
		return nil, ErrNilExecutor
	}

	return &Solver{mp: mp, cycle: pc, exec: exec}, nil
}

// Solve runs every problem of the cycle concurrently across the
// available cores and returns results in problem order.
//
// Concurrency: problems share no state — each worker owns its A*
// buffers and the executor is immutable — so the only coordination is
// the work-limit of the errgroup. Each result is written at its own
// index; no locks are needed.
//
// A* itself is never interrupted: cancellation via ctx is observed
// between problems, making one problem the smallest cancellation unit.
//
// Complexity: O(Σ per-problem A* cost / cores) wall-clock.
func (s *Solver) Solve(ctx context.Context) ([]search.ProblemResult, error) {
	results := make([]search.ProblemResult, s.cycle.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	var idx int
	for idx = 0; idx < s.cycle.Len(); idx++ {
		i := idx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := search.Solve(s.mp, s.cycle.Get(i), s.exec)
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// TotalExpansions sums per-problem expansion counts, or returns
// Unsolved if any problem failed.
func TotalExpansions(results []search.ProblemResult) int {
	total := 0
	for i := range results {
		if !results[i].Solved {
			return Unsolved
		}
		total += len(results[i].Expansions)
	}

	return total
}

// TotalPathLength sums per-problem solution-path lengths, or returns
// Unsolved if any problem failed.
func TotalPathLength(results []search.ProblemResult) int {
	total := 0
	for i := range results {
		if !results[i].Solved {
			return Unsolved
		}
		total += len(results[i].SolutionPath)
	}

	return total
}
