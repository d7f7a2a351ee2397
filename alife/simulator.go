package alife

import (
	"container/heap"
	"context"
	"time"

	"github.com/katalvlaran/heursearch/cycle"
	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/heuristic"
	"github.com/katalvlaran/heursearch/heuristic/executor"
)

// Simulation is the expansion-budgeted evolution driver. Construct
// with New, run once with Run; the driver is single-threaded and
// dispatches parallel work only through the cycle solver.
type Simulation struct {
	mp   *grid.Map
	pc   *cycle.ProblemCycle
	opts Options
}

// New validates inputs and binds the run configuration.
func New(mp *grid.Map, pc *cycle.ProblemCycle, opts ...Option) (*Simulation, error) {
	if mp == nil {
		return nil, ErrNilMap
	}
	if pc == nil {
		return nil, ErrNilCycle
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TimeLimit <= 0 {
		return nil, ErrBadTimeLimit
	}
	if cfg.InitialPopulation <= 0 {
		return nil, ErrBadPopulation
	}
	if cfg.MutationInterval <= 0 {
		return nil, ErrBadMutationInterval
	}

	return &Simulation{mp: mp, pc: pc, opts: cfg}, nil
}

// Run executes the simulation until the time limit elapses or every
// organism has expired, and returns all recorded organisms plus the
// best one.
func (s *Simulation) Run(ctx context.Context) (*SimulationResult, error) {
	rng := heuristic.RNGFromSeed(s.opts.Seed)

	// 1) Baseline: Manhattan through the interpreter fixes the default
	//    per-organism budget.
	bound := s.opts.ExpansionBound
	if bound <= 0 {
		baseSolver, err := cycle.NewSolver(s.mp, s.pc, executor.NewInterpreter(heuristic.Manhattan()))
		if err != nil {
			return nil, err
		}
		baseResults, err := baseSolver.Solve(ctx)
		if err != nil {
			return nil, err
		}
		baseExpansions := cycle.TotalExpansions(baseResults)
		if baseExpansions == cycle.Unsolved {
			return nil, ErrBaselineUnsolved
		}
		bound = ExpansionBoundMultiplier * baseExpansions
	}

	// 2) Seed the initial organisms, each fully evaluated on the cycle.
	var (
		queue   trackerQueue
		results []HeuristicResult
		best    HeuristicResult
		nextID  int
	)
	record := func(t *ExpansionTracker) {
		r := t.Result()
		results = append(results, r)
		if len(results) == 1 || best.WorseThan(r) {
			best = r
		}
	}

	for i := 0; i < s.opts.InitialPopulation; i++ {
		root := heuristic.Random(rng, -1, s.opts.Probs)
		t, err := s.spawn(ctx, root, bound, nextID)
		if err != nil {
			return nil, err
		}
		nextID++
		record(t)
		queue = append(queue, t)
	}
	heap.Init(&queue)

	// 3) Main loop: advance simulated time by one finished problem.
	var step uint64
	start := time.Now()
	for queue.Len() > 0 && time.Since(start) < s.opts.TimeLimit {
		step++

		// 3a) Pop the organism closest to finishing its problem.
		t := heap.Pop(&queue).(*ExpansionTracker)
		k := t.CurrentProblemExpansions()
		t.NextProblem()

		// 3b) Collect due mutations, starting with the popped organism.
		var parents []*heuristic.Heuristic
		if t.ConsumeMutation() {
			parents = append(parents, t.Heuristic())
		}

		// 3c) Every other organism spends k expansions; any that hit
		//     zero finished simultaneously and advance in this step.
		for _, other := range queue {
			other.Reduce(k)
			if other.CurrentProblemExpansions() == 0 {
				other.NextProblem()
			}
			if other.ConsumeMutation() {
				parents = append(parents, other.Heuristic())
			}
		}

		// 3d) Mutate the due parents; every child solves the full
		//     cycle and enters the simulation.
		for _, parent := range parents {
			child := heuristic.Mutate(rng, parent.Root, s.opts.Probs)
			ct, err := s.spawn(ctx, child, bound, nextID)
			if err != nil {
				return nil, err
			}
			nextID++
			record(ct)
			queue = append(queue, ct)
		}

		// 3e) Survivors re-enter; the dead do not.
		if !t.Expired() {
			queue = append(queue, t)
		}

		// 3f) Bulk Reduce and appends broke the heap order; one O(n)
		//     rebuild per step restores it.
		heap.Init(&queue)

		if s.opts.OnStep != nil {
			s.opts.OnStep(step, queue.Len())
		}
	}

	return &SimulationResult{Heuristics: results, Best: best}, nil
}

// spawn evaluates one expression over the whole cycle and wraps it in
// a tracker.
func (s *Simulation) spawn(ctx context.Context, root heuristic.Node, bound, id int) (*ExpansionTracker, error) {
	solver, err := cycle.NewSolver(s.mp, s.pc, executor.Compile(root))
	if err != nil {
		return nil, err
	}
	res, err := solver.Solve(ctx)
	if err != nil {
		return nil, err
	}

	t, err := NewTracker(res, bound, s.opts.MutationInterval, heuristic.New(root))
	if err != nil {
		return nil, err
	}
	t.id = id

	return t, nil
}

// trackerQueue is a min-heap of organisms: fewest remaining expansions
// first, creation order breaking ties so extraction is deterministic.
type trackerQueue []*ExpansionTracker

func (q trackerQueue) Len() int { return len(q) }

func (q trackerQueue) Less(i, j int) bool {
	if q[i].currentProblemExpansions != q[j].currentProblemExpansions {
		return q[i].currentProblemExpansions < q[j].currentProblemExpansions
	}

	return q[i].id < q[j].id
}

func (q trackerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x; called by container/heap only.
func (q *trackerQueue) Push(x interface{}) { *q = append(*q, x.(*ExpansionTracker)) }

// Pop removes and returns the last element; called by container/heap only.
func (q *trackerQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
