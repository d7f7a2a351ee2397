package genetic

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heursearch/cycle"
	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/heuristic"
	"github.com/katalvlaran/heursearch/heuristic/executor"
)

// individual couples one candidate tree with its evaluation.
type individual struct {
	root    heuristic.Node
	expr    string
	size    int
	fitness float64
}

// Algorithm is the generational evolution driver. Construct with New,
// run once with Run; the driver itself is single-threaded and only
// dispatches parallel work (cycle evaluation, mutation).
type Algorithm struct {
	mp   *grid.Map
	pc   *cycle.ProblemCycle
	opts Options
}

// New validates inputs and binds the run configuration.
func New(mp *grid.Map, pc *cycle.ProblemCycle, opts ...Option) (*Algorithm, error) {
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
	if cfg.PopulationSize < 2 || cfg.PopulationSize > MaxPopulationSize {
		return nil, ErrBadPopulationSize
	}
	if cfg.TimeLimit <= 0 {
		return nil, ErrBadTimeLimit
	}

	return &Algorithm{mp: mp, pc: pc, opts: cfg}, nil
}

// Run executes generations until the time limit elapses (or the
// optional generation cap is reached) and returns the archive plus the
// full per-generation history.
//
// Determinism: all random draws come from one stream seeded with
// Options.Seed; parallel mutation uses substreams pre-derived in
// population order, so a fixed seed with a generation cap reproduces
// the run exactly.
func (ga *Algorithm) Run(ctx context.Context) (*Result, error) {
	rng := heuristic.RNGFromSeed(ga.opts.Seed)

	// 1) Solve the baseline once: Manhattan through the interpreter,
	//    establishing the expansion and path-length denominators.
	baseSolver, err := cycle.NewSolver(ga.mp, ga.pc, executor.NewInterpreter(heuristic.Manhattan()))
	if err != nil {
		return nil, err
	}
	baseResults, err := baseSolver.Solve(ctx)
	if err != nil {
		return nil, err
	}
	baseExpansions := cycle.TotalExpansions(baseResults)
	basePathLen := cycle.TotalPathLength(baseResults)
	if baseExpansions == cycle.Unsolved {
		return nil, ErrBaselineUnsolved
	}

	// 2) Seed generation zero with small random trees.
	population := make([]individual, ga.opts.PopulationSize)
	for i := range population {
		root := heuristic.Random(rng, 1+rng.Intn(maxInitialSize), ga.opts.Probs)
		population[i] = individual{root: root, expr: root.String(), size: root.Size()}
	}

	var (
		archive    []individual
		inArchive  = map[string]bool{}
		history    [][]GenerationEntry
		generation int
	)

	start := time.Now()
	for time.Since(start) < ga.opts.TimeLimit &&
		(ga.opts.MaxGenerations == 0 || generation < ga.opts.MaxGenerations) {
		// 3) Evaluate every member on the full cycle (§cycle parallel
		//    batch solver), in population order.
		for i := range population {
			if err = ga.evaluate(ctx, &population[i], baseExpansions, basePathLen); err != nil {
				return nil, err
			}
		}

		// 4) Snapshot the generation into the history.
		elapsed := uint64(time.Since(start).Milliseconds())
		snapshot := make([]GenerationEntry, len(population))
		for i := range population {
			snapshot[i] = GenerationEntry{
				Heuristic:     population[i].expr,
				Fitness:       population[i].fitness,
				ElapsedMillis: elapsed,
			}
		}
		history = append(history, snapshot)

		// 5) Merge into the archive: first-seen wins on duplicates and
		//    on fitness ties (stable sort), truncated to the elite cap.
		for i := range population {
			if !inArchive[population[i].expr] {
				inArchive[population[i].expr] = true
				archive = append(archive, population[i])
			}
		}
		sort.SliceStable(archive, func(i, j int) bool {
			return archive[i].fitness < archive[j].fitness
		})
		if len(archive) > MaxBestIndividuals {
			for _, dropped := range archive[MaxBestIndividuals:] {
				delete(inArchive, dropped.expr)
			}
			archive = archive[:MaxBestIndividuals]
		}

		if ga.opts.OnGeneration != nil {
			ga.opts.OnGeneration(generation, archive[0].fitness)
		}
		generation++

		if time.Since(start) >= ga.opts.TimeLimit {
			break
		}
		if ga.opts.MaxGenerations > 0 && generation >= ga.opts.MaxGenerations {
			break
		}

		// 6) Breed the next generation: fitness-weighted sampling with
		//    replacement, then mutate every sampled parent in parallel
		//    on pre-derived RNG substreams.
		population = ga.breed(rng, population)
	}

	// 7) Package the archive.
	res := &Result{
		BestHeuristics: make([]string, len(archive)),
		BestFitnesses:  make([]float64, len(archive)),
		History:        history,
	}
	for i := range archive {
		res.BestHeuristics[i] = archive[i].expr
		res.BestFitnesses[i] = archive[i].fitness
	}

	return res, nil
}

// evaluate scores one individual on the whole cycle.
func (ga *Algorithm) evaluate(ctx context.Context, ind *individual, baseExpansions, basePathLen int) error {
	solver, err := cycle.NewSolver(ga.mp, ga.pc, executor.Compile(ind.root))
	if err != nil {
		return err
	}
	results, err := solver.Solve(ctx)
	if err != nil {
		return err
	}

	ind.fitness = Fitness(
		cycle.TotalExpansions(results),
		cycle.TotalPathLength(results),
		baseExpansions,
		basePathLen,
		ind.size,
	)

	return nil
}

// breed samples parents proportionally to their fitness weights and
// mutates each sample into a child.
func (ga *Algorithm) breed(rng *rand.Rand, population []individual) []individual {
	fitness := make([]float64, len(population))
	for i := range population {
		fitness[i] = population[i].fitness
	}
	weights, total := samplingWeights(fitness)

	// Draw all parents on the sequential stream first, then derive one
	// substream per child so the parallel section stays deterministic.
	parents := make([]heuristic.Node, len(population))
	for i := range parents {
		parents[i] = population[pickWeighted(rng, weights, total)].root
	}
	streams := make([]*rand.Rand, len(parents))
	for i := range streams {
		streams[i] = heuristic.DeriveRNG(rng, uint64(i))
	}

	next := make([]individual, len(parents))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range parents {
		idx := i
		g.Go(func() error {
			child := heuristic.Mutate(streams[idx], parents[idx], ga.opts.Probs)
			next[idx] = individual{root: child, expr: child.String(), size: child.Size()}

			return nil
		})
	}
	// Mutation cannot fail; Wait only synchronizes.
	_ = g.Wait()

	return next
}

// pickWeighted draws an index with probability weight[i]/total; a zero
// total falls back to a uniform draw.
func pickWeighted(rng *rand.Rand, weights []float64, total float64) int {
	if total <= 0 {
		return rng.Intn(len(weights))
	}

	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return i
		}
	}

	return len(weights) - 1
}
