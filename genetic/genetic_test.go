package genetic_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/cycle"
	"github.com/katalvlaran/heursearch/genetic"
	"github.com/katalvlaran/heursearch/grid"
	"github.com/katalvlaran/heursearch/heuristic"
)

func fixture(t *testing.T, n, m, length int, seed int64) (*grid.Map, *cycle.ProblemCycle) {
	t.Helper()
	mp, err := grid.NewMap(n, m, make([]grid.Tile, n*m))
	require.NoError(t, err)
	pc, err := cycle.New(mp, length, heuristic.RNGFromSeed(seed))
	require.NoError(t, err)

	return mp, pc
}

func TestNew_Validation(t *testing.T) {
	mp, pc := fixture(t, 4, 4, 4, 1)

	_, err := genetic.New(nil, pc)
	require.ErrorIs(t, err, genetic.ErrNilMap)

	_, err = genetic.New(mp, nil)
	require.ErrorIs(t, err, genetic.ErrNilCycle)

	_, err = genetic.New(mp, pc, genetic.WithPopulationSize(1))
	require.ErrorIs(t, err, genetic.ErrBadPopulationSize)

	_, err = genetic.New(mp, pc, genetic.WithPopulationSize(genetic.MaxPopulationSize+1))
	require.ErrorIs(t, err, genetic.ErrBadPopulationSize)

	_, err = genetic.New(mp, pc, genetic.WithTimeLimit(0))
	require.ErrorIs(t, err, genetic.ErrBadTimeLimit)
}

func TestFitness(t *testing.T) {
	// Matching the baseline with a size-3 tree scores exactly 203.
	require.InDelta(t, 203.0, genetic.Fitness(100, 50, 100, 50, 3), 1e-12)

	// Halving expansions halves the expansion factor.
	require.InDelta(t, 101.5, genetic.Fitness(50, 50, 100, 50, 3), 1e-12)

	// Path degradation is squared.
	require.InDelta(t, 4*203.0, genetic.Fitness(100, 100, 100, 50, 3), 1e-12)

	// Unsolved cycles poison the score.
	require.True(t, math.IsInf(genetic.Fitness(cycle.Unsolved, cycle.Unsolved, 100, 50, 3), 1))
	require.True(t, math.IsInf(genetic.Fitness(100, cycle.Unsolved, 100, 50, 3), 1))
}

func TestRun_HistoryShapeAndArchive(t *testing.T) {
	mp, pc := fixture(t, 5, 5, 6, 2)

	ga, err := genetic.New(mp, pc,
		genetic.WithSeed(7),
		genetic.WithTimeLimit(time.Minute),
		genetic.WithMaxGenerations(4),
		genetic.WithPopulationSize(8),
	)
	require.NoError(t, err)

	res, err := ga.Run(context.Background())
	require.NoError(t, err)

	// History: one snapshot per generation, one entry per individual.
	require.Len(t, res.History, 4)
	for g, snapshot := range res.History {
		require.Len(t, snapshot, 8, "generation %d", g)
		for _, entry := range snapshot {
			require.NotEmpty(t, entry.Heuristic)
			_, perr := heuristic.Parse(entry.Heuristic)
			require.NoError(t, perr)
		}
	}

	// Archive: bounded, aligned, sorted ascending, deduplicated.
	require.NotEmpty(t, res.BestHeuristics)
	require.LessOrEqual(t, len(res.BestHeuristics), genetic.MaxBestIndividuals)
	require.Len(t, res.BestFitnesses, len(res.BestHeuristics))
	seen := map[string]bool{}
	for i := 1; i < len(res.BestFitnesses); i++ {
		require.LessOrEqual(t, res.BestFitnesses[i-1], res.BestFitnesses[i])
	}
	for _, expr := range res.BestHeuristics {
		require.False(t, seen[expr], "archive duplicate %q", expr)
		seen[expr] = true
	}
}

// TestRun_Deterministic is invariant 8: a fixed seed and a fixed
// generation cap reproduce the run exactly.
func TestRun_Deterministic(t *testing.T) {
	mp, pc := fixture(t, 6, 6, 8, 3)

	run := func() *genetic.Result {
		ga, err := genetic.New(mp, pc,
			genetic.WithSeed(42),
			genetic.WithTimeLimit(time.Minute),
			genetic.WithMaxGenerations(3),
			genetic.WithPopulationSize(6),
		)
		require.NoError(t, err)
		res, err := ga.Run(context.Background())
		require.NoError(t, err)

		return res
	}

	a, b := run(), run()
	require.Equal(t, a.BestHeuristics, b.BestHeuristics)
	require.Equal(t, a.BestFitnesses, b.BestFitnesses)
	require.Equal(t, a.History, b.History)
}

// TestRun_FindsBaselineQuality is scenario S5: on a trivial open map a
// short run discovers something at least as fit as Manhattan.
func TestRun_FindsBaselineQuality(t *testing.T) {
	mp, pc := fixture(t, 5, 5, 6, 4)

	ga, err := genetic.New(mp, pc,
		genetic.WithSeed(42),
		genetic.WithTimeLimit(2*time.Second),
	)
	require.NoError(t, err)

	res, err := ga.Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, res.BestFitnesses)

	// Manhattan scores (1)²·(1)·(200+3) = 203 against itself.
	require.LessOrEqual(t, res.BestFitnesses[0], 203.0)
}

func TestRun_GenerationHook(t *testing.T) {
	mp, pc := fixture(t, 4, 4, 4, 5)

	var calls []int
	ga, err := genetic.New(mp, pc,
		genetic.WithSeed(1),
		genetic.WithTimeLimit(time.Minute),
		genetic.WithMaxGenerations(3),
		genetic.WithPopulationSize(4),
		genetic.WithGenerationHook(func(gen int, best float64) {
			calls = append(calls, gen)
			require.False(t, math.IsNaN(best))
		}),
	)
	require.NoError(t, err)

	_, err = ga.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, calls)
}
