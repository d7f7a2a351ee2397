package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/alife"
	"github.com/katalvlaran/heursearch/genetic"
	"github.com/katalvlaran/heursearch/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

func TestSaveSimulation_RoundTrip(t *testing.T) {
	st := openStore(t)

	res := &alife.SimulationResult{
		Heuristics: []alife.HeuristicResult{
			{Heuristic: "(+ deltaX deltaY)", Expansions: "4,8", Traversals: "4,8",
				SolutionPathLens: "2,2", Creation: 1700000000000, Score: 6},
			{Heuristic: "deltaX", Expansions: "9,9", Traversals: "8,8",
				SolutionPathLens: "2,2", Creation: 1700000000001, Score: 9},
		},
	}
	res.Best = res.Heuristics[0]

	require.NoError(t, st.SaveSimulation(1, res))

	got, err := st.BestSimulated(1, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, res.Heuristics[0], got[0], "lowest score first")
	require.Equal(t, res.Heuristics[1], got[1])
}

func TestSaveSimulation_RunsAreIsolated(t *testing.T) {
	st := openStore(t)

	a := &alife.SimulationResult{Heuristics: []alife.HeuristicResult{{Heuristic: "x1", Score: 3}}}
	a.Best = a.Heuristics[0]
	b := &alife.SimulationResult{Heuristics: []alife.HeuristicResult{{Heuristic: "y1", Score: 4}}}
	b.Best = b.Heuristics[0]

	require.NoError(t, st.SaveSimulation(1, a))
	require.NoError(t, st.SaveSimulation(2, b))

	got, err := st.BestSimulated(2, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "y1", got[0].Heuristic)
}

func TestSaveGenetic(t *testing.T) {
	st := openStore(t)

	res := &genetic.Result{
		BestHeuristics: []string{"(+ deltaX deltaY)", "deltaY"},
		BestFitnesses:  []float64{203, 250},
		History: [][]genetic.GenerationEntry{
			{{Heuristic: "deltaY", Fitness: 250, ElapsedMillis: 10}},
			{{Heuristic: "(+ deltaX deltaY)", Fitness: 203, ElapsedMillis: 25}},
		},
	}
	require.NoError(t, st.SaveGenetic(7, res))
}

func TestSave_NilResults(t *testing.T) {
	st := openStore(t)

	require.ErrorIs(t, st.SaveSimulation(1, nil), store.ErrNilResult)
	require.ErrorIs(t, st.SaveGenetic(1, nil), store.ErrNilResult)
}
