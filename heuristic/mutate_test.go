package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/heuristic"
)

func TestRandom_ExactSize(t *testing.T) {
	rng := heuristic.RNGFromSeed(21)
	for size := 1; size <= heuristic.MaxTreeSize; size++ {
		for i := 0; i < 20; i++ {
			n := heuristic.Random(rng, size, nil)
			require.Equal(t, size, n.Size(), "requested size %d", size)
		}
	}
}

func TestRandom_DefaultSizeWithinBound(t *testing.T) {
	rng := heuristic.RNGFromSeed(22)
	for i := 0; i < 500; i++ {
		n := heuristic.Random(rng, -1, nil)
		require.GreaterOrEqual(t, n.Size(), 1)
		require.LessOrEqual(t, n.Size(), heuristic.MaxTreeSize)
	}
}

// TestRandom_RespectsProbabilities pins all binary mass on min and all
// terminal mass on deltaY; every generated operator must comply.
func TestRandom_RespectsProbabilities(t *testing.T) {
	tp, err := heuristic.FromVectors(
		[]float64{0, 0, 0, 0, 0, 1}, // only min
		[]float64{1, 0, 0, 0},       // only neg
		[]float64{0, 0, 0, 0, 0, 1}, // only deltaY
		[]float64{0, 0, 0, 0, 0, 0, 0, 0, 1}, // only 9
	)
	require.NoError(t, err)

	rng := heuristic.RNGFromSeed(23)
	var check func(n heuristic.Node)
	check = func(n heuristic.Node) {
		switch x := n.(type) {
		case *heuristic.Number:
			require.Equal(t, 9, x.Value)
		case *heuristic.Term:
			require.Equal(t, heuristic.DeltaY, x.V)
		case *heuristic.Unary:
			require.Equal(t, heuristic.Neg, x.Op)
			check(x.X)
		case *heuristic.Binary:
			require.Equal(t, heuristic.Min, x.Op)
			check(x.L)
			check(x.R)
		}
	}
	for i := 0; i < 100; i++ {
		check(heuristic.Random(rng, 12, tp))
	}
}

func TestMutate_SizeBound(t *testing.T) {
	rng := heuristic.RNGFromSeed(24)
	for i := 0; i < 300; i++ {
		h := heuristic.Random(rng, 0, nil)
		m := heuristic.Mutate(rng, h, nil)
		require.LessOrEqual(t, m.Size(), heuristic.MaxTreeSize)
	}
}

func TestMutate_ChangesTree(t *testing.T) {
	rng := heuristic.RNGFromSeed(25)
	for i := 0; i < 300; i++ {
		h := heuristic.Random(rng, 0, nil)
		m := heuristic.Mutate(rng, h, nil)
		require.False(t, heuristic.Equal(h, m), "mutation returned the input tree %s", h)
	}
}

// TestMutate_SizeOneForcesReplacement: a single-node tree has
// replacement probability 1, so the result is always a fresh subtree.
func TestMutate_SizeOneForcesReplacement(t *testing.T) {
	rng := heuristic.RNGFromSeed(26)
	leaf := heuristic.MustParse("x1")
	for i := 0; i < 100; i++ {
		m := heuristic.Mutate(rng, leaf, nil)
		require.False(t, heuristic.Equal(leaf, m))
		require.LessOrEqual(t, m.Size(), heuristic.MaxTreeSize)
	}
}

func TestMutate_DoesNotModifyInput(t *testing.T) {
	rng := heuristic.RNGFromSeed(27)
	h := heuristic.MustParse("(+ (sqr deltaX) (min y1 4))")
	printed := h.String()
	for i := 0; i < 50; i++ {
		_ = heuristic.Mutate(rng, h, nil)
	}
	require.Equal(t, printed, h.String())
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := heuristic.RNGFromSeed(42)
	a := heuristic.DeriveRNG(base, 1)
	b := heuristic.DeriveRNG(base, 2)

	// Streams must disagree somewhere early on.
	same := true
	for i := 0; i < 8; i++ {
		if a.Int63() != b.Int63() {
			same = false
			break
		}
	}
	require.False(t, same)
}

func TestRNGFromSeed_Deterministic(t *testing.T) {
	a := heuristic.RNGFromSeed(7)
	b := heuristic.RNGFromSeed(7)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}
