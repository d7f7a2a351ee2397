package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/heuristic"
)

func TestSizeAndDepth(t *testing.T) {
	cases := []struct {
		expr  string
		size  int
		depth int
	}{
		{"x1", 1, 1},
		{"7", 1, 1},
		{"(neg x1)", 2, 2},
		{"(+ (abs deltaX) deltaY)", 4, 3},
		{"(min (sqr x2) (+ y1 (sqrt deltaY)))", 7, 4},
	}
	for _, tc := range cases {
		n := heuristic.MustParse(tc.expr)
		require.Equal(t, tc.size, n.Size(), tc.expr)
		require.Equal(t, tc.depth, n.Depth(), tc.expr)
	}
}

func TestEqual(t *testing.T) {
	a := heuristic.MustParse("(+ deltaX deltaY)")
	b := heuristic.MustParse("(+ deltaX deltaY)")
	c := heuristic.MustParse("(+ deltaY deltaX)")

	require.True(t, heuristic.Equal(a, b))
	require.False(t, heuristic.Equal(a, c))
	require.False(t, heuristic.Equal(a, heuristic.MustParse("deltaX")))
}

func TestManhattan(t *testing.T) {
	require.Equal(t, "(+ deltaX deltaY)", heuristic.Manhattan().String())
}

func TestHeuristicWrapper(t *testing.T) {
	h := heuristic.New(heuristic.MustParse("(max x1 (neg y2))"))

	require.Equal(t, 4, h.Size())
	require.False(t, h.CreatedAt().IsZero())
	require.Equal(t, "(max x1 (neg y2))", h.String())
	require.True(t, h.Equal(heuristic.New(heuristic.MustParse("(max x1 (neg y2))"))))
}
