package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/grid"
)

func TestString_GlyphsAndShape(t *testing.T) {
	tiles := open(2, 3)
	tiles[4] = grid.Unpassable
	mp, err := grid.NewMap(2, 3, tiles)
	require.NoError(t, err)

	out := mp.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "· · ·", lines[0])
	require.Equal(t, "· ■ ·", lines[1])
}

func TestRenderPath_MarksEndpoints(t *testing.T) {
	mp, err := grid.NewMap(2, 2, open(2, 2))
	require.NoError(t, err)

	// Path goal→start: 3 ← 1 ← 0.
	out := mp.RenderPath([]int{3, 1, 0})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "S +", lines[0])
	require.Equal(t, "· G", lines[1])
}

func TestRenderExpansions_MarksVisited(t *testing.T) {
	mp, err := grid.NewMap(2, 2, open(2, 2))
	require.NoError(t, err)

	out := mp.RenderExpansions([]int{0, 1, 2}, []int{3, 1, 0})
	require.Contains(t, out, "x", "off-path expansion is marked")

	// No path: expansions only.
	out = mp.RenderExpansions([]int{2}, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "· ·", lines[0])
	require.Equal(t, "x ·", lines[1])
}
