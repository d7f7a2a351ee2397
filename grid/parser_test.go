package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heursearch/grid"
)

func TestParseMapString_2x2(t *testing.T) {
	mp, err := grid.ParseMapString("type octile\nheight 2\nwidth 2\nmap\n..\n..\n")
	require.NoError(t, err)

	require.Equal(t, 2, mp.N())
	require.Equal(t, 2, mp.M())
	require.Equal(t, 4, mp.FreeCells())
	require.Equal(t, []int{1, 2}, sorted(mp.Neighbours(0)))
	require.Equal(t, []int{0, 3}, sorted(mp.Neighbours(1)))
	require.Equal(t, []int{0, 3}, sorted(mp.Neighbours(2)))
	require.Equal(t, []int{1, 2}, sorted(mp.Neighbours(3)))
}

func TestParseMapString_WalledInterior(t *testing.T) {
	mp, err := grid.ParseMapString("type octile\nheight 4\nwidth 4\nmap\n@@@@\n@..@\n@.@@\n@@@@\n")
	require.NoError(t, err)

	// One L-shaped component: cells 5, 6, 9.
	require.Equal(t, 3, mp.FreeCells())
	require.Equal(t, []int{6, 9}, sorted(mp.Neighbours(5)))
	require.Equal(t, []int{5}, sorted(mp.Neighbours(6)))
	require.Equal(t, []int{5}, sorted(mp.Neighbours(9)))
	require.Equal(t, grid.Unpassable, mp.Tile(0))
}

func TestParseMapString_MixedCharset(t *testing.T) {
	mp, err := grid.ParseMapString("type octile\nheight 2\nwidth 3\nmap\n.GT\nSW.\n")
	require.NoError(t, err)

	// T, S, W are walls; G is terrain. The lone '.' at (1,2) is a
	// smaller component and gets trimmed.
	require.Equal(t, grid.Passable, mp.Tile(0))
	require.Equal(t, grid.Passable, mp.Tile(1))
	require.Equal(t, grid.Unpassable, mp.Tile(2))
	require.Equal(t, grid.Unpassable, mp.Tile(5))
	require.Equal(t, 2, mp.FreeCells())
}

func TestParseMapString_HeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"truncated", "type octile\nheight 2\n"},
		{"wrong type", "type hex\nheight 2\nwidth 2\nmap\n..\n..\n"},
		{"bad height", "type octile\nheight x\nwidth 2\nmap\n..\n..\n"},
		{"missing map line", "type octile\nheight 2\nwidth 2\nMAP\n..\n..\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseMapString(tc.in)
			require.ErrorIs(t, err, grid.ErrBadHeader)
		})
	}
}

func TestParseMapString_BadTile(t *testing.T) {
	_, err := grid.ParseMapString("type octile\nheight 2\nwidth 2\nmap\n.z\n..\n")
	require.ErrorIs(t, err, grid.ErrBadTile)
}

func TestParseMapString_ShortTileSection(t *testing.T) {
	_, err := grid.ParseMapString("type octile\nheight 3\nwidth 3\nmap\n...\n...\n")
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)
}
