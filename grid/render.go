package grid

import "strings"

// Cell glyphs used by the renderers.
const (
	glyphPassable   = '·'
	glyphUnpassable = '■'
	glyphStart      = 'S'
	glyphGoal       = 'G'
	glyphPath       = '+'
	glyphExpanded   = 'x'
)

// String renders the map as a glyph grid, one line per row:
// '·' for passable cells, '■' for walls.
func (mp *Map) String() string {
	return mp.render(nil, nil, -1, -1)
}

// RenderPath renders the map with a solution path overlaid: the first
// path element is marked G, the last S (paths run goal→start) and
// intermediate cells '+'.
//
// Complexity: O(n·m + len(path)).
func (mp *Map) RenderPath(path []int) string {
	if len(path) == 0 {
		return mp.String()
	}
	onPath := make(map[int]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	return mp.render(onPath, nil, path[len(path)-1], path[0])
}

// RenderExpansions renders the map with every expanded cell marked 'x',
// on top of an optional solution path overlay.
func (mp *Map) RenderExpansions(expansions, path []int) string {
	expanded := make(map[int]bool, len(expansions))
	for _, e := range expansions {
		expanded[e] = true
	}
	onPath := make(map[int]bool, len(path))
	start, goal := -1, -1
	if len(path) > 0 {
		for _, p := range path {
			onPath[p] = true
		}
		start, goal = path[len(path)-1], path[0]
	}

	return mp.render(onPath, expanded, start, goal)
}

// render walks the grid once, choosing the most specific glyph per cell.
// Cells within a row are space-separated for readability.
func (mp *Map) render(onPath, expanded map[int]bool, start, goal int) string {
	var b strings.Builder
	b.Grow(len(mp.tiles) * 2)

	var i int
	var g rune
	for i = range mp.tiles {
		switch {
		case i == start:
			g = glyphStart
		case i == goal:
			g = glyphGoal
		case onPath[i]:
			g = glyphPath
		case expanded[i]:
			g = glyphExpanded
		case mp.tiles[i] == Passable:
			g = glyphPassable
		default:
			g = glyphUnpassable
		}
		b.WriteRune(g)

		if (i+1)%mp.m == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	return b.String()
}
