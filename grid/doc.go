// Package grid models 2D occupancy maps for uniform-cost pathfinding.
//
// A Map is a rectangular tile grid (Passable / Unpassable) with a
// precomputed 4-connected adjacency table: neighbours[i] lists the
// indices of the passable cells adjacent to cell i. Diagonals are never
// connected. Cells are addressed row-major; Ind2Sub / Sub2Ind convert
// between an index and its (row, col) pair.
//
// Construction trims the map to its largest connected passable
// component: every passable cell outside that component is converted to
// Unpassable and loses its neighbour list. After NewMap returns, any
// passable cell is therefore reachable from any other — a property the
// problem-cycle generator relies on.
//
// The package also ships a parser for the ASCII benchmark map format
//
//	type octile
//	height <N>
//	width <M>
//	map
//	<N lines of M chars in .G@OTSW>
//
// where '.' and 'G' are passable and '@', 'O', 'T', 'S', 'W' are not,
// plus renderers that overlay a solution path or an expansion set on the
// map for quick terminal inspection.
//
// Complexity:
//
//   - NewMap: O(N·M) time and memory (adjacency + one flood fill).
//   - Neighbours, Ind2Sub, Sub2Ind: O(1).
//   - RandomFreePosition: expected O(total/free) rejection samples.
package grid
