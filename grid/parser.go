package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseMapFile reads and parses an ASCII map file from disk.
// See ParseMap for the accepted format.
func ParseMapFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open map file: %w", err)
	}
	defer f.Close()

	return ParseMap(f)
}

// ParseMapString parses an ASCII map from an in-memory string.
func ParseMapString(s string) (*Map, error) {
	return ParseMap(strings.NewReader(s))
}

// ParseMap parses the ASCII benchmark map format:
//
//	type octile
//	height <N>
//	width <M>
//	map
//	<N lines of M chars each>
//
// Tile charset: '.' and 'G' are Passable; '@', 'O', 'T', 'S', 'W' are
// Unpassable. Any other character yields ErrBadTile; a header deviating
// from the four fixed lines yields ErrBadHeader. Short or overlong tile
// sections yield ErrDimensionMismatch via NewMap.
//
// Complexity: O(N·M).
func ParseMap(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)

	// 1) Fixed four-line header.
	header := [4]string{}
	var i int
	for i = range header {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated header", ErrBadHeader)
		}
		header[i] = sc.Text()
	}
	if header[0] != "type octile" {
		return nil, fmt.Errorf("%w: first line %q", ErrBadHeader, header[0])
	}
	n, err := headerField(header[1], "height ")
	if err != nil {
		return nil, err
	}
	m, err := headerField(header[2], "width ")
	if err != nil {
		return nil, err
	}
	if header[3] != "map" {
		return nil, fmt.Errorf("%w: fourth line %q", ErrBadHeader, header[3])
	}

	// 2) Tile section: n lines of m characters.
	tiles := make([]Tile, 0, n*m)
	var c rune
	for sc.Scan() {
		for _, c = range sc.Text() {
			t, ok := tileFor(c)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrBadTile, c)
			}
			tiles = append(tiles, t)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read map: %w", err)
	}

	// 3) NewMap validates the n*m cell count and trims.
	return NewMap(n, m, tiles)
}

// headerField extracts the integer value of a "key <int>" header line.
func headerField(line, prefix string) (int, error) {
	if !strings.HasPrefix(line, prefix) {
		return 0, fmt.Errorf("%w: expected %q prefix in %q", ErrBadHeader, prefix, line)
	}
	v, err := strconv.Atoi(strings.TrimPrefix(line, prefix))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: bad dimension in %q", ErrBadHeader, line)
	}

	return v, nil
}

// tileFor maps one map-file character to its Tile.
//
//	. G → Passable
//	@ O → out of bounds
//	T   → trees
//	S   → swamp
//	W   → water
func tileFor(c rune) (Tile, bool) {
	switch c {
	case '.', 'G':
		return Passable, true
	case '@', 'O', 'T', 'S', 'W':
		return Unpassable, true
	default:
		return Unpassable, false
	}
}
