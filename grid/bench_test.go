package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/heursearch/grid"
)

// BenchmarkNewMap measures adjacency construction plus the
// largest-component trim on a randomly walled 1000×1000 grid.
// Complexity: O(N·M)
func BenchmarkNewMap(b *testing.B) {
	const n = 1000
	rng := rand.New(rand.NewSource(42))
	tiles := make([]grid.Tile, n*n)
	for i := range tiles {
		if rng.Intn(4) == 0 { // ~25% walls
			tiles[i] = grid.Unpassable
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.NewMap(n, n, tiles); err != nil {
			b.Fatalf("NewMap failed: %v", err)
		}
	}
}

// BenchmarkRandomFreePosition measures rejection sampling on a grid
// generated three-quarters walls; trimming to the largest connected
// component leaves far fewer free cells than the generated quarter.
func BenchmarkRandomFreePosition(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(7))
	tiles := make([]grid.Tile, n*n)
	for i := range tiles {
		if rng.Intn(4) != 0 { // ~75% walls
			tiles[i] = grid.Unpassable
		}
	}
	mp, err := grid.NewMap(n, n, tiles)
	if err != nil {
		b.Fatalf("setup NewMap failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = mp.RandomFreePosition(rng); err != nil {
			b.Fatal(err)
		}
	}
}
