// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand"

	"github.com/joeclark-phd/bufferbuffer/internal/life"
)

// GenSeq returns the ints 0..n-1.
func GenSeq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// GenRandomGrid returns a wrapping size x size grid where each cell is alive
// with probability density. The same seed always yields the same grid.
func GenRandomGrid(size int, density float64, seed int64) life.Grid {
	if size < 1 {
		size = 1
	}
	r := rand.New(rand.NewSource(seed))
	g := life.NewGrid(size, size, true)
	for i := range g.Cells {
		g.Cells[i] = r.Float64() < density
	}
	return g
}
