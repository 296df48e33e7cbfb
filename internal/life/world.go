package life

import (
	"fmt"

	"github.com/joeclark-phd/bufferbuffer"
)

// Step advances db by one generation. The next grid is rewritten in place
// and reallocated only if its size differs from the current grid.
func Step(db *bufferbuffer.DoubleBuffer[Grid]) {
	db.Step(func(cur Grid, next *Grid) {
		if len(next.Cells) != len(cur.Cells) {
			*next = NewGrid(cur.Width, cur.Height, cur.Wrap)
		}
		next.Width, next.Height, next.Wrap = cur.Width, cur.Height, cur.Wrap

		for y := 0; y < cur.Height; y++ {
			for x := 0; x < cur.Width; x++ {
				n := cur.Neighbors(x, y)
				alive := cur.Cells[y*cur.Width+x]
				next.Cells[y*cur.Width+x] = n == 3 || (alive && n == 2)
			}
		}
	})
}

// World is a Life board with a generation counter.
type World struct {
	buf *bufferbuffer.DoubleBuffer[Grid]
	gen uint64
}

// NewWorld starts a world from a copy of seed.
func NewWorld(seed Grid) (*World, error) {
	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return &World{
		buf: bufferbuffer.New(seed.Clone(), NewGrid(seed.Width, seed.Height, seed.Wrap)),
	}, nil
}

// Tick advances the world one generation.
func (w *World) Tick() {
	Step(w.buf)
	w.gen++
}

// Generation returns the number of completed ticks.
func (w *World) Generation() uint64 {
	return w.gen
}

// Snapshot returns a copy of the current generation.
func (w *World) Snapshot() Grid {
	var g Grid
	w.buf.ReadCurrent(func(cur Grid) { g = cur.Clone() })
	return g
}

// Population counts live cells in the current generation.
func (w *World) Population() int {
	var n int
	w.buf.ReadCurrent(func(cur Grid) { n = cur.Population() })
	return n
}
