// Package life implements Conway's Game of Life on a double-buffered grid.
package life

import (
	"errors"
	"fmt"
	"strings"
)

const (
	aliveRune = '#'
	deadRune  = '.'
)

// Grid is a rectangular board of cells stored row-major.
type Grid struct {
	Width, Height int
	Wrap          bool // neighbors wrap around the edges (torus)
	Cells         []bool
}

// NewGrid returns an empty width x height grid.
func NewGrid(width, height int, wrap bool) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Wrap:   wrap,
		Cells:  make([]bool, width*height),
	}
}

// Parse builds a grid from rows of '#' (alive) and '.' (dead). Rows shorter
// than width are padded with dead cells.
func Parse(rows []string, width, height int, wrap bool) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if len(rows) > height {
		return Grid{}, fmt.Errorf("pattern has %d rows, grid height is %d", len(rows), height)
	}
	g := NewGrid(width, height, wrap)
	for y, row := range rows {
		if len(row) > width {
			return Grid{}, fmt.Errorf("pattern row %d has %d cells, grid width is %d", y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case aliveRune:
				g.Set(x, y, true)
			case deadRune:
			default:
				return Grid{}, fmt.Errorf("pattern row %d: invalid cell %q at column %d", y, r, x)
			}
		}
	}
	return g, nil
}

func (g Grid) index(x, y int) (int, bool) {
	if g.Wrap {
		x = ((x % g.Width) + g.Width) % g.Width
		y = ((y % g.Height) + g.Height) % g.Height
	} else if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, false
	}
	return y*g.Width + x, true
}

// Alive reports whether the cell at (x, y) is alive. Off-grid cells of a
// non-wrapping grid are dead.
func (g Grid) Alive(x, y int) bool {
	i, ok := g.index(x, y)
	return ok && g.Cells[i]
}

// Set sets the cell at (x, y). Off-grid writes on a non-wrapping grid are
// ignored.
func (g Grid) Set(x, y int, alive bool) {
	if i, ok := g.index(x, y); ok {
		g.Cells[i] = alive
	}
}

// Neighbors counts the live cells around (x, y).
func (g Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population counts live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.Cells {
		if c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	c := g
	c.Cells = append([]bool(nil), g.Cells...)
	return c
}

// Rows renders the grid as rows of '#' and '.'.
func (g Grid) Rows() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			if g.Cells[y*g.Width+x] {
				sb.WriteByte(aliveRune)
			} else {
				sb.WriteByte(deadRune)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

var errEmptyGrid = errors.New("empty grid")

func (g Grid) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errEmptyGrid
	}
	if len(g.Cells) != g.Width*g.Height {
		return fmt.Errorf("grid %dx%d has %d cells", g.Width, g.Height, len(g.Cells))
	}
	return nil
}
