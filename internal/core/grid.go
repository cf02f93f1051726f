package core

import "fmt"

// Grid stores a toroidal 2D field of binary cells (0 dead, 1 alive) in
// row-major order: the cell at (row, col) lives at index row*W + col.
type Grid struct {
	W, H  int
	cells []uint8
}

// NewGrid allocates a dead grid with the given dimensions. A zero-area
// grid is rejected rather than clamped.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	return &Grid{W: w, H: h, cells: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
// Its length is always W*H.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for (row, col). Pure addressing,
// no wraparound: callers must hold row < H and col < W.
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of this grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// LiveNeighborCount sums the live cells among the 8 toroidal neighbors of
// (row, col). An offset whose wrapped position folds back onto the probed
// cell is skipped, so a 1x1 grid reports 0. When a dimension is exactly 1
// several offsets wrap onto the same neighboring cell and each one counts;
// that duplicate counting is the correct toroidal behavior.
func (g *Grid) LiveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := g.Wrap(row+dr, col+dc)
			if nr == row && nc == col {
				continue
			}
			count += int(g.cells[g.Index(nr, nc)])
		}
	}
	return count
}

// NextState applies the standard Game of Life rule: a live cell with 2 or
// 3 live neighbors survives, a dead cell with exactly 3 becomes live, all
// other cells are dead. This is the only place the rule is encoded; a
// generalized automaton would table-drive it instead.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Populate sets every cell from the provided initial-state function.
func (g *Grid) Populate(fn func(row, col int) bool) {
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			idx := g.Index(r, c)
			g.cells[idx] = 0
			if fn(r, c) {
				g.cells[idx] = 1
			}
		}
	}
}

// Resize reallocates the grid to the new dimensions. With preserve set,
// cells in the overlapping region keep their values and new cells start
// dead; otherwise the whole grid is reset. The new dimensions and buffer
// commit together, so a failed resize leaves the grid untouched.
func (g *Grid) Resize(w, h int, preserve bool) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	next := make([]uint8, w*h)
	if preserve {
		copyH, copyW := g.H, g.W
		if h < copyH {
			copyH = h
		}
		if w < copyW {
			copyW = w
		}
		for r := 0; r < copyH; r++ {
			copy(next[r*w:r*w+copyW], g.cells[r*g.W:r*g.W+copyW])
		}
	}
	g.W, g.H, g.cells = w, h, next
	return nil
}

// Swap replaces the backing slice with buf and returns the old one. buf
// must have length W*H; the caller keeps ownership of the returned slice.
func (g *Grid) Swap(buf []uint8) []uint8 {
	old := g.cells
	g.cells = buf
	return old
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}
