// Package life implements a toroidal Conway's Game of Life universe with
// double-buffered stepping. A Universe is single-threaded: hosts drive it
// from one loop and serialize access externally if they need more.
package life

import (
	"fmt"
	"strings"

	"golife/internal/core"
)

// Sentinel errors of the engine, re-exported so callers can match them
// with errors.Is on any operation of this package.
var (
	ErrInvalidDimensions = core.ErrInvalidDimensions
	ErrOutOfBounds       = core.ErrOutOfBounds
)

// Coord addresses a single cell by row and column, 0-indexed.
type Coord struct {
	Row, Col int
}

// FillPolicy selects what Resize does with existing cell values.
type FillPolicy int

const (
	// FillClear resets every cell to dead.
	FillClear FillPolicy = iota
	// FillPreserve keeps values in the region shared by the old and new
	// dimensions; cells outside it start dead.
	FillPreserve
)

// Universe owns a grid plus a same-shape scratch buffer used to compute
// the next generation without disturbing the one being read. Outside of
// Tick exactly one buffer is live; Tick swaps them on completion, so no
// partial generation is ever visible to callers.
type Universe struct {
	grid    *core.Grid
	scratch []uint8
	gen     uint64
}

// New allocates a universe of the given dimensions and seeds it with the
// provided policy. A nil seed leaves every cell dead. Zero-area
// dimensions are rejected with ErrInvalidDimensions.
func New(w, h int, seed SeedFunc) (*Universe, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if seed != nil {
		g.Populate(seed)
	}
	return &Universe{grid: g, scratch: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.grid.W }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.grid.H }

// Generation returns the number of ticks applied since the last seed.
func (u *Universe) Generation() uint64 { return u.gen }

// Tick advances the universe by one generation. Every cell's next state
// is computed into the scratch buffer, then the buffers swap ownership;
// the scratch is reused across calls, so ticking never allocates.
func (u *Universe) Tick() {
	g := u.grid
	cells := g.Cells()
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			idx := g.Index(r, c)
			alive := cells[idx] == 1
			u.scratch[idx] = 0
			if core.NextState(alive, g.LiveNeighborCount(r, c)) {
				u.scratch[idx] = 1
			}
		}
	}
	u.scratch = g.Swap(u.scratch)
	u.gen++
}

// ToggleCell flips the cell at (row, col) in the live buffer. The change
// is visible on the next read. Coordinates outside the grid report
// ErrOutOfBounds; nothing is clamped.
func (u *Universe) ToggleCell(row, col int) error {
	if !u.grid.InBounds(row, col) {
		return fmt.Errorf("toggle cell (%d,%d) on %dx%d grid: %w",
			row, col, u.grid.W, u.grid.H, ErrOutOfBounds)
	}
	u.grid.Cells()[u.grid.Index(row, col)] ^= 1
	return nil
}

// SetPattern sets every listed coordinate to live, leaving other cells at
// their current value. All coordinates are validated before any is
// applied, so an out-of-bounds coordinate rejects the whole batch.
func (u *Universe) SetPattern(coords []Coord) error {
	for _, c := range coords {
		if !u.grid.InBounds(c.Row, c.Col) {
			return fmt.Errorf("pattern cell (%d,%d) on %dx%d grid: %w",
				c.Row, c.Col, u.grid.W, u.grid.H, ErrOutOfBounds)
		}
	}
	for _, c := range coords {
		u.grid.Cells()[u.grid.Index(c.Row, c.Col)] = 1
	}
	return nil
}

// Resize reallocates the grid to the new dimensions. The grid and scratch
// buffer commit together; on error the universe is unchanged.
func (u *Universe) Resize(w, h int, policy FillPolicy) error {
	if err := u.grid.Resize(w, h, policy == FillPreserve); err != nil {
		return err
	}
	u.scratch = make([]uint8, w*h)
	return nil
}

// Seed repopulates the live buffer with the provided policy and resets
// the generation counter. A nil seed clears the board.
func (u *Universe) Seed(fn SeedFunc) {
	if fn == nil {
		u.grid.Clear()
	} else {
		u.grid.Populate(fn)
	}
	u.gen = 0
}

// LiveCells returns the live buffer as a row-major view of length
// Width()*Height(). The slice borrows the universe's backing storage:
// it is valid until the next Tick, ToggleCell, SetPattern, Resize or
// Seed call and must not be retained across them.
func (u *Universe) LiveCells() []uint8 {
	return u.grid.Cells()
}

// Population returns the number of live cells in the current generation.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.grid.Cells() {
		n += int(c)
	}
	return n
}

// String renders the board one row per line, ◼ for live cells and ◻ for
// dead ones.
func (u *Universe) String() string {
	var b strings.Builder
	cells := u.grid.Cells()
	for r := 0; r < u.grid.H; r++ {
		for c := 0; c < u.grid.W; c++ {
			if cells[u.grid.Index(r, c)] == 1 {
				b.WriteRune('◼')
			} else {
				b.WriteRune('◻')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
