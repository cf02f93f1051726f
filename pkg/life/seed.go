package life

import "golife/internal/core"

// SeedFunc maps a cell position to its initial state.
type SeedFunc func(row, col int) bool

// SeedDead leaves every cell dead.
func SeedDead() SeedFunc {
	return func(int, int) bool { return false }
}

// SeedRandom fills the board with a deterministic 50% random pattern.
func SeedRandom(seed int64) SeedFunc {
	rng := core.NewRNG(seed)
	return func(int, int) bool { return rng.Bool() }
}

// SeedCoords sets exactly the listed cells live.
func SeedCoords(coords []Coord) SeedFunc {
	live := make(map[Coord]struct{}, len(coords))
	for _, c := range coords {
		live[c] = struct{}{}
	}
	return func(row, col int) bool {
		_, ok := live[Coord{Row: row, Col: col}]
		return ok
	}
}

// SeedDefault is the classic demo seed: for a given width, a cell at
// linear index i starts live when i%2 == 0 or i%7 == 0.
func SeedDefault(width int) SeedFunc {
	return func(row, col int) bool {
		i := row*width + col
		return i%2 == 0 || i%7 == 0
	}
}
