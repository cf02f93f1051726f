package life

import "sort"

// Pattern is a named set of cell coordinates relative to its own top-left
// corner, used to seed well-known figures into a universe.
type Pattern struct {
	Name   string
	Desc   string
	Coords []Coord
}

// Size returns the pattern's bounding box as (rows, cols).
func (p Pattern) Size() (int, int) {
	rows, cols := 0, 0
	for _, c := range p.Coords {
		if c.Row+1 > rows {
			rows = c.Row + 1
		}
		if c.Col+1 > cols {
			cols = c.Col + 1
		}
	}
	return rows, cols
}

// At translates the pattern so its top-left corner sits at (row, col).
func (p Pattern) At(row, col int) []Coord {
	out := make([]Coord, len(p.Coords))
	for i, c := range p.Coords {
		out[i] = Coord{Row: c.Row + row, Col: c.Col + col}
	}
	return out
}

var patterns = map[string]Pattern{}

// RegisterPattern adds a pattern to the registry under its name.
func RegisterPattern(p Pattern) {
	if p.Name == "" || len(p.Coords) == 0 {
		return
	}
	patterns[p.Name] = p
}

// LookupPattern returns the registered pattern with the given name.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func line(row, col, n int) []Coord {
	out := make([]Coord, n)
	for i := range out {
		out[i] = Coord{Row: row, Col: col + i}
	}
	return out
}

func init() {
	RegisterPattern(Pattern{
		Name: "block",
		Desc: "2x2 still life",
		Coords: []Coord{
			{0, 0}, {0, 1},
			{1, 0}, {1, 1},
		},
	})
	RegisterPattern(Pattern{
		Name:   "blinker",
		Desc:   "period-2 oscillator",
		Coords: line(0, 0, 3),
	})
	RegisterPattern(Pattern{
		Name: "glider",
		Desc: "diagonal spaceship, period 4",
		Coords: []Coord{
			{0, 1},
			{1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	})

	// Pulsar: period-3 oscillator, four 3-cell segments per axis on a
	// 13x13 bounding box.
	var pulsar []Coord
	for _, r := range []int{0, 5, 7, 12} {
		pulsar = append(pulsar, line(r, 2, 3)...)
		pulsar = append(pulsar, line(r, 8, 3)...)
	}
	for _, c := range []int{0, 5, 7, 12} {
		for _, r := range []int{2, 3, 4, 8, 9, 10} {
			pulsar = append(pulsar, Coord{Row: r, Col: c})
		}
	}
	RegisterPattern(Pattern{
		Name:   "pulsar",
		Desc:   "period-3 oscillator",
		Coords: pulsar,
	})
}
