package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinPatternsRegistered(t *testing.T) {
	assert.Subset(t, PatternNames(), []string{"block", "blinker", "glider", "pulsar"})
}

func TestPatternSizeAndTranslation(t *testing.T) {
	glider, ok := LookupPattern("glider")
	require.True(t, ok)

	rows, cols := glider.Size()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 3, cols)

	moved := glider.At(4, 5)
	require.Len(t, moved, len(glider.Coords))
	for i, c := range glider.Coords {
		assert.Equal(t, Coord{Row: c.Row + 4, Col: c.Col + 5}, moved[i])
	}
	// translation must not alias the registered coordinates
	moved[0].Row = -100
	again, _ := LookupPattern("glider")
	assert.Equal(t, glider.Coords, again.Coords)
}

func TestRegisterPatternIgnoresEmpty(t *testing.T) {
	before := len(PatternNames())
	RegisterPattern(Pattern{Name: "", Coords: []Coord{{0, 0}}})
	RegisterPattern(Pattern{Name: "nameless"})
	assert.Len(t, PatternNames(), before)
}

func TestPulsarHasPeriodThree(t *testing.T) {
	pulsar, ok := LookupPattern("pulsar")
	require.True(t, ok)
	require.Len(t, pulsar.Coords, 48)

	u, err := New(17, 17, nil)
	require.NoError(t, err)
	require.NoError(t, u.SetPattern(pulsar.At(2, 2)))

	initial := append([]uint8(nil), u.LiveCells()...)
	u.Tick()
	assert.NotEqual(t, initial, u.LiveCells(), "pulsar must not be a still life")
	u.Tick()
	u.Tick()
	assert.Equal(t, initial, u.LiveCells(), "pulsar returns after three ticks")
}
