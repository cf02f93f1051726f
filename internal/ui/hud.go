//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout in the top-left corner of the view.
type HUD struct {
	fg color.Color
}

// NewHUD constructs a HUD with the default foreground color.
func NewHUD() *HUD {
	return &HUD{fg: color.RGBA{R: 200, G: 200, B: 210, A: 255}}
}

// Draw renders the generation and population counters onto screen.
func (h *HUD) Draw(screen *ebiten.Image, generation uint64, population int, paused bool) {
	if h == nil {
		return
	}
	line := fmt.Sprintf("gen %d  pop %d", generation, population)
	if paused {
		line += "  [paused]"
	}
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, h.fg)
}
