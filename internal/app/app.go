//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life.Universe to the ebiten.Game interface. Generations
// advance on a fixed-step clock decoupled from the render rate, and cell
// clicks are relayed to Universe.ToggleCell.
type Game struct {
	uni     *life.Universe
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided universe.
func New(uni *life.Universe, cfg Config) *Game {
	return &Game{
		uni:      uni,
		painter:  render.NewGridPainter(uni.Width(), uni.Height()),
		hud:      ui.NewHUD(),
		stepper:  core.NewFixedStep(cfg.TPS),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
		paused:   true,
	}
}

// Update handles per-frame input and advances the universe.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.uni.Seed(life.SeedRandom(time.Now().UnixNano()))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.uni.Seed(nil)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		row, col := y/g.scale, x/g.scale
		// clicks can land outside the window while dragging; only
		// in-bounds cells are relayed
		if row >= 0 && row < g.uni.Height() && col >= 0 && col < g.uni.Width() {
			if err := g.uni.ToggleCell(row, col); err != nil {
				return err
			}
		}
	}

	if g.tickOnce {
		g.uni.Tick()
		g.tickOnce = false
	} else if !g.paused && g.stepper.ShouldStep() {
		g.uni.Tick()
	}
	return nil
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.LiveCells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, g.uni.Generation(), g.uni.Population(), g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.uni.Width() * g.scale, g.uni.Height() * g.scale
}

// Run opens a window for the universe and blocks until the host quits.
func Run(uni *life.Universe, cfg Config) error {
	game := New(uni, cfg)

	ebiten.SetWindowTitle("golife")
	ebiten.SetWindowSize(uni.Width()*cfg.Scale, uni.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
