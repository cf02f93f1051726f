//go:build !ebiten

package ui

// HUD is a placeholder in headless builds.
type HUD struct{}

// NewHUD returns an inert HUD.
func NewHUD() *HUD { return &HUD{} }

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, uint64, int, bool) {}
