//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const lineHeight = 13

// HUD overlays the session parameters on top of the grid. It starts hidden.
type HUD struct {
	src     parameterProvider
	visible bool
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider) *HUD {
	return &HUD{src: src}
}

// Toggle shows or hides the overlay.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw renders the parameter lines in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, clr color.Color) {
	if h == nil || !h.visible {
		return
	}
	face := basicfont.Face7x13
	for i, line := range Lines(h.src.Parameters()) {
		text.Draw(screen, line, face, 2, lineHeight*(i+1), clr)
	}
}
