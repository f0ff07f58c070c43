//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the key binding help on top of the grid. H toggles it.
type Overlay struct {
	visible bool
	backing *ebiten.Image
}

// NewOverlay constructs a hidden help overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update toggles visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw paints the help box in the top-left corner when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range HelpLines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	height := len(HelpLines)*helpLineHeight + 2*panelPadding
	width += 2 * panelPadding
	if o.backing == nil || o.backing.Bounds().Dx() != width || o.backing.Bounds().Dy() != height {
		o.backing = ebiten.NewImage(width, height)
	}
	o.backing.Fill(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	for i, line := range HelpLines {
		y := panelPadding + (i+1)*helpLineHeight - 3
		text.Draw(o.backing, line, face, panelPadding, y, color.RGBA{R: 0, G: 255, B: 120, A: 255})
	}
	screen.DrawImage(o.backing, &ebiten.DrawImageOptions{})
}

const helpLineHeight = 16
