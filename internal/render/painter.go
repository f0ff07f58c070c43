//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"neon-life/pkg/core"
)

// GridPainter updates a single RGBA image from a sim's cells.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	theme Theme
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, theme Theme) *GridPainter {
	gp := &GridPainter{theme: theme}
	gp.Resize(w, h)
	return gp
}

// Resize reallocates the backing image when the grid dimensions change.
func (gp *GridPainter) Resize(w, h int) {
	if w == gp.w && h == gp.h && gp.img != nil {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the sim's current cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	size := sim.Size()
	gp.Resize(size.W, size.H)
	FillRGBA(gp.buf, sim, gp.theme)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
