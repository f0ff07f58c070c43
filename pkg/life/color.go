package life

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"neon-life/pkg/core"
)

// RGB is a 24-bit cell color.
type RGB struct {
	R, G, B uint8
}

// Background is the color held by every non-live cell.
var Background = RGB{R: 20, G: 20, B: 20}

const (
	// HueStep is the hue advance, as a fraction of a turn, applied to a
	// surviving cell each generation.
	HueStep = 0.05
	// DriftSaturation and DriftValue are held fixed while a survivor drifts.
	DriftSaturation = 0.8
	DriftValue      = 0.8
)

// RGBA returns the opaque color.RGBA equivalent.
func (c RGB) RGBA() color.RGBA { return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255} }

// HSV returns hue in [0, 1) plus saturation and value in [0, 1].
func (c RGB) HSV() (h, s, v float64) {
	h, s, v = colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return h / 360, s, v
}

// FromHSV builds a color from hue in turns (wrapped into [0, 1)), saturation
// and value.
func FromHSV(h, s, v float64) RGB {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	r, g, b := colorful.Hsv(h*360, s, v).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// DriftHue advances the hue of c by HueStep and pins saturation and value.
func DriftHue(c RGB) RGB {
	h, _, _ := c.HSV()
	return FromHSV(h+HueStep, DriftSaturation, DriftValue)
}

// RandomHue returns a fully saturated, full value color of random hue.
func RandomHue(rng *core.RNG) RGB {
	return FromHSV(rng.Float64(), 1, 1)
}

// ColorGrid holds one color per cell, parallel to a Grid.
type ColorGrid struct {
	w, h  int
	cells []RGB
}

// NewColorGrid allocates a grid filled with Background.
func NewColorGrid(w, h int) (*ColorGrid, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	return newColorGrid(w, h), nil
}

func newColorGrid(w, h int) *ColorGrid {
	cg := &ColorGrid{w: w, h: h, cells: make([]RGB, w*h)}
	for i := range cg.cells {
		cg.cells[i] = Background
	}
	return cg
}

// seedColors gives every live cell of g a random hue.
func seedColors(g *Grid, rng *core.RNG) *ColorGrid {
	cg := newColorGrid(g.w, g.h)
	for i, c := range g.cells {
		if c.IsLive() {
			cg.cells[i] = RandomHue(rng)
		}
	}
	return cg
}

// Width returns the number of columns.
func (cg *ColorGrid) Width() int { return cg.w }

// Height returns the number of rows.
func (cg *ColorGrid) Height() int { return cg.h }

// At returns the color at (x, y).
func (cg *ColorGrid) At(x, y int) (RGB, error) {
	if x < 0 || x >= cg.w || y < 0 || y >= cg.h {
		return Background, &OutOfBoundsError{X: x, Y: y, Size: core.Size{W: cg.w, H: cg.h}}
	}
	return cg.cells[y*cg.w+x], nil
}

// Set stores c at (x, y).
func (cg *ColorGrid) Set(x, y int, c RGB) error {
	if x < 0 || x >= cg.w || y < 0 || y >= cg.h {
		return &OutOfBoundsError{X: x, Y: y, Size: core.Size{W: cg.w, H: cg.h}}
	}
	cg.cells[y*cg.w+x] = c
	return nil
}

// fillRGBA writes the grid into dst, which must hold w*h entries.
func (cg *ColorGrid) fillRGBA(dst []color.RGBA) {
	for i, c := range cg.cells {
		dst[i] = c.RGBA()
	}
}

// ColorView is a read-only handle on a committed color grid.
type ColorView struct {
	cg *ColorGrid
}

// Width returns the number of columns.
func (v ColorView) Width() int {
	if v.cg == nil {
		return 0
	}
	return v.cg.w
}

// Height returns the number of rows.
func (v ColorView) Height() int {
	if v.cg == nil {
		return 0
	}
	return v.cg.h
}

// At returns the color at (x, y).
func (v ColorView) At(x, y int) (RGB, error) {
	if v.cg == nil {
		return Background, &OutOfBoundsError{X: x, Y: y}
	}
	return v.cg.At(x, y)
}

// RGBA copies the colors into a fresh row-major slice.
func (v ColorView) RGBA() []color.RGBA {
	if v.cg == nil {
		return nil
	}
	out := make([]color.RGBA, len(v.cg.cells))
	v.cg.fillRGBA(out)
	return out
}

// nextColor decides the color of (x, y) in the next generation from the
// previous generation's grids.
func nextColor(prev *Grid, colors *ColorGrid, x, y int, b Boundary, was, now CellState, rng *core.RNG) RGB {
	switch {
	case !now.IsLive():
		return Background
	case was.IsLive():
		return DriftHue(colors.cells[prev.Index(x, y)])
	}
	inherited, found := Background, false
	Neighbors(prev, x, y, b, func(nx, ny int) bool {
		idx := prev.Index(nx, ny)
		if prev.cells[idx].IsLive() {
			inherited, found = colors.cells[idx], true
			return false
		}
		return true
	})
	if found {
		return inherited
	}
	return RandomHue(rng)
}
