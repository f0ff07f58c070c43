package render

import (
	"image/color"

	"neon-life/pkg/core"
)

// Theme holds the fallback colors for sims without a palette or color layer.
type Theme struct {
	On  color.Color
	Off color.Color
}

// DefaultTheme draws live cells white on black.
func DefaultTheme() Theme {
	return Theme{On: color.White, Off: color.Black}
}

// FillRGBA writes one RGBA pixel per cell of sim into buf, which must hold
// 4*W*H bytes. Per-cell colors win over a palette, which wins over the
// theme's on/off pair.
func FillRGBA(buf []byte, sim core.Sim, theme Theme) {
	cells := sim.Cells()
	if len(buf) < 4*len(cells) {
		return
	}
	if cp, ok := sim.(core.ColorProvider); ok {
		if colors := cp.ColorsRGBA(); len(colors) == len(cells) {
			fillColorRGBA(buf, colors)
			return
		}
	}
	if pp, ok := sim.(core.PaletteProvider); ok {
		fillPaletteRGBA(buf, cells, pp.Palette())
		return
	}
	fillBinaryRGBA(buf, cells, theme.On, theme.Off)
}

// CellColor resolves the display color of the cell at linear index idx using
// the same precedence as FillRGBA.
func CellColor(sim core.Sim, idx int, theme Theme) color.RGBA {
	cells := sim.Cells()
	if idx < 0 || idx >= len(cells) {
		return toRGBA(theme.Off)
	}
	if cp, ok := sim.(core.ColorProvider); ok {
		if colors := cp.ColorsRGBA(); len(colors) == len(cells) {
			return colors[idx]
		}
	}
	if pp, ok := sim.(core.PaletteProvider); ok {
		if palette := pp.Palette(); len(palette) > 0 {
			return palette[min(int(cells[idx]), len(palette)-1)]
		}
		return color.RGBA{}
	}
	if cells[idx] != 0 {
		return toRGBA(theme.On)
	}
	return toRGBA(theme.Off)
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// fillBinaryRGBA converts binary cell data (0/non-zero) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA, offRGBA := toRGBA(on), toRGBA(off)
	for i, c := range cells {
		col := offRGBA
		if c != 0 {
			col = onRGBA
		}
		putRGBA(buf, i, col)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			putRGBA(buf, i, color.RGBA{})
		}
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		putRGBA(buf, i, palette[min(int(c), last)])
	}
}

// fillColorRGBA copies per-cell colors into buf.
func fillColorRGBA(buf []byte, colors []color.RGBA) {
	for i, col := range colors {
		putRGBA(buf, i, col)
	}
}

func putRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}
