//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"neon-life/pkg/core"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor    = color.RGBA{R: 0, G: 255, B: 120, A: 255}
	textColor     = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the status line and parameter controls to the right of the
// simulation view.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	controls    []hudControl
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
	status      string
}

type hudControl struct {
	control core.ParameterControl
	value   float64
	known   bool

	top   int
	minus image.Rectangle
	plus  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for i, ctrl := range provider.ParameterControls() {
			top := controlsTop + i*lineHeight
			y := top + (lineHeight-buttonSize)/2
			plus := image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.controls = append(h.controls, hudControl{control: ctrl, top: top, minus: minus, plus: plus})
		}
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes control values from the sim and applies button clicks.
// panelOffsetX is the screen x coordinate of the panel's left edge.
func (h *HUD) Update(panelOffsetX, tps int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.status = Status(h.sim, tps)
	h.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case p.In(c.minus):
			h.adjust(c, -1)
			return
		case p.In(c.plus):
			h.adjust(c, 1)
			return
		}
	}
}

func (h *HUD) refresh() {
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	snap := provider.Parameters()
	for i := range h.controls {
		c := &h.controls[i]
		c.known = false
		param, ok := snap.Lookup(c.control.Key)
		if !ok {
			continue
		}
		if v, err := strconv.ParseFloat(param.Value, 64); err == nil {
			c.value, c.known = v, true
		}
	}
}

// target returns the value one step in direction, or false when the control
// cannot move that way.
func (h *HUD) target(c *hudControl, direction int) (float64, bool) {
	if !c.known {
		return 0, false
	}
	step := c.control.Step
	switch c.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step = math.Max(1, math.Round(step))
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	v := c.value + float64(direction)*step
	if c.control.HasMin && v < c.control.Min {
		v = c.control.Min
	}
	if c.control.HasMax && v > c.control.Max {
		v = c.control.Max
	}
	if math.Abs(v-c.value) < 1e-9 {
		return 0, false
	}
	return v, true
}

func (h *HUD) adjust(c *hudControl, direction int) {
	v, ok := h.target(c, direction)
	if !ok {
		return
	}
	var applied bool
	if c.control.Type == core.ParamTypeInt {
		applied = h.intSetter.SetIntParameter(c.control.Key, int(math.Round(v)))
	} else {
		applied = h.floatSetter.SetFloatParameter(c.control.Key, v)
	}
	if applied {
		c.value = v
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, panelPadding+headerBaseline, titleColor)
	text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, mutedColor)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, controlsTop+labelBaseline, mutedColor)
	}
	for i := range h.controls {
		c := &h.controls[i]
		y := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, y, textColor)

		value, col := "--", mutedColor
		if c.known {
			value, col = formatValue(c.control, c.value), textColor
		}
		w := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minus.Min.X-buttonGap-w, y, col)

		_, canDec := h.target(c, -1)
		_, canInc := h.target(c, 1)
		h.drawButton(c.minus, "-", canDec)
		h.drawButton(c.plus, "+", canInc)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, textColor
	if !enabled {
		bg, fg = disabledColor, mutedColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()+bounds.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch {
	case ctrl.Step < 0.001:
		precision = 4
	case ctrl.Step < 0.01:
		precision = 3
	case ctrl.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	statusSpacing  = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + statusSpacing + 14
)
