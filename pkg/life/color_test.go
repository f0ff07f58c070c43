package life

import (
	"math"
	"testing"

	"neon-life/pkg/core"
)

const hueTolerance = 0.01

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 1-d)
}

func newColorSim(t *testing.T, w, h int, b Boundary, live ...[2]int) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	cfg.Fill = FillZero
	cfg.Boundary = b
	cfg.Color = true
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := NewGrid(w, h)
	for _, p := range live {
		_ = g.Set(p[0], p[1], Alive)
	}
	sim.Load(g)
	return sim
}

func colorAt(t *testing.T, sim *Simulation, x, y int) RGB {
	t.Helper()
	view, ok := sim.Colors()
	if !ok {
		t.Fatal("color layer disabled")
	}
	c, err := view.At(x, y)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestDriftHueAdvancesByStep(t *testing.T) {
	for _, h := range []float64{0, 0.1, 0.3, 0.5, 0.77, 0.98} {
		c := FromHSV(h, 0.8, 0.8)
		before, _, _ := c.HSV()
		after, s, v := DriftHue(c).HSV()
		want := math.Mod(before+HueStep, 1)
		if d := hueDistance(after, want); d > hueTolerance {
			t.Fatalf("hue %.3f drifted to %.3f, want %.3f", before, after, want)
		}
		if math.Abs(s-DriftSaturation) > hueTolerance || math.Abs(v-DriftValue) > hueTolerance {
			t.Fatalf("saturation/value drifted to %.3f/%.3f", s, v)
		}
	}
}

func TestDriftHuePinsSaturationAndValue(t *testing.T) {
	_, s, v := DriftHue(RGB{R: 255, G: 10, B: 10}).HSV()
	if math.Abs(s-DriftSaturation) > hueTolerance || math.Abs(v-DriftValue) > hueTolerance {
		t.Fatalf("got s=%.3f v=%.3f", s, v)
	}
}

func TestFromHSVWrapsHue(t *testing.T) {
	if FromHSV(1.25, 1, 1) != FromHSV(0.25, 1, 1) {
		t.Fatal("hue above one should wrap")
	}
	if FromHSV(-0.75, 1, 1) != FromHSV(0.25, 1, 1) {
		t.Fatal("negative hue should wrap")
	}
}

func TestDyingCellTakesBackground(t *testing.T) {
	sim := newColorSim(t, 3, 3, Clamped, [2]int{1, 1})
	_ = sim.colors.Set(1, 1, RGB{R: 200, G: 30, B: 90})
	sim.Step()
	if got := colorAt(t, sim, 1, 1); got != Background {
		t.Fatalf("dead cell color = %v, want %v", got, Background)
	}
}

func TestSurvivorHueDrifts(t *testing.T) {
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	sim := newColorSim(t, 4, 4, Clamped, block...)
	hues := []float64{0.1, 0.4, 0.7, 0.97}
	for i, p := range block {
		_ = sim.colors.Set(p[0], p[1], FromHSV(hues[i], 0.8, 0.8))
	}
	before := map[[2]int]float64{}
	for _, p := range block {
		before[p], _, _ = colorAt(t, sim, p[0], p[1]).HSV()
	}

	sim.Step()

	for _, p := range block {
		after, _, _ := colorAt(t, sim, p[0], p[1]).HSV()
		want := math.Mod(before[p]+HueStep, 1)
		if d := hueDistance(after, want); d > hueTolerance {
			t.Fatalf("cell %v hue %.3f -> %.3f, want %.3f", p, before[p], after, want)
		}
	}
}

func TestNewbornAdoptsFirstNeighborInScanOrder(t *testing.T) {
	vertical := [][2]int{{2, 1}, {2, 2}, {2, 3}}
	top := RGB{R: 10, G: 200, B: 10}
	mid := RGB{R: 200, G: 10, B: 10}
	bottom := RGB{R: 10, G: 10, B: 200}

	for _, b := range []Boundary{Toroidal, Clamped} {
		sim := newColorSim(t, 5, 5, b, vertical...)
		_ = sim.colors.Set(2, 1, top)
		_ = sim.colors.Set(2, 2, mid)
		_ = sim.colors.Set(2, 3, bottom)

		sim.Step()

		// Both newborns scan the row above first and meet (2,1) before any
		// other live neighbor.
		for _, p := range [][2]int{{1, 2}, {3, 2}} {
			if got := colorAt(t, sim, p[0], p[1]); got != top {
				t.Fatalf("%v: newborn %v color = %v, want %v", b, p, got, top)
			}
		}
	}
}

func TestNewbornColorIsDeterministic(t *testing.T) {
	run := func() []RGB {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 24, 24
		cfg.Color = true
		cfg.Seed = 77
		sim, err := New(cfg)
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 10; i++ {
			sim.Step()
		}
		return append([]RGB(nil), sim.colors.cells...)
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBirthWithoutLiveNeighborGetsRandomHue(t *testing.T) {
	g, _ := NewGrid(3, 3)
	colors := newColorGrid(3, 3)
	c := nextColor(g, colors, 1, 1, Clamped, Dead, Alive, core.NewRNG(4))
	if c == Background {
		t.Fatal("fallback color should not be the background")
	}
	_, s, v := c.HSV()
	if math.Abs(s-1) > hueTolerance || math.Abs(v-1) > hueTolerance {
		t.Fatalf("fallback color %v has s=%.3f v=%.3f, want full", c, s, v)
	}
}

func TestDeadCellsKeepBackground(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Color = true
	cfg.Rule = MultiState{}
	cfg.Density = 0.3
	sim, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for gen := 0; gen < 20; gen++ {
		for i, c := range sim.grid.cells {
			if !c.IsLive() && sim.colors.cells[i] != Background {
				t.Fatalf("gen %d: dead cell %d has color %v", gen, i, sim.colors.cells[i])
			}
		}
		sim.Step()
	}
}

func TestColorLayerDisabled(t *testing.T) {
	sim, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sim.Colors(); ok {
		t.Fatal("colors should be absent by default")
	}
	if sim.ColorsRGBA() != nil {
		t.Fatal("ColorsRGBA should be nil without a color layer")
	}
}

func TestColorsRGBAMatchesGrid(t *testing.T) {
	sim := newColorSim(t, 3, 2, Toroidal, [2]int{0, 0})
	_ = sim.colors.Set(0, 0, RGB{R: 1, G: 2, B: 3})
	rgba := sim.ColorsRGBA()
	if len(rgba) != 6 {
		t.Fatalf("len = %d", len(rgba))
	}
	if rgba[0].R != 1 || rgba[0].G != 2 || rgba[0].B != 3 || rgba[0].A != 255 {
		t.Fatalf("rgba[0] = %v", rgba[0])
	}
	if rgba[5] != Background.RGBA() {
		t.Fatalf("rgba[5] = %v", rgba[5])
	}
	view, _ := sim.Colors()
	if got := view.RGBA(); len(got) != 6 || got[0] != rgba[0] {
		t.Fatalf("view RGBA = %v", got)
	}
}
