package core

import (
	"fmt"
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Sim defines the minimal contract a cellular automaton must implement.
// Step reports whether a generation was actually computed.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() bool
	Cells() []uint8
}

// Runner is implemented by sims that track a run state and generation
// counter. Drivers call Tick once per cadence tick.
type Runner interface {
	Start()
	Stop()
	IsRunning() bool
	Tick() bool
	Generation() int
}

// Resizer is implemented by sims that can be rebuilt at new dimensions.
type Resizer interface {
	ResetSize(size Size, seed int64) error
}

// ColorProvider exposes per-cell colors, one entry per cell in row-major
// order. A nil slice means the sim does not track colors right now.
type ColorProvider interface {
	ColorsRGBA() []color.RGBA
}

// PaletteProvider maps Cells values to display colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// PopulationProvider reports the number of live cells.
type PopulationProvider interface {
	Population() int
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
