package life

import (
	"image/color"

	"neon-life/pkg/core"
)

// RunState is the controller's run state.
type RunState uint8

const (
	Stopped RunState = iota
	Running
)

func (r RunState) String() string {
	if r == Running {
		return "running"
	}
	return "stopped"
}

// Stats summarises the most recent generation.
type Stats struct {
	Population int
	Births     int
	Deaths     int
}

// Simulation owns the board, the optional color layer, the generation counter
// and the run state. It is not safe for concurrent use; a single driving loop
// owns it and decides the cadence.
type Simulation struct {
	cfg Config

	grid   *Grid
	colors *ColorGrid

	generation int
	state      RunState
	stats      Stats

	rng     *core.RNG
	display []uint8
	rgba    []color.RGBA
}

// New validates cfg and builds a simulation seeded from cfg.Seed.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = "life"
	}
	s := &Simulation{cfg: cfg}
	s.reset(core.Size{W: cfg.Width, H: cfg.Height}, cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Simulation) Name() string { return s.cfg.Name }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Config returns the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Grid returns a read-only view of the current generation.
func (s *Simulation) Grid() View { return s.grid.View() }

// Colors returns the current color layer, if color tracking is enabled.
func (s *Simulation) Colors() (ColorView, bool) {
	if s.colors == nil {
		return ColorView{}, false
	}
	return ColorView{cg: s.colors}, true
}

// Generation returns the number of generations computed since the last reset.
func (s *Simulation) Generation() int { return s.generation }

// State returns the run state.
func (s *Simulation) State() RunState { return s.state }

// IsRunning reports whether the simulation is in the Running state.
func (s *Simulation) IsRunning() bool { return s.state == Running }

// Stats returns the population and turnover of the last step.
func (s *Simulation) Stats() Stats { return s.stats }

// Population returns the number of live cells.
func (s *Simulation) Population() int { return s.stats.Population }

// Capped reports whether the generation cap has been reached.
func (s *Simulation) Capped() bool {
	return s.cfg.MaxGenerations > 0 && s.generation >= s.cfg.MaxGenerations
}

// Start moves to Running unless the generation cap is already reached.
func (s *Simulation) Start() {
	if s.Capped() {
		s.state = Stopped
		return
	}
	s.state = Running
}

// Stop moves to Stopped.
func (s *Simulation) Stop() { s.state = Stopped }

// Pause is an alias for Stop.
func (s *Simulation) Pause() { s.Stop() }

// Tick advances one generation when running. Driving loops call it once per
// cadence tick.
func (s *Simulation) Tick() bool {
	if s.state != Running {
		return false
	}
	return s.Step()
}

// Step advances exactly one generation regardless of the run state and
// reports whether it did. Once the generation cap is reached Step stops the
// run and leaves the board untouched.
func (s *Simulation) Step() bool {
	if s.Capped() {
		s.state = Stopped
		return false
	}

	prev, prevColors := s.grid, s.colors
	rule := s.cfg.rule()
	boundary := s.cfg.Boundary

	// Fresh buffers every generation keep previously returned views intact.
	next := newGrid(prev.w, prev.h)
	var nextColors *ColorGrid
	if prevColors != nil {
		nextColors = newColorGrid(prev.w, prev.h)
	}

	var stats Stats
	for y := 0; y < prev.h; y++ {
		for x := 0; x < prev.w; x++ {
			idx := prev.Index(x, y)
			was := prev.cells[idx]
			now := rule.Next(was, CountLiveNeighbors(prev, x, y, boundary), s.rng)
			next.cells[idx] = now

			switch {
			case now.IsLive() && !was.IsLive():
				stats.Births++
			case was.IsLive() && !now.IsLive():
				stats.Deaths++
			}
			if now.IsLive() {
				stats.Population++
			}
			if nextColors != nil {
				nextColors.cells[idx] = nextColor(prev, prevColors, x, y, boundary, was, now, s.rng)
			}
		}
	}

	s.grid, s.colors = next, nextColors
	s.stats = stats
	s.generation++
	s.rebuildDisplay()
	return true
}

// Reset reseeds the RNG, refills the board at the current size, zeroes the
// generation counter and stops the run.
func (s *Simulation) Reset(seed int64) {
	s.reset(s.grid.Size(), seed)
}

// ResetSize is Reset with new dimensions. Invalid sizes leave the simulation
// untouched.
func (s *Simulation) ResetSize(size core.Size, seed int64) error {
	if err := checkDimensions(size.W, size.H); err != nil {
		return err
	}
	s.reset(size, seed)
	return nil
}

func (s *Simulation) reset(size core.Size, seed int64) {
	s.cfg.Width, s.cfg.Height = size.W, size.H
	s.cfg.Seed = seed
	s.rng = core.NewRNG(seed)

	s.grid = newGrid(size.W, size.H)
	if s.cfg.Fill == FillRandom {
		s.grid.Fill(s.rng, s.cfg.Density, s.cfg.rule())
	}
	s.colors = nil
	if s.cfg.Color {
		s.colors = seedColors(s.grid, s.rng)
	}

	s.generation = 0
	s.state = Stopped
	s.stats = Stats{Population: s.grid.Population()}
	s.display = make([]uint8, size.Area())
	s.rgba = nil
	s.rebuildDisplay()
}

// Load replaces the board with a copy of g, keeping the configuration, and
// stops the run with the generation counter at zero. Colors, when tracked,
// are reseeded for the new live cells.
func (s *Simulation) Load(g *Grid) {
	s.grid = g.Clone()
	s.cfg.Width, s.cfg.Height = g.w, g.h
	s.colors = nil
	if s.cfg.Color {
		s.colors = seedColors(s.grid, s.rng)
	}
	s.generation = 0
	s.state = Stopped
	s.stats = Stats{Population: s.grid.Population()}
	s.display = make([]uint8, len(g.cells))
	s.rgba = nil
	s.rebuildDisplay()
}

// Cells exposes the display buffer: one palette index per cell, valid until
// the next Step or Reset.
func (s *Simulation) Cells() []uint8 { return s.display }

// ColorsRGBA returns per-cell colors for renderers, or nil when color tracking
// is disabled. The slice is reused across calls.
func (s *Simulation) ColorsRGBA() []color.RGBA {
	if s.colors == nil {
		return nil
	}
	if len(s.rgba) != len(s.colors.cells) {
		s.rgba = make([]color.RGBA, len(s.colors.cells))
	}
	s.colors.fillRGBA(s.rgba)
	return s.rgba
}

var lifePalette = []color.RGBA{
	Background.RGBA(),
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
}

// Palette maps Cells values to display colors.
func (s *Simulation) Palette() []color.RGBA { return lifePalette }

func (s *Simulation) rebuildDisplay() {
	for i, c := range s.grid.cells {
		s.display[i] = uint8(c)
	}
}
