package life

import "neon-life/pkg/core"

const (
	minEdge = 8
	maxEdge = 512
)

// Parameters reports the current tunables.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.StringParam("boundary", "Boundary", s.cfg.Boundary.String()),
				core.Int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				core.StringParam("rule", "Rule", s.cfg.rule().Name()),
				core.BoolParam("color", "Color layer", s.cfg.Color),
				core.StringParam("fill", "Fill", s.cfg.Fill.String()),
				core.FloatParam("density", "Density", s.cfg.Density),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("max_gen", "Max generations", s.cfg.MaxGenerations),
				core.IntParam("generation", "Generation", s.generation),
				core.IntParam("population", "Population", s.stats.Population),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable tunables.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "w", Label: "Width", Type: core.ParamTypeInt, Step: 8, Min: minEdge, Max: maxEdge, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Type: core.ParamTypeInt, Step: 8, Min: minEdge, Max: maxEdge, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "max_gen", Label: "Max gen", Type: core.ParamTypeInt, Step: 50, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates an integer tunable. Changing the size rebuilds the
// board with the current seed.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	size := s.Size()
	switch key {
	case "w":
		size.W = value
	case "h":
		size.H = value
	case "max_gen":
		if value < 0 {
			return false
		}
		s.cfg.MaxGenerations = value
		if s.Capped() {
			s.state = Stopped
		}
		return true
	default:
		return false
	}
	return s.ResetSize(size, s.cfg.Seed) == nil
}

// SetFloatParameter updates a floating point tunable. A new density applies
// from the next reset.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if key != "density" || value < 0 || value > 1 {
		return false
	}
	s.cfg.Density = value
	return true
}
