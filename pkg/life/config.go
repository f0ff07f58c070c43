package life

import (
	"fmt"
	"strconv"

	"neon-life/pkg/core"
)

// Fill selects how a board is populated on construction and reset.
type Fill uint8

const (
	// FillRandom makes each cell live with probability Config.Density.
	FillRandom Fill = iota
	// FillZero starts from an all-dead board.
	FillZero
)

func (f Fill) String() string {
	if f == FillZero {
		return "zero"
	}
	return "random"
}

// Config controls a Simulation.
type Config struct {
	Name   string
	Width  int
	Height int

	Fill    Fill
	Density float64

	Boundary Boundary
	Rule     Rule
	Color    bool

	// MaxGenerations caps the run; zero means unbounded.
	MaxGenerations int
	Seed           int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Name:     "life",
		Width:    50,
		Height:   50,
		Fill:     FillRandom,
		Density:  Classic{}.DefaultDensity(),
		Boundary: Toroidal,
		Rule:     Classic{},
		Seed:     42,
	}
}

// FromMap populates the default config from a string map (flag-style
// key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply overrides fields of c from a string map. Malformed values are ignored.
// Selecting a rule without an explicit density adopts the rule's default.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
			c.Density = parsed.DefaultDensity()
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["color"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Color = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		switch v {
		case "zero", "empty":
			c.Fill = FillZero
		case "random":
			c.Fill = FillRandom
		}
	}
	if v, ok := cfg["max_gen"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxGenerations = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

func (c Config) rule() Rule {
	if c.Rule == nil {
		return Classic{}
	}
	return c.Rule
}

func (c Config) validate() error {
	if err := checkDimensions(c.Width, c.Height); err != nil {
		return err
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, c.Density)
	}
	return nil
}

func register(name string, base func() Config) {
	core.Register(name, func(cfg map[string]string) (core.Sim, error) {
		c := base().Apply(cfg)
		c.Name = name
		sim, err := New(c)
		if err != nil {
			return nil, err
		}
		return sim, nil
	})
}

func init() {
	register("life", DefaultConfig)
	register("life-clamped", func() Config {
		c := DefaultConfig()
		c.Boundary = Clamped
		return c
	})
	register("hue", func() Config {
		c := DefaultConfig()
		c.Color = true
		return c
	})
	register("neon", func() Config {
		c := DefaultConfig()
		c.Rule = MultiState{}
		c.Density = MultiState{}.DefaultDensity()
		c.Color = true
		return c
	})
}
