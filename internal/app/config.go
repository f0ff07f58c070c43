package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"neon-life/pkg/core"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width    int
	Height   int
	MaxGen   int
	Boundary string
	Rule     string
	Color    string

	Sets kvList
}

// NewConfig returns a Config populated with sensible defaults. Zero or empty
// world fields leave the preset's own values alone.
func NewConfig() *Config {
	return &Config{Sim: "neon", Scale: 8, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation preset to run ("+strings.Join(core.SimNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 keeps the preset)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 keeps the preset)")
	fs.IntVar(&c.MaxGen, "max-gen", c.MaxGen, "stop after this many generations (0 = unbounded)")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: toroidal or clamped")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule variant: classic or multistate")
	fs.StringVar(&c.Color, "color", c.Color, "enable the color layer (true/false)")
	fs.Var(&c.Sets, "set", "extra preset option in key=value form (repeatable)")
}

// Overrides flattens the flags into the key/value map understood by the sim
// factories. Explicit flags win over -set entries.
func (c *Config) Overrides() map[string]string {
	out := map[string]string{}
	for _, kv := range c.Sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	out["seed"] = strconv.FormatInt(c.Seed, 10)
	if c.Width > 0 {
		out["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		out["h"] = strconv.Itoa(c.Height)
	}
	if c.MaxGen > 0 {
		out["max_gen"] = strconv.Itoa(c.MaxGen)
	}
	if c.Boundary != "" {
		out["boundary"] = c.Boundary
	}
	if c.Rule != "" {
		out["rule"] = c.Rule
	}
	if c.Color != "" {
		out["color"] = c.Color
	}
	return out
}

// NewSim looks up the configured preset and builds it.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", c.Sim, strings.Join(core.SimNames(), ", "))
	}
	sim, err := factory(c.Overrides())
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", c.Sim, err)
	}
	return sim, nil
}

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}
