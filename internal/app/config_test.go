package app

import (
	"flag"
	"io"
	"strings"
	"testing"

	"neon-life/pkg/core"
	"neon-life/pkg/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Sim != "neon" || cfg.TPS != 10 || cfg.Seed != 42 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	got := cfg.Overrides()
	if len(got) != 1 || got["seed"] != "42" {
		t.Fatalf("defaults should only pass the seed, got %v", got)
	}
}

func TestOverridesPreferExplicitFlags(t *testing.T) {
	cfg := parse(t,
		"-sim", "life",
		"-w", "40", "-h", "20",
		"-max-gen", "300",
		"-boundary", "clamped",
		"-set", "density=0.3",
		"-set", "w=999",
		"-seed", "7",
	)
	got := cfg.Overrides()
	want := map[string]string{
		"w": "40", "h": "20", "max_gen": "300", "boundary": "clamped", "density": "0.3", "seed": "7",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("override %s = %q, want %q (all: %v)", k, got[k], v, got)
		}
	}
}

func TestSetRejectsMalformedPairs(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-set", "density"}); err == nil {
		t.Fatal("expected an error for a value without '='")
	}
}

func TestNewSimBuildsPreset(t *testing.T) {
	cfg := parse(t, "-sim", "life", "-w", "12", "-h", "9", "-max-gen", "5", "-color", "true")
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != (core.Size{W: 12, H: 9}) {
		t.Fatalf("size = %v", sim.Size())
	}
	ls, ok := sim.(*life.Simulation)
	if !ok {
		t.Fatalf("unexpected sim type %T", sim)
	}
	if ls.Config().MaxGenerations != 5 || ls.Config().Seed != 42 || !ls.Config().Color {
		t.Fatalf("config not applied: %+v", ls.Config())
	}
}

func TestNewSimUnknownPreset(t *testing.T) {
	cfg := parse(t, "-sim", "nope")
	_, err := cfg.NewSim()
	if err == nil || !strings.Contains(err.Error(), "unknown sim") {
		t.Fatalf("err = %v", err)
	}
}
