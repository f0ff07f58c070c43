package ui

import (
	"fmt"
	"strings"

	"neon-life/pkg/core"
)

// HelpLines lists the key bindings shared by the GUI and terminal drivers.
var HelpLines = []string{
	"space  start / stop",
	"n      single step",
	"r      reset (same seed)",
	"s      reset (new seed)",
	"+ / -  speed up / slow down",
	"h      toggle help",
	"q      quit",
}

// Status summarises a sim for a one-line status bar.
func Status(sim core.Sim, tps int) string {
	var b strings.Builder
	b.WriteString(sim.Name())
	b.WriteString(" ")
	b.WriteString(sim.Size().String())
	if r, ok := sim.(core.Runner); ok {
		state := "stopped"
		if r.IsRunning() {
			state = "running"
		}
		fmt.Fprintf(&b, "  gen %d  %s", r.Generation(), state)
	}
	if p, ok := sim.(core.PopulationProvider); ok {
		fmt.Fprintf(&b, "  pop %d", p.Population())
	}
	if tps > 0 {
		fmt.Fprintf(&b, "  %d tps", tps)
	}
	return b.String()
}
