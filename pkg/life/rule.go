package life

import (
	"fmt"
	"strings"

	"neon-life/pkg/core"
)

// Rule decides the next state of a cell from its current state and the
// number of live neighbors in the previous generation. Implementations must
// be total over every state and neighbor count.
type Rule interface {
	Name() string
	Next(cur CellState, live int, rng *core.RNG) CellState
	// Spawn picks the live sub-state used when seeding a random board.
	Spawn(rng *core.RNG) CellState
	// DefaultDensity is the live probability used for random fills.
	DefaultDensity() float64
}

// survives reports the B3/S23 outcome for a cell.
func survives(alive bool, live int) bool {
	if alive {
		return live == 2 || live == 3
	}
	return live == 3
}

// Classic is Conway's B3/S23 rule over {Dead, Alive}.
type Classic struct{}

// Name returns the rule identifier.
func (Classic) Name() string { return "classic" }

// Next applies B3/S23. Surviving cells keep their state.
func (Classic) Next(cur CellState, live int, _ *core.RNG) CellState {
	switch {
	case !survives(cur.IsLive(), live):
		return Dead
	case cur.IsLive():
		return cur
	default:
		return Alive
	}
}

// Spawn always yields Alive.
func (Classic) Spawn(*core.RNG) CellState { return Alive }

// DefaultDensity returns the classic seeding probability.
func (Classic) DefaultDensity() float64 { return 0.15 }

// MultiState is B3/S23 over {Empty, StateA, StateB}. Newborn cells pick a
// sub-state uniformly at random regardless of their neighbors; survivors keep
// theirs.
type MultiState struct{}

// Name returns the rule identifier.
func (MultiState) Name() string { return "multistate" }

// Next applies B3/S23 and draws the sub-state of newborn cells.
func (m MultiState) Next(cur CellState, live int, rng *core.RNG) CellState {
	switch {
	case !survives(cur.IsLive(), live):
		return Empty
	case cur.IsLive():
		return cur
	default:
		return m.Spawn(rng)
	}
}

// Spawn returns StateA or StateB with equal probability.
func (MultiState) Spawn(rng *core.RNG) CellState {
	if rng != nil && rng.Bool() {
		return StateB
	}
	return StateA
}

// DefaultDensity splits 20% live cells evenly between the two sub-states.
func (MultiState) DefaultDensity() float64 { return 0.20 }

// ParseRule maps a variant name to a Rule.
func ParseRule(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic", "life", "b3/s23":
		return Classic{}, nil
	case "multistate", "multi", "neon":
		return MultiState{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}
