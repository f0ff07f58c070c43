package life

// CellState is the liveness state of a single cell. The numeric value doubles
// as the palette index used by renderers and carries no color information.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a live cell. Multi-state grids use it as the first live
	// sub-state.
	Alive
	// StateB is the second live sub-state used by multi-state grids.
	StateB
)

// Multi-state aliases.
const (
	Empty  = Dead
	StateA = Alive
)

// IsLive reports whether the state counts as live for neighbor counting.
func (s CellState) IsLive() bool { return s != Dead }

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case StateB:
		return "state-b"
	default:
		return "unknown"
	}
}
