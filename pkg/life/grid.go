package life

import (
	"slices"

	"neon-life/pkg/core"
)

// Grid stores cell states in row-major order.
type Grid struct {
	w, h  int
	cells []CellState
}

// NewGrid allocates a zero-filled grid. Both dimensions must be positive.
func NewGrid(w, h int) (*Grid, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	return newGrid(w, h), nil
}

func newGrid(w, h int) *Grid {
	return &Grid{w: w, h: h, cells: make([]CellState, w*h)}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the state at (x, y).
func (g *Grid) At(x, y int) (CellState, error) {
	if !g.Contains(x, y) {
		return Dead, g.outOfBounds(x, y)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores state s at (x, y).
func (g *Grid) Set(x, y int, s CellState) error {
	if !g.Contains(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[g.Index(x, y)] = s
	return nil
}

func (g *Grid) outOfBounds(x, y int) error {
	return &OutOfBoundsError{X: x, Y: y, Size: g.Size()}
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Fill runs an independent Bernoulli trial per cell: with probability p the
// cell becomes live with a sub-state chosen by rule, otherwise it is dead.
func (g *Grid) Fill(rng *core.RNG, p float64, rule Rule) {
	if rule == nil {
		rule = Classic{}
	}
	for i := range g.cells {
		if rng.Chance(p) {
			g.cells[i] = rule.Spawn(rng)
			continue
		}
		g.cells[i] = Dead
	}
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.IsLive() {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{w: g.w, h: g.h, cells: slices.Clone(g.cells)}
}

// Equal reports whether both grids have the same size and states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.w == o.w && g.h == o.h && slices.Equal(g.cells, o.cells)
}

// View returns a read-only handle on the grid.
func (g *Grid) View() View { return View{g: g} }

// View is a read-only window onto a committed generation. The simulation
// never writes into a grid after handing out a view of it.
type View struct {
	g *Grid
}

// Width returns the number of columns, or zero for an empty view.
func (v View) Width() int {
	if v.g == nil {
		return 0
	}
	return v.g.w
}

// Height returns the number of rows, or zero for an empty view.
func (v View) Height() int {
	if v.g == nil {
		return 0
	}
	return v.g.h
}

// Size returns the dimensions of the viewed grid.
func (v View) Size() core.Size { return core.Size{W: v.Width(), H: v.Height()} }

// At returns the state at (x, y).
func (v View) At(x, y int) (CellState, error) {
	if v.g == nil {
		return Dead, &OutOfBoundsError{X: x, Y: y}
	}
	return v.g.At(x, y)
}

// Live reports whether (x, y) is inside the grid and live.
func (v View) Live(x, y int) bool {
	s, err := v.At(x, y)
	return err == nil && s.IsLive()
}

// Population counts the live cells.
func (v View) Population() int {
	if v.g == nil {
		return 0
	}
	return v.g.Population()
}

// Snapshot returns a mutable copy of the viewed grid.
func (v View) Snapshot() *Grid {
	if v.g == nil {
		return nil
	}
	return v.g.Clone()
}

// Equal reports whether both views show identical grids.
func (v View) Equal(o View) bool { return v.g.Equal(o.g) }
