package life

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbor lookups treat the grid edges.
type Boundary uint8

const (
	// Toroidal wraps coordinates modulo the grid size.
	Toroidal Boundary = iota
	// Clamped treats positions beyond the edge as absent.
	Clamped
)

func (b Boundary) String() string {
	switch b {
	case Toroidal:
		return "toroidal"
	case Clamped:
		return "clamped"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

// ParseBoundary maps a policy name to a Boundary.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	case "clamped", "clamp", "bounded":
		return Clamped, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, name)
}

// mooreOffsets lists the 3x3 window in row-major order without the center.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors calls fn for each Moore neighbor of (x, y) in row-major order.
// Under Toroidal every one of the eight positions is visited after wrapping,
// so tiny grids visit the same cell more than once. Under Clamped positions
// outside the grid are skipped. Iteration stops when fn returns false.
func Neighbors(g *Grid, x, y int, b Boundary, fn func(nx, ny int) bool) {
	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if b == Clamped {
			if !g.Contains(nx, ny) {
				continue
			}
		} else {
			nx, ny = g.Wrap(nx, ny)
		}
		if !fn(nx, ny) {
			return
		}
	}
}

// CountLiveNeighbors returns the number of live Moore neighbors of (x, y),
// a value in [0, 8].
func CountLiveNeighbors(g *Grid, x, y int, b Boundary) int {
	n := 0
	Neighbors(g, x, y, b, func(nx, ny int) bool {
		if g.cells[g.Index(nx, ny)].IsLive() {
			n++
		}
		return true
	})
	return n
}
