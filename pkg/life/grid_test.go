package life

import (
	"errors"
	"math"
	"testing"

	"neon-life/pkg/core"
)

func TestNewGridRejectsNonPositiveDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}}
	for _, c := range cases {
		if _, err := NewGrid(c[0], c[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d,%d) err = %v, want ErrInvalidDimensions", c[0], c[1], err)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 3 {
		t.Fatalf("size = %v", g.Size())
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {10, 10}} {
		if _, err := g.At(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("At(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
		if err := g.Set(p[0], p[1], Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err = %v, want ErrOutOfBounds", p[0], p[1], err)
		}
	}

	var oob *OutOfBoundsError
	_, err = g.At(4, 1)
	if !errors.As(err, &oob) || oob.X != 4 || oob.Y != 1 || oob.Size != (core.Size{W: 4, H: 3}) {
		t.Fatalf("unexpected error detail %v", err)
	}

	if err := g.Set(3, 2, StateB); err != nil {
		t.Fatal(err)
	}
	if s, err := g.At(3, 2); err != nil || s != StateB {
		t.Fatalf("At(3,2) = %v, %v", s, err)
	}
}

func TestZeroGridIsAllDead(t *testing.T) {
	g, _ := NewGrid(7, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if s, _ := g.At(x, y); s != Dead {
				t.Fatalf("cell (%d,%d) = %v", x, y, s)
			}
		}
	}
}

func TestFillIsBernoulliPerCell(t *testing.T) {
	g, _ := NewGrid(200, 200)
	g.Fill(core.NewRNG(3), 0.3, Classic{})
	frac := float64(g.Population()) / float64(200*200)
	if math.Abs(frac-0.3) > 0.02 {
		t.Fatalf("live fraction %.3f too far from 0.3", frac)
	}

	again, _ := NewGrid(200, 200)
	again.Fill(core.NewRNG(3), 0.3, Classic{})
	if !g.Equal(again) {
		t.Fatal("fill with the same seed should be deterministic")
	}

	g.Fill(core.NewRNG(3), 0, Classic{})
	if g.Population() != 0 {
		t.Fatal("p=0 must leave the grid empty")
	}
	g.Fill(core.NewRNG(3), 1, Classic{})
	if g.Population() != 200*200 {
		t.Fatal("p=1 must fill every cell")
	}
}

func TestFillMultiStateUsesBothSubStates(t *testing.T) {
	g, _ := NewGrid(64, 64)
	g.Fill(core.NewRNG(11), 0.5, MultiState{})
	counts := map[CellState]int{}
	for _, c := range g.cells {
		counts[c]++
	}
	if counts[StateA] == 0 || counts[StateB] == 0 {
		t.Fatalf("expected both sub-states, got %v", counts)
	}
	if counts[Alive]+counts[StateB] != g.Population() {
		t.Fatalf("population mismatch: %v vs %d", counts, g.Population())
	}
}

func TestWrap(t *testing.T) {
	g, _ := NewGrid(5, 3)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 4, 2},
		{5, 3, 0, 0},
		{-6, 7, 4, 1},
		{2, 1, 2, 1},
	}
	for _, c := range cases {
		if x, y := g.Wrap(c.x, c.y); x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestViewIsReadOnlySnapshot(t *testing.T) {
	g, _ := NewGrid(3, 3)
	_ = g.Set(1, 1, Alive)
	v := g.View()

	snap := v.Snapshot()
	_ = snap.Set(0, 0, Alive)
	if v.Live(0, 0) {
		t.Fatal("mutating a snapshot must not affect the view")
	}
	if !v.Live(1, 1) || v.Population() != 1 {
		t.Fatal("view lost the live cell")
	}

	var empty View
	if empty.Width() != 0 || empty.Height() != 0 || empty.Population() != 0 || empty.Snapshot() != nil {
		t.Fatal("zero view should be empty")
	}
	if _, err := empty.At(0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("zero view At err = %v", err)
	}
}
