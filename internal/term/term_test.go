package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"neon-life/pkg/life"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func blinkerSim(t *testing.T) *life.Simulation {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 5, 5
	cfg.Fill = life.FillZero
	sim, err := life.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g, _ := life.NewGrid(5, 5)
	for x := 1; x <= 3; x++ {
		_ = g.Set(x, 2, life.Alive)
	}
	sim.Load(g)
	return sim
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	screen := newScreen(t)
	sim := blinkerSim(t)
	d := NewDriver(screen, sim, 1, 10)
	d.Draw()

	_, _, style, _ := screen.GetContent(4, 2)
	_, bg, _ := style.Decompose()
	if bg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("live cell background = %v", bg)
	}
	_, _, style, _ = screen.GetContent(0, 0)
	_, bg, _ = style.Decompose()
	want := life.Background
	if bg != tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)) {
		t.Fatalf("dead cell background = %v", bg)
	}

	var status strings.Builder
	for x := 0; x < 40; x++ {
		r, _, _, _ := screen.GetContent(x, 5)
		status.WriteRune(r)
	}
	if !strings.HasPrefix(status.String(), "life 5x5  gen 0  stopped  pop 3") {
		t.Fatalf("unexpected status line %q", status.String())
	}
}

func TestHandleKeyControls(t *testing.T) {
	sim := blinkerSim(t)
	d := NewDriver(newScreen(t), sim, 1, 10)
	d.newSeed = func() int64 { return 99 }

	if d.HandleKey(key(' ')); !sim.IsRunning() {
		t.Fatal("space should start the run")
	}
	if d.HandleKey(key(' ')); sim.IsRunning() {
		t.Fatal("second space should stop the run")
	}
	d.HandleKey(key('n'))
	if sim.Generation() != 1 {
		t.Fatalf("n should step once, generation %d", sim.Generation())
	}
	d.HandleKey(key('+'))
	if d.TPS() != 11 {
		t.Fatalf("+ should raise tps, got %d", d.TPS())
	}
	d.HandleKey(key('-'))
	d.HandleKey(key('-'))
	if d.TPS() != 9 {
		t.Fatalf("- should lower tps, got %d", d.TPS())
	}
	d.HandleKey(key('s'))
	if d.Seed() != 99 || sim.Config().Seed != 99 || sim.Generation() != 0 {
		t.Fatalf("s should reset with a fresh seed, seed %d gen %d", d.Seed(), sim.Generation())
	}
	d.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if !sim.IsRunning() {
		t.Fatal("enter should start the run")
	}
	if !d.HandleKey(key('q')) {
		t.Fatal("q should quit")
	}
	if !d.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	d := NewDriver(screen, blinkerSim(t), 1, 10)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d := NewDriver(newScreen(t), blinkerSim(t), 1, 10)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := d.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v, want deadline exceeded", err)
	}
}
