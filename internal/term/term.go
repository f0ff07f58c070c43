// Package term drives a simulation inside a terminal using tcell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	icore "neon-life/internal/core"
	"neon-life/internal/render"
	"neon-life/internal/ui"
	"neon-life/pkg/core"
)

// frameInterval is how often the loop redraws and polls the step cadence.
const frameInterval = 16 * time.Millisecond

// Driver owns a screen and the simulation shown on it.
type Driver struct {
	screen  tcell.Screen
	sim     core.Sim
	runner  core.Runner
	cadence *icore.FixedStep
	theme   render.Theme

	seed    int64
	newSeed func() int64
}

// NewDriver wires sim to an initialised screen.
func NewDriver(screen tcell.Screen, sim core.Sim, seed int64, tps int) *Driver {
	d := &Driver{
		screen:  screen,
		sim:     sim,
		cadence: icore.NewFixedStep(tps),
		theme:   render.DefaultTheme(),
		seed:    seed,
		newSeed: func() int64 { return time.Now().UnixNano() },
	}
	d.runner, _ = sim.(core.Runner)
	return d
}

// Seed returns the seed used by the most recent reset.
func (d *Driver) Seed() int64 { return d.seed }

// TPS returns the current step rate.
func (d *Driver) TPS() int { return d.cadence.TPS() }

// Draw paints every cell as two terminal columns plus a status line below
// the board, then shows the screen.
func (d *Driver) Draw() {
	d.screen.Clear()
	size := d.sim.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := render.CellColor(d.sim, y*size.W+x, d.theme)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			d.screen.SetContent(x*2, y, ' ', nil, style)
			d.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	drawText(d.screen, 0, size.H, ui.Status(d.sim, d.cadence.TPS()))
	d.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// HandleKey applies a key press and reports whether the driver should quit.
func (d *Driver) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if d.runner != nil {
			d.runner.Start()
		}
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if d.runner == nil {
			break
		}
		if d.runner.IsRunning() {
			d.runner.Stop()
		} else {
			d.runner.Start()
		}
	case 'n':
		d.sim.Step()
	case 'r':
		d.sim.Reset(d.seed)
	case 's':
		d.seed = d.newSeed()
		d.sim.Reset(d.seed)
	case '+', '=':
		d.cadence.SetTPS(d.cadence.TPS() + 1)
	case '-':
		d.cadence.SetTPS(d.cadence.TPS() - 1)
	}
	return false
}

// advance steps the simulation when the cadence allows it. Sims that do not
// implement core.Runner always run.
func (d *Driver) advance() {
	if !d.cadence.ShouldStep() {
		return
	}
	if d.runner != nil {
		d.runner.Tick()
		return
	}
	d.sim.Step()
}

// Run polls input and redraws until ctx is done or the user quits.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go d.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}
			d.Draw()
		case <-ticker.C:
			d.advance()
			d.Draw()
		}
	}
}
