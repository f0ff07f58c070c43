//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	icore "neon-life/internal/core"
	"neon-life/internal/render"
	"neon-life/internal/ui"
	"neon-life/pkg/core"
)

const hudWidth = 240

// Game adapts a core simulation to the ebiten.Game interface. Ebiten drives
// Update at a fixed rate; the FixedStep decides which of those ticks advance
// the simulation.
type Game struct {
	sim     core.Sim
	runner  core.Runner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	cadence *icore.FixedStep

	scale    int
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, tps int) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultTheme()),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(),
		cadence: icore.NewFixedStep(tps),
		scale:   max(scale, 1),
		seed:    seed,
	}
	g.runner, _ = sim.(core.Runner)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) toggleRun() {
	if g.runner == nil {
		return
	}
	if g.runner.IsRunning() {
		g.runner.Stop()
		return
	}
	g.runner.Start()
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.runner != nil {
		g.runner.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.cadence.SetTPS(g.cadence.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.cadence.SetTPS(g.cadence.TPS() - 1)
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W*g.scale, g.cadence.TPS())

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case g.runner != nil && g.runner.IsRunning():
		if g.cadence.ShouldStep() {
			g.runner.Tick()
		}
	case g.runner == nil:
		if g.cadence.ShouldStep() {
			g.sim.Step()
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	size := g.sim.Size()
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size: the scaled grid plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
