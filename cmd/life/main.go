//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"neon-life/internal/app"
	_ "neon-life/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.TPS)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("neon-life — " + sim.Name())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
