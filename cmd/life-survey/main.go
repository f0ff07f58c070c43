package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"neon-life/internal/survey"
	"neon-life/pkg/life"
)

func main() {
	preset := life.DefaultConfig()
	width := flag.Int("w", 64, "grid width")
	height := flag.Int("h", 64, "grid height")
	steps := flag.Int("steps", 500, "generations to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent runs")
	seedCount := flag.Int("seeds", 8, "number of consecutive seeds per density")
	firstSeed := flag.Int64("seed", preset.Seed, "first seed")
	densities := flag.String("densities", "0.1,0.15,0.2,0.3,0.4,0.5", "comma-separated initial densities")
	boundary := flag.String("boundary", preset.Boundary.String(), "edge policy: toroidal or clamped")
	rule := flag.String("rule", preset.Rule.Name(), "rule variant: classic or multistate")
	flag.Parse()

	b, err := life.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	r, err := life.ParseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}
	base := preset
	base.Width, base.Height = *width, *height
	base.Boundary, base.Rule = b, r

	plan := survey.Plan{Base: base, Steps: *steps, Workers: *workers}
	for i := 0; i < *seedCount; i++ {
		plan.Seeds = append(plan.Seeds, *firstSeed+int64(i))
	}
	for _, field := range strings.Split(*densities, ",") {
		d, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			log.Fatalf("parsing density %q: %v", field, err)
		}
		plan.Densities = append(plan.Densities, d)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Surveying %d runs (%d workers, %d steps, %dx%d %s %s)\n",
		len(plan.Seeds)*len(plan.Densities), *workers, *steps, base.Width, base.Height, base.Boundary, base.Rule.Name())

	start := time.Now()
	results, err := survey.Run(ctx, plan)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\n%8s %8s %6s %7s %7s %7s %8s %8s\n", "density", "seed", "gens", "initial", "final", "peak", "births", "deaths")
	for _, r := range results {
		marker := ""
		if r.Extinct {
			marker = "  extinct"
		}
		fmt.Printf("%8.3f %8d %6d %7d %7d %7d %8d %8d%s\n",
			r.Density, r.Seed, r.Generations, r.Initial, r.Final, r.Peak, r.Births, r.Deaths, marker)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}
