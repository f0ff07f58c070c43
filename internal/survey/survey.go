// Package survey runs batches of independent simulations across seeds and
// initial densities and collects population statistics for each run.
package survey

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"neon-life/pkg/life"
)

// ErrNoSteps is returned when a plan asks for zero generations.
var ErrNoSteps = errors.New("survey: steps must be positive")

// Plan describes a batch. Every (seed, density) pair becomes one run built
// from Base with a random fill.
type Plan struct {
	Base      life.Config
	Seeds     []int64
	Densities []float64
	Steps     int
	// Workers bounds concurrent runs; zero or less uses runtime.NumCPU.
	Workers int
}

// Result summarises one run.
type Result struct {
	Seed    int64
	Density float64

	Generations int
	Initial     int
	Final       int
	Peak        int
	Births      int
	Deaths      int
	Extinct     bool
}

type job struct {
	seed    int64
	density float64
}

func (p Plan) jobs() []job {
	seeds := p.Seeds
	if len(seeds) == 0 {
		seeds = []int64{p.Base.Seed}
	}
	densities := p.Densities
	if len(densities) == 0 {
		densities = []float64{p.Base.Density}
	}
	out := make([]job, 0, len(seeds)*len(densities))
	for _, d := range densities {
		for _, s := range seeds {
			out = append(out, job{seed: s, density: d})
		}
	}
	return out
}

// Run executes the plan and returns one Result per (seed, density) pair,
// ordered by density then seed. The first failing run cancels the rest.
func Run(ctx context.Context, p Plan) ([]Result, error) {
	if p.Steps <= 0 {
		return nil, ErrNoSteps
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := p.jobs()
	results := make([]Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		g.Go(func() error {
			res, err := runOne(ctx, p.Base, j, p.Steps)
			if err != nil {
				return fmt.Errorf("seed %d density %g: %w", j.seed, j.density, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Density, b.Density); c != 0 {
			return c
		}
		return cmp.Compare(a.Seed, b.Seed)
	})
	return results, nil
}

func runOne(ctx context.Context, base life.Config, j job, steps int) (Result, error) {
	cfg := base
	cfg.Seed = j.seed
	cfg.Density = j.density
	cfg.Fill = life.FillRandom

	sim, err := life.New(cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{Seed: j.seed, Density: j.density}
	res.Initial = sim.Population()
	res.Peak = res.Initial
	for range steps {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if sim.Population() == 0 || !sim.Step() {
			break
		}
		st := sim.Stats()
		res.Births += st.Births
		res.Deaths += st.Deaths
		res.Peak = max(res.Peak, st.Population)
	}
	res.Generations = sim.Generation()
	res.Final = sim.Population()
	res.Extinct = res.Final == 0
	return res, nil
}
