package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"conway-ca/internal/life"

	"golang.org/x/sync/errgroup"
)

type sweepConfig struct {
	rows, cols int
	wrap       bool
	maxTicks   int
	firstSeed  int64
	seeds      int
	workers    int
}

type seedResult struct {
	seed       int64
	state      life.State
	generation int
	population int
}

type summary struct {
	counts      map[life.State]int
	meanGen     map[life.State]float64
	longest     seedResult
	totalSeeds  int
	elapsedTime time.Duration
}

func main() {
	cfg := sweepConfig{}
	flag.IntVar(&cfg.rows, "rows", 16, "grid rows")
	flag.IntVar(&cfg.cols, "cols", 14, "grid columns")
	flag.BoolVar(&cfg.wrap, "wrap", true, "wrap around edges")
	flag.IntVar(&cfg.maxTicks, "max", 5000, "tick limit per seed")
	flag.Int64Var(&cfg.firstSeed, "seed", 1, "first seed")
	flag.IntVar(&cfg.seeds, "seeds", 1000, "number of consecutive seeds to run")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	fmt.Printf("Sweeping %d seeds on %dx%d (wrap=%v, %d workers, %d tick limit)\n",
		cfg.seeds, cfg.cols, cfg.rows, cfg.wrap, cfg.workers, cfg.maxTicks)

	sum, err := sweep(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nResults (elapsed %s):\n", sum.elapsedTime.Round(time.Millisecond))
	for _, st := range []life.State{life.Stable, life.Oscillating, life.Progressing} {
		fmt.Printf("%-12s %6d  mean generation %.1f\n", st, sum.counts[st], sum.meanGen[st])
	}
	fmt.Printf("\nLongest run: seed=%d state=%v generation=%d population=%d\n",
		sum.longest.seed, sum.longest.state, sum.longest.generation, sum.longest.population)
}

// sweep runs each seed in its own simulation. Simulations share nothing, so
// workers only fan out over seeds.
func sweep(ctx context.Context, cfg sweepConfig) (summary, error) {
	start := time.Now()
	results := make([]seedResult, cfg.seeds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.workers, 1))
	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runSeed(cfg, cfg.firstSeed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary{}, err
	}

	sum := summary{
		counts:      map[life.State]int{},
		meanGen:     map[life.State]float64{},
		totalSeeds:  len(results),
		elapsedTime: time.Since(start),
	}
	for _, res := range results {
		sum.counts[res.state]++
		sum.meanGen[res.state] += float64(res.generation)
		if res.generation > sum.longest.generation {
			sum.longest = res
		}
	}
	for st, n := range sum.counts {
		sum.meanGen[st] /= float64(n)
	}
	return sum, nil
}

func runSeed(cfg sweepConfig, seed int64) (seedResult, error) {
	sim, err := life.New(cfg.rows, cfg.cols, cfg.wrap)
	if err != nil {
		return seedResult{}, fmt.Errorf("seed %d: %w", seed, err)
	}
	sim.Reset(seed)
	state, _ := sim.Run(cfg.maxTicks)
	return seedResult{
		seed:       seed,
		state:      state,
		generation: sim.Generation(),
		population: sim.Buffers().Current().Population(),
	}, nil
}
