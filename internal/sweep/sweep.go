// Package sweep runs many independent mutating simulations in parallel to
// explore where the rule random walk tends to drift.
package sweep

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"mutalife/internal/sims/mutating"
)

// Options configures a sweep.
type Options struct {
	// Runs is the number of independent simulations.
	Runs int
	// Steps is the number of generations each simulation advances.
	Steps int
	// Workers bounds the number of simulations in flight.
	Workers int
	// Seed is the seed of the first run; run i uses Seed+i.
	Seed int64
	// Config is the engine configuration shared by every run.
	Config mutating.Config
}

// Result summarises one finished run.
type Result struct {
	Seed           int64
	Generation     int
	Population     int
	PeakPopulation int
	Mutations      int
	DistinctRules  int
	Rules          string
	// ExtinctAt is the first generation with no live cells, 0 if the run
	// never went extinct.
	ExtinctAt int
}

// Run executes the sweep. Results are ordered by final population, largest
// first, then by seed. Cancelling ctx stops runs that have not finished.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 {
		return nil, errors.Errorf("[sweep.Run] runs must be positive, got %d", opts.Runs)
	}
	if opts.Steps < 0 {
		return nil, errors.Errorf("[sweep.Run] steps must not be negative, got %d", opts.Steps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := 0; i < opts.Runs; i++ {
		seed := opts.Seed + int64(i)
		eg.Go(func() error {
			res, err := runOne(ctx, opts.Config, seed, opts.Steps)
			if err != nil {
				return errors.Wrapf(err, "[sweep.Run] seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].Population != results[b].Population {
			return results[a].Population > results[b].Population
		}
		return results[a].Seed < results[b].Seed
	})
	return results, nil
}

const cancelCheckEvery = 64

func runOne(ctx context.Context, cfg mutating.Config, seed int64, steps int) (Result, error) {
	cfg.Seed = seed
	engine := mutating.New(cfg)
	engine.CreateRandomState()
	engine.Start()

	res := Result{Seed: seed, PeakPopulation: engine.Population()}
	seen := map[string]struct{}{engine.RulesString(): {}}
	engine.PollEvents()

	for step := 0; step < steps; step++ {
		if step%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		engine.Update()
		for _, ev := range engine.PollEvents() {
			if m, ok := ev.(mutating.RulesMutated); ok {
				res.Mutations++
				seen[m.Current.String()] = struct{}{}
			}
		}
		pop := engine.Population()
		if pop > res.PeakPopulation {
			res.PeakPopulation = pop
		}
		if pop == 0 && res.ExtinctAt == 0 {
			res.ExtinctAt = engine.Generation()
		}
	}

	res.Generation = engine.Generation()
	res.Population = engine.Population()
	res.Rules = engine.RulesString()
	res.DistinctRules = len(seen)
	return res, nil
}

// RuleCount pairs a rule string with the number of runs that ended on it.
type RuleCount struct {
	Rules string
	Runs  int
}

// Summary aggregates a sweep.
type Summary struct {
	Runs           int
	Extinct        int
	MeanPopulation float64
	MeanMutations  float64
	TopRules       []RuleCount
}

// Summarize aggregates results, listing at most top final rule sets.
func Summarize(results []Result, top int) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	counts := map[string]int{}
	var pop, muts int
	for _, r := range results {
		if r.ExtinctAt > 0 {
			s.Extinct++
		}
		pop += r.Population
		muts += r.Mutations
		counts[r.Rules]++
	}
	s.MeanPopulation = float64(pop) / float64(len(results))
	s.MeanMutations = float64(muts) / float64(len(results))

	for rules, n := range counts {
		s.TopRules = append(s.TopRules, RuleCount{Rules: rules, Runs: n})
	}
	sort.Slice(s.TopRules, func(i, j int) bool {
		if s.TopRules[i].Runs != s.TopRules[j].Runs {
			return s.TopRules[i].Runs > s.TopRules[j].Runs
		}
		return s.TopRules[i].Rules < s.TopRules[j].Rules
	})
	if top >= 0 && len(s.TopRules) > top {
		s.TopRules = s.TopRules[:top]
	}
	return s
}
