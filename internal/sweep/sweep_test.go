package sweep

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"mutalife/internal/sims/mutating"
)

func testOptions() Options {
	cfg := mutating.DefaultConfig()
	cfg.Width = 160
	cfg.Height = 160
	cfg.CellSize = 10
	cfg.Interval = 10
	return Options{Runs: 6, Steps: 45, Workers: 3, Seed: 100, Config: cfg}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	opts := testOptions()
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(a) != 6 || len(b) != 6 {
		t.Fatalf("result counts %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("result %d differs between worker counts: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRunResults(t *testing.T) {
	results, err := Run(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	seeds := map[int64]bool{}
	for i, r := range results {
		seeds[r.Seed] = true
		if r.Generation != 45 {
			t.Fatalf("seed %d ran %d generations", r.Seed, r.Generation)
		}
		// 45 ticks at interval 10 mutate on ticks 11, 21, 31 and 41.
		if r.Mutations != 4 {
			t.Fatalf("seed %d mutated %d times", r.Seed, r.Mutations)
		}
		if r.DistinctRules < 1 || r.DistinctRules > 5 {
			t.Fatalf("seed %d distinct rules %d", r.Seed, r.DistinctRules)
		}
		if r.Rules == "" || r.PeakPopulation < r.Population {
			t.Fatalf("bad result %+v", r)
		}
		if i > 0 && results[i-1].Population < r.Population {
			t.Fatal("results not sorted by population")
		}
	}
	for s := int64(100); s < 106; s++ {
		if !seeds[s] {
			t.Fatalf("seed %d missing", s)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	opts := testOptions()
	opts.Runs = 0
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected error for zero runs")
	}
	opts = testOptions()
	opts.Steps = -1
	if _, err := Run(context.Background(), opts); err == nil {
		t.Fatal("expected error for negative steps")
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, testOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Seed: 1, Population: 10, Mutations: 2, Rules: "B3/S23"},
		{Seed: 2, Population: 0, Mutations: 4, Rules: "B36/S23", ExtinctAt: 12},
		{Seed: 3, Population: 20, Mutations: 0, Rules: "B3/S23"},
	}
	s := Summarize(results, 1)
	if s.Runs != 3 || s.Extinct != 1 {
		t.Fatalf("summary %+v", s)
	}
	if s.MeanPopulation != 10 || s.MeanMutations != 2 {
		t.Fatalf("means %.2f %.2f", s.MeanPopulation, s.MeanMutations)
	}
	if len(s.TopRules) != 1 || s.TopRules[0] != (RuleCount{Rules: "B3/S23", Runs: 2}) {
		t.Fatalf("top rules %+v", s.TopRules)
	}
	if Summarize(nil, 3).Runs != 0 {
		t.Fatal("empty summary")
	}
}
