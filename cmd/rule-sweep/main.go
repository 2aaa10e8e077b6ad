package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"mutalife/internal/sims/mutating"
	"mutalife/internal/sweep"
)

func main() {
	runs := flag.Int("runs", 64, "number of independent simulations")
	steps := flag.Int("steps", 1000, "generations to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Int64("seed", 1, "seed of the first run")
	interval := flag.Int("interval", mutating.DefaultConfig().Interval, "generations between mutations")
	cols := flag.Int("cols", 64, "grid columns")
	rows := flag.Int("rows", 64, "grid rows")
	top := flag.Int("top", 5, "number of results and rule sets to print")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "rule-sweep"})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := mutating.DefaultConfig()
	cfg.CellSize = 1
	cfg.Width = *cols
	cfg.Height = *rows
	cfg.Interval = *interval

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("sweeping", "runs", *runs, "steps", *steps, "workers", *workers, "grid", fmt.Sprintf("%dx%d", *cols, *rows), "interval", *interval)
	start := time.Now()
	results, err := sweep.Run(ctx, sweep.Options{
		Runs:    *runs,
		Steps:   *steps,
		Workers: *workers,
		Seed:    *seed,
		Config:  cfg,
	})
	if err != nil {
		logger.Fatal("sweep failed", "err", err)
	}
	elapsed := time.Since(start)
	logger.Debug("sweep finished", "elapsed", elapsed.Round(time.Millisecond))

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d pop=%d peak=%d mutations=%d distinct=%d extinctAt=%d rules=%s\n",
			i+1, res.Seed, res.Population, res.PeakPopulation, res.Mutations, res.DistinctRules, res.ExtinctAt, res.Rules)
	}

	summary := sweep.Summarize(results, *top)
	fmt.Printf("\n%d runs, %d went extinct, mean population %.1f, mean mutations %.1f\n",
		summary.Runs, summary.Extinct, summary.MeanPopulation, summary.MeanMutations)
	fmt.Println("Most common final rules:")
	for _, rc := range summary.TopRules {
		fmt.Printf("  %-16s %d\n", rc.Rules, rc.Runs)
	}
}
