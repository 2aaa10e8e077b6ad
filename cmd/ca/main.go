//go:build ebiten

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"mutalife/internal/app"
	"mutalife/internal/core"
	_ "mutalife/internal/sims/life"
	_ "mutalife/internal/sims/mutating"
)

const controls = `Controls:
  ENTER       start the simulation
  SPACE       pause the simulation
  R           generate a random pattern (paused)
  C           clear the grid (paused)
  M           mutate the rules now
  T           reset the rules to B3/S23
  + / -       change the mutation interval by 10 generations
  F / S       speed up / slow down
  H           toggle the rule history
  N           advance one generation (paused)
  Mouse       click or drag to toggle cells (paused)
  Q / ESC     quit`

func main() {
	cfg, err := app.Resolve(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := cfg.NewLogger(os.Stderr)

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		logger.Fatal("unknown sim", "sim", cfg.Sim, "available", strings.Join(app.SimNames(), ", "))
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	fmt.Println(controls)
	logger.Info("starting", "sim", sim.Name(), "cols", sim.Size().W, "rows", sim.Size().H, "tps", cfg.TPS)

	game := app.New(sim, cfg, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop failed", "err", err)
	}
}
