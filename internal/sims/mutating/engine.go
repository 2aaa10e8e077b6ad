// Package mutating runs Game of Life under a rule set that mutates every
// few generations.
package mutating

import (
	"mutalife/internal/core"
	"mutalife/internal/rules"
	"mutalife/internal/sims/life"
	pcore "mutalife/pkg/core"
)

// Engine drives a Life grid whose rules are replaced by a random mutation
// every Interval generations. The zero value is not usable; call New.
//
// Engine is single-threaded: callers drive it from one loop.
type Engine struct {
	cfg Config

	life    *life.Life
	rng     *pcore.RNG
	mutator *rules.Mutator
	history *rules.History

	running       bool
	generation    int
	interval      int
	sinceMutation int

	events []core.Event
}

// New returns a paused engine with an empty grid.
func New(cfg Config) *Engine {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 1
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.IntervalStep <= 0 {
		cfg.IntervalStep = DefaultConfig().IntervalStep
	}
	if cfg.InitialRules.Validate() != nil {
		cfg.InitialRules = rules.Classic()
	}
	rng := pcore.NewRNG(cfg.Seed)
	return &Engine{
		cfg:      cfg,
		life:     life.FromGrid(core.GridForWindow(cfg.Width, cfg.Height, cfg.CellSize), cfg.InitialRules),
		rng:      rng,
		mutator:  rules.NewMutator(rng),
		history:  rules.NewHistory(cfg.HistoryLimit),
		interval: cfg.Interval,
	}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "mutating" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return e.life.Size() }

// Cells exposes the current generation for bulk rendering.
func (e *Engine) Cells() []uint8 { return e.life.Cells() }

// Grid exposes the current generation.
func (e *Engine) Grid() *core.Grid { return e.life.Grid() }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Reset reseeds the random source, pauses, empties the grid and restores
// the initial rules.
func (e *Engine) Reset(seed int64) {
	e.rng.Reseed(seed)
	e.Stop()
	e.life.Grid().Clear()
	e.life.SetRules(e.cfg.InitialRules)
	e.history.Clear()
	e.generation = 0
	e.sinceMutation = 0
	e.interval = e.cfg.Interval
}

// Start resumes the simulation.
func (e *Engine) Start() {
	if e.running {
		return
	}
	e.running = true
	e.emit(StateChanged{Running: true})
}

// Stop pauses the simulation.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.emit(StateChanged{Running: false})
}

// IsRunning reports whether Update advances the grid.
func (e *Engine) IsRunning() bool { return e.running }

// Step implements core.Sim.
func (e *Engine) Step() { e.Update() }

// Update advances one generation while running. When the countdown has
// expired the rules mutate first, so the new generation is computed under
// the new rules.
func (e *Engine) Update() {
	if !e.running {
		return
	}
	if e.sinceMutation >= e.interval {
		e.mutate(false)
		e.sinceMutation = 0
	}
	e.life.Step()
	e.generation++
	e.sinceMutation++
}

// MutateRules replaces the rules immediately. The automatic countdown is
// left untouched.
func (e *Engine) MutateRules() {
	e.mutate(true)
}

func (e *Engine) mutate(forced bool) {
	prev := e.life.Rules()
	e.history.Push(prev)
	next, strategy := e.mutator.Mutate(prev)
	e.life.SetRules(next)
	e.emit(RulesMutated{
		Generation: e.generation,
		Previous:   prev,
		Current:    next.Clone(),
		Strategy:   strategy,
		Forced:     forced,
	})
}

// ResetRules restores B3/S23, clears the history and zeroes both generation
// counters. The grid and the running state are left alone.
func (e *Engine) ResetRules() {
	e.life.SetRules(rules.Classic())
	e.history.Clear()
	e.generation = 0
	e.sinceMutation = 0
	e.emit(RulesReset{Rules: rules.Classic()})
}

// ClearGrid kills every cell and zeroes the counters. Ignored while running.
func (e *Engine) ClearGrid() {
	if e.running {
		return
	}
	e.life.Grid().Clear()
	e.generation = 0
	e.sinceMutation = 0
	e.emit(GridCleared{})
}

// CreateRandomState fills the grid with a fair coin per cell. Ignored while
// running.
func (e *Engine) CreateRandomState() {
	if e.running {
		return
	}
	g := e.life.Grid()
	g.FillRandom(e.rng.Source())
	e.emit(GridRandomized{Population: g.Population()})
}

// ToggleCell flips one cell. Coordinates wrap. Ignored while running.
func (e *Engine) ToggleCell(row, col int) {
	if e.running {
		return
	}
	g := e.life.Grid()
	row, col = g.Wrap(row, col)
	g.Toggle(row, col)
}

// SetCellValue writes one cell regardless of the running state.
// Coordinates wrap.
func (e *Engine) SetCellValue(row, col int, v uint8) {
	g := e.life.Grid()
	row, col = g.Wrap(row, col)
	g.Set(row, col, v)
}

// SetMutationInterval sets the generations between automatic mutations.
// Values below 1 are ignored; no other bound is applied here.
func (e *Engine) SetMutationInterval(n int) {
	if n < 1 || n == e.interval {
		return
	}
	e.interval = n
	e.emit(IntervalChanged{Interval: n})
}

// IncreaseInterval raises the interval by the configured step with no upper
// bound.
func (e *Engine) IncreaseInterval() int {
	e.SetMutationInterval(e.interval + e.cfg.IntervalStep)
	return e.interval
}

// DecreaseInterval lowers the interval by the configured step unless the
// result would fall below MinInterval, in which case it reports false.
func (e *Engine) DecreaseInterval() (int, bool) {
	next := e.interval - e.cfg.IntervalStep
	if next < e.cfg.MinInterval || next < 1 {
		return e.interval, false
	}
	e.SetMutationInterval(next)
	return e.interval, true
}

// MutationInterval returns the generations between automatic mutations.
func (e *Engine) MutationInterval() int { return e.interval }

// Generation returns the generations advanced since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Countdown returns the generations left before the next automatic
// mutation. It can be zero or negative once the interval is shortened below
// the elapsed count; the mutation then fires on the next Update.
func (e *Engine) Countdown() int { return e.interval - e.sinceMutation }

// Rules returns a copy of the active rule set.
func (e *Engine) Rules() rules.RuleSet { return e.life.Rules() }

// RulesString returns the active rules in B/S notation.
func (e *Engine) RulesString() string { return e.life.Rules().String() }

// History returns the replaced rule sets, oldest first.
func (e *Engine) History() []rules.RuleSet { return e.history.Entries() }

// RecentHistory returns up to n replaced rule sets, newest first.
func (e *Engine) RecentHistory(n int) []rules.RuleSet { return e.history.Recent(n) }

// HistoryLen returns the number of retained history entries.
func (e *Engine) HistoryLen() int { return e.history.Len() }

// Each calls fn for every cell of the current generation.
func (e *Engine) Each(fn func(row, col int, alive bool)) { e.life.Grid().Each(fn) }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.life.Grid().Population() }

// maxPendingEvents bounds the queue between PollEvents calls. Past it the
// oldest events are dropped.
const maxPendingEvents = 256

// PollEvents drains the events raised since the previous call, at most
// the newest maxPendingEvents of them.
func (e *Engine) PollEvents() []core.Event {
	out := e.events
	e.events = nil
	return out
}

func (e *Engine) emit(ev core.Event) {
	if len(e.events) >= maxPendingEvents {
		n := copy(e.events, e.events[len(e.events)-maxPendingEvents+1:])
		e.events = e.events[:n]
	}
	e.events = append(e.events, ev)
}

func init() {
	core.Register("mutating", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
