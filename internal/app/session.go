package app

import (
	"time"

	"github.com/charmbracelet/log"

	"mutalife/internal/core"
	"mutalife/internal/sims/mutating"
)

// Action is a user command bound to a key.
type Action int

const (
	ActionStart Action = iota
	ActionPause
	ActionRandom
	ActionClear
	ActionMutate
	ActionResetRules
	ActionIntervalUp
	ActionIntervalDown
	ActionSpeedUp
	ActionSlowDown
	ActionStepOnce
)

const (
	speedStep = 2
	// minSpeed is the rate below which slowing down is refused.
	minSpeed = 5

	titleIdle    = "Conway's Game of Life - Mutating Rules"
	titleRunning = "Mutating Game of Life - RUNNING"
	titlePaused  = "Mutating Game of Life - PAUSED"
)

// Controller is the command surface of a sim that supports interactive
// editing and rule mutation.
type Controller interface {
	Start()
	Stop()
	IsRunning() bool
	Update()
	ClearGrid()
	CreateRandomState()
	MutateRules()
	ResetRules()
	ToggleCell(row, col int)
	Grid() *core.Grid
	IncreaseInterval() int
	DecreaseInterval() (int, bool)
	MutationInterval() int
}

var _ Controller = (*mutating.Engine)(nil)

// Session owns the non-graphical half of the application: it turns actions
// and pointer input into sim calls, paces ticks and reports sim events.
// Sims that are not Controllers just run, pause and single-step.
type Session struct {
	sim      core.Sim
	ctl      Controller
	clock    *core.FixedStep
	logger   *log.Logger
	cellSize int

	paused   bool
	tickOnce bool

	dragging bool
	lastCell [2]int

	title string
}

// NewSession wraps sim. tps is the initial simulation rate.
func NewSession(sim core.Sim, cellSize, tps int, logger *log.Logger) *Session {
	if cellSize <= 0 {
		cellSize = 1
	}
	ctl, _ := sim.(Controller)
	return &Session{
		sim:      sim,
		ctl:      ctl,
		clock:    core.NewFixedStep(tps),
		logger:   logger,
		cellSize: cellSize,
		title:    titleIdle,
	}
}

// Sim returns the wrapped simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Title returns the window title reflecting the latest state change.
func (s *Session) Title() string { return s.title }

// TPS returns the current simulation rate.
func (s *Session) TPS() int { return s.clock.TPS() }

// Running reports whether the sim is advancing.
func (s *Session) Running() bool {
	if s.ctl != nil {
		return s.ctl.IsRunning()
	}
	return !s.paused
}

// Do executes a single action.
func (s *Session) Do(a Action) {
	switch a {
	case ActionSpeedUp:
		s.clock.SetTPS(s.clock.TPS() + speedStep)
		s.logger.Info("speed increased", "tps", s.clock.TPS())
		return
	case ActionSlowDown:
		if s.clock.TPS() > minSpeed {
			s.clock.SetTPS(s.clock.TPS() - speedStep)
			s.logger.Info("speed decreased", "tps", s.clock.TPS())
		}
		return
	}

	if s.ctl == nil {
		s.doPlain(a)
		return
	}
	switch a {
	case ActionStart:
		if !s.ctl.IsRunning() {
			s.clock.Reset()
		}
		s.ctl.Start()
	case ActionPause:
		s.ctl.Stop()
	case ActionRandom:
		s.ctl.CreateRandomState()
	case ActionClear:
		s.ctl.ClearGrid()
	case ActionMutate:
		s.ctl.MutateRules()
	case ActionResetRules:
		s.ctl.ResetRules()
	case ActionIntervalUp:
		s.ctl.IncreaseInterval()
	case ActionIntervalDown:
		if n, ok := s.ctl.DecreaseInterval(); !ok {
			s.logger.Debug("mutation interval already at minimum", "interval", n)
		}
	case ActionStepOnce:
		if !s.ctl.IsRunning() {
			s.ctl.Start()
			s.ctl.Update()
			s.ctl.Stop()
		}
	}
}

func (s *Session) doPlain(a Action) {
	switch a {
	case ActionStart:
		if s.paused {
			s.clock.Reset()
		}
		s.paused = false
	case ActionPause:
		s.paused = true
	case ActionRandom:
		s.sim.Reset(time.Now().UnixNano())
	case ActionStepOnce:
		s.tickOnce = true
	}
}

// Pointer feeds the mouse state in pixel coordinates. A press toggles the
// cell under the cursor once; dragging toggles each newly entered cell.
// Positions outside the grid are ignored.
func (s *Session) Pointer(x, y int, pressed bool) {
	if !pressed {
		s.dragging = false
		return
	}
	if s.ctl == nil || x < 0 || y < 0 {
		return
	}
	row, col := y/s.cellSize, x/s.cellSize
	if !s.ctl.Grid().Contains(row, col) {
		return
	}
	cell := [2]int{row, col}
	if s.dragging && cell == s.lastCell {
		return
	}
	s.dragging = true
	s.lastCell = cell
	s.ctl.ToggleCell(row, col)
}

// Tick advances the sim if a tick is due. It reports whether a step ran.
func (s *Session) Tick() bool {
	if !s.clock.ShouldStep() {
		return false
	}
	return s.step()
}

// TickAt is Tick with an explicit clock reading.
func (s *Session) TickAt(now time.Time) bool {
	if !s.clock.Advance(now) {
		return false
	}
	return s.step()
}

func (s *Session) step() bool {
	if s.ctl != nil {
		if !s.ctl.IsRunning() {
			return false
		}
		s.ctl.Update()
		return true
	}
	if s.paused && !s.tickOnce {
		return false
	}
	s.sim.Step()
	s.tickOnce = false
	return true
}

// DrainEvents logs every pending sim event and updates the title. It
// reports whether the title changed.
func (s *Session) DrainEvents() bool {
	src, ok := s.sim.(core.EventSource)
	if !ok {
		return false
	}
	before := s.title
	for _, ev := range src.PollEvents() {
		switch e := ev.(type) {
		case mutating.StateChanged:
			if e.Running {
				s.title = titleRunning
			} else {
				s.title = titlePaused
			}
			s.logger.Debug("state changed", "running", e.Running)
		case mutating.RulesMutated:
			s.logger.Info("rules mutated",
				"rules", e.Current.String(),
				"previous", e.Previous.String(),
				"strategy", e.Strategy.String(),
				"forced", e.Forced,
				"generation", e.Generation)
		case mutating.RulesReset:
			s.logger.Info("rules reset to classic Conway", "rules", e.Rules.String())
		case mutating.GridCleared:
			s.logger.Info("grid cleared")
		case mutating.GridRandomized:
			s.logger.Info("random pattern generated", "population", e.Population)
		case mutating.IntervalChanged:
			s.logger.Info("mutation interval changed", "generations", e.Interval)
		default:
			s.logger.Info(ev.String())
		}
	}
	return s.title != before
}
