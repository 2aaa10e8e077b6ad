package mutating

import (
	"fmt"

	"mutalife/internal/core"
	"mutalife/internal/rules"
)

// StateChanged is raised when the simulation starts or pauses.
type StateChanged struct {
	Running bool
}

func (e StateChanged) String() string {
	if e.Running {
		return "running"
	}
	return "paused"
}

// RulesMutated is raised whenever the active rule set is replaced by a
// mutation. Forced is set for MutateRules calls, clear for the automatic
// cadence.
type RulesMutated struct {
	Generation int
	Previous   rules.RuleSet
	Current    rules.RuleSet
	Strategy   rules.Strategy
	Forced     bool
}

func (e RulesMutated) String() string {
	return fmt.Sprintf("rules mutated %s -> %s (%s)", e.Previous, e.Current, e.Strategy)
}

// RulesReset is raised when the classic rules are restored.
type RulesReset struct {
	Rules rules.RuleSet
}

func (e RulesReset) String() string { return "rules reset to " + e.Rules.String() }

// GridCleared is raised when a paused grid is cleared.
type GridCleared struct{}

func (GridCleared) String() string { return "grid cleared" }

// GridRandomized is raised when a paused grid is refilled at random.
type GridRandomized struct {
	Population int
}

func (e GridRandomized) String() string {
	return fmt.Sprintf("random pattern generated (%d live)", e.Population)
}

// IntervalChanged is raised when the mutation interval changes.
type IntervalChanged struct {
	Interval int
}

func (e IntervalChanged) String() string {
	return fmt.Sprintf("mutation interval %d generations", e.Interval)
}

var (
	_ core.Event = StateChanged{}
	_ core.Event = RulesMutated{}
	_ core.Event = RulesReset{}
	_ core.Event = GridCleared{}
	_ core.Event = GridRandomized{}
	_ core.Event = IntervalChanged{}
)
