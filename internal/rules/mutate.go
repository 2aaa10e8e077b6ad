package rules

import (
	"slices"

	pcore "mutalife/pkg/core"
)

// Strategy identifies how a mutation reshaped a rule set.
type Strategy int

const (
	// MutateSurvival adds or removes one survival count.
	MutateSurvival Strategy = iota
	// MutateBirth adds or removes one birth count.
	MutateBirth
	// Shift moves every count in both sets one step in a shared direction.
	Shift
	// Randomize replaces both sets with fresh random counts.
	Randomize
)

func (s Strategy) String() string {
	switch s {
	case MutateSurvival:
		return "survival"
	case MutateBirth:
		return "birth"
	case Shift:
		return "shift"
	case Randomize:
		return "randomize"
	default:
		return "unknown"
	}
}

// Mutator draws random rule mutations. It is not safe for concurrent use.
type Mutator struct {
	rng *pcore.RNG
}

// NewMutator returns a Mutator drawing from rng. Reseeding rng restarts
// the mutation sequence.
func NewMutator(rng *pcore.RNG) *Mutator {
	return &Mutator{rng: rng}
}

// Choose draws a strategy with weights 3:3:2:2 from a ten-sided die.
func (m *Mutator) Choose() Strategy {
	switch roll := m.rng.Between(0, 9); {
	case roll < 3:
		return MutateSurvival
	case roll < 6:
		return MutateBirth
	case roll < 8:
		return Shift
	default:
		return Randomize
	}
}

// Mutate returns a new rule set derived from rs together with the strategy
// that produced it. rs itself is never modified.
func (m *Mutator) Mutate(rs RuleSet) (RuleSet, Strategy) {
	s := m.Choose()
	return m.Apply(rs, s), s
}

// Apply runs a specific strategy against rs. The result always satisfies
// Validate.
func (m *Mutator) Apply(rs RuleSet, s Strategy) RuleSet {
	next := rs.Clone()
	switch s {
	case MutateSurvival:
		next.Survival = m.addOrRemove(next.Survival)
	case MutateBirth:
		next.Birth = m.addOrRemove(next.Birth)
	case Shift:
		delta := 1
		if m.rng.Between(0, 1) == 0 {
			delta = -1
		}
		next.Survival = shift(next.Survival, delta)
		next.Birth = shift(next.Birth, delta)
	case Randomize:
		next.Survival = m.draw(m.rng.Between(1, 4))
		next.Birth = m.draw(m.rng.Between(1, 3))
	}
	if len(next.Survival) == 0 {
		next.Survival = []int{DefaultSurvival}
	}
	if len(next.Birth) == 0 {
		next.Birth = []int{DefaultBirth}
	}
	return next
}

// addOrRemove removes a random element on heads (only if more than one
// remains), otherwise tries to insert a new count. A drawn count that is
// already present leaves the set unchanged.
func (m *Mutator) addOrRemove(counts []int) []int {
	if m.rng.Between(0, 1) == 0 && len(counts) > 1 {
		idx := m.rng.Between(0, len(counts)-1)
		return slices.Delete(counts, idx, idx+1)
	}
	n := m.rng.Between(0, MaxCount)
	if slices.Contains(counts, n) {
		return counts
	}
	counts = append(counts, n)
	slices.Sort(counts)
	return counts
}

// draw performs attempts random draws in [0,8], keeping the distinct ones.
func (m *Mutator) draw(attempts int) []int {
	counts := make([]int, 0, attempts)
	for i := 0; i < attempts; i++ {
		n := m.rng.Between(0, MaxCount)
		if !slices.Contains(counts, n) {
			counts = append(counts, n)
		}
	}
	slices.Sort(counts)
	return counts
}

func shift(counts []int, delta int) []int {
	for i, n := range counts {
		counts[i] = min(MaxCount, max(0, n+delta))
	}
	slices.Sort(counts)
	return slices.Compact(counts)
}
