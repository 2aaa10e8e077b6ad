// Package rules models outer-totalistic birth/survival rule sets in B/S
// notation and the random walk that mutates them.
package rules

import (
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxCount is the largest possible live-neighbour count.
	MaxCount = 8
	// DefaultSurvival is inserted when a survival set would otherwise be empty.
	DefaultSurvival = 2
	// DefaultBirth is inserted when a birth set would otherwise be empty.
	DefaultBirth = 3
)

// ErrInvalidRule is returned for rule strings or sets that break the
// non-empty, sorted, unique, in-range invariant.
var ErrInvalidRule = errors.New("invalid rule set")

// RuleSet holds the neighbour counts at which dead cells are born and live
// cells survive. Both slices are kept sorted and free of duplicates.
type RuleSet struct {
	Birth    []int
	Survival []int
}

// Classic returns Conway's B3/S23.
func Classic() RuleSet {
	return RuleSet{Birth: []int{3}, Survival: []int{2, 3}}
}

// String renders the canonical form, e.g. "B36/S23".
func (rs RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range rs.Birth {
		b.WriteString(strconv.Itoa(n))
	}
	b.WriteString("/S")
	for _, n := range rs.Survival {
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}

// Clone returns a deep copy.
func (rs RuleSet) Clone() RuleSet {
	return RuleSet{Birth: slices.Clone(rs.Birth), Survival: slices.Clone(rs.Survival)}
}

// Born reports whether a dead cell with n live neighbours comes alive.
func (rs RuleSet) Born(n int) bool { return slices.Contains(rs.Birth, n) }

// Survives reports whether a live cell with n live neighbours stays alive.
func (rs RuleSet) Survives(n int) bool { return slices.Contains(rs.Survival, n) }

// Validate checks the rule set invariant.
func (rs RuleSet) Validate() error {
	if err := validateCounts(rs.Birth); err != nil {
		return errors.Wrapf(err, "[Validate] birth %v", rs.Birth)
	}
	if err := validateCounts(rs.Survival); err != nil {
		return errors.Wrapf(err, "[Validate] survival %v", rs.Survival)
	}
	return nil
}

func validateCounts(counts []int) error {
	if len(counts) == 0 {
		return errors.Wrap(ErrInvalidRule, "empty set")
	}
	for i, n := range counts {
		if n < 0 || n > MaxCount {
			return errors.Wrapf(ErrInvalidRule, "count %d out of range", n)
		}
		if i > 0 && counts[i-1] >= n {
			return errors.Wrap(ErrInvalidRule, "counts not strictly ascending")
		}
	}
	return nil
}

// Table is a precomputed lookup indexed by [alive][neighbours].
type Table [2][MaxCount + 1]bool

// Table builds the lookup used by the stepper.
func (rs RuleSet) Table() Table {
	var t Table
	for n := 0; n <= MaxCount; n++ {
		t[0][n] = rs.Born(n)
		t[1][n] = rs.Survives(n)
	}
	return t
}

// Next reports whether a cell is alive in the next generation.
func (t *Table) Next(alive bool, neighbors int) bool {
	if alive {
		return t[1][neighbors]
	}
	return t[0][neighbors]
}

// Parse reads a rule in B/S notation. Either half may come first and the
// letters are case-insensitive, so "B36/S23", "b36/s23" and "S23/B36" are
// equivalent. Repeated digits collapse.
func Parse(s string) (RuleSet, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q: expected B.../S...", s)
	}
	var rs RuleSet
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q: empty half", s)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return RuleSet{}, errors.Wrapf(err, "[Parse] %q", s)
		}
		switch part[0] {
		case 'B', 'b':
			if seenB {
				return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q: birth given twice", s)
			}
			seenB = true
			rs.Birth = counts
		case 'S', 's':
			if seenS {
				return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q: survival given twice", s)
			}
			seenS = true
			rs.Survival = counts
		default:
			return RuleSet{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q: unknown prefix %q", s, part[0])
		}
	}
	if err := rs.Validate(); err != nil {
		return RuleSet{}, errors.Wrapf(err, "[Parse] %q", s)
	}
	return rs, nil
}

func parseCounts(digits string) ([]int, error) {
	var present [MaxCount + 1]bool
	for _, ch := range digits {
		if ch < '0' || ch > '0'+MaxCount {
			return nil, errors.Wrapf(ErrInvalidRule, "bad count %q", ch)
		}
		present[ch-'0'] = true
	}
	var counts []int
	for n, ok := range present {
		if ok {
			counts = append(counts, n)
		}
	}
	return counts, nil
}
