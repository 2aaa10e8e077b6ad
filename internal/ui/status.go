package ui

import (
	"fmt"

	"mutalife/internal/rules"
)

// StatusSource is the read side of a sim that reports mutation progress.
type StatusSource interface {
	IsRunning() bool
	Generation() int
	RulesString() string
	Countdown() int
	MutationInterval() int
}

// HistorySource exposes previously active rule sets, newest first.
type HistorySource interface {
	RecentHistory(n int) []rules.RuleSet
	HistoryLen() int
}

var pausedHints = []string{
	"ENTER start  SPACE pause  R random  C clear",
	"M mutate  T reset rules  +/- interval  H history",
	"Click or drag to toggle cells",
}

// StatusLines returns the status bar text.
func StatusLines(s StatusSource) []string {
	state := "PAUSED"
	if s.IsRunning() {
		state = "RUNNING"
	}
	return []string{
		fmt.Sprintf("Generation: %d   %s", s.Generation(), state),
		fmt.Sprintf("Rules: %s", s.RulesString()),
		fmt.Sprintf("Next mutation in: %d   Interval: %d", s.Countdown(), s.MutationInterval()),
	}
}

// HistoryLines lists up to n previous rule sets, newest first, under a
// header carrying the total count.
func HistoryLines(h HistorySource, n int) []string {
	recent := h.RecentHistory(n)
	lines := make([]string, 0, len(recent)+1)
	lines = append(lines, fmt.Sprintf("Rule history (%d)", h.HistoryLen()))
	if len(recent) == 0 {
		return append(lines, "  none yet")
	}
	for i, rs := range recent {
		lines = append(lines, fmt.Sprintf("%2d. %s", i+1, rs.String()))
	}
	return lines
}

// PausedHints returns the key reminder shown while paused.
func PausedHints() []string {
	out := make([]string, len(pausedHints))
	copy(out, pausedHints)
	return out
}
