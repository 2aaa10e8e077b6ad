package mutating

import (
	"strconv"

	"mutalife/internal/rules"
)

// Config controls the mutating simulation.
type Config struct {
	Width    int
	Height   int
	CellSize int

	Seed int64

	// Interval is the number of generations between automatic mutations.
	Interval int
	// MinInterval is the lowest interval DecreaseInterval will apply.
	MinInterval int
	// IntervalStep is the amount Increase/DecreaseInterval move by.
	IntervalStep int
	// HistoryLimit caps the rule history; 0 keeps every entry.
	HistoryLimit int

	InitialRules rules.RuleSet
}

// DefaultConfig returns the standard configuration: a 750x750 window of
// 25 pixel cells, mutating every 50 generations.
func DefaultConfig() Config {
	return Config{
		Width:        750,
		Height:       750,
		CellSize:     25,
		Seed:         1,
		Interval:     50,
		MinInterval:  10,
		IntervalStep: 10,
		HistoryLimit: 0,
		InitialRules: rules.Classic(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if c.CellSize > c.Width || c.CellSize > c.Height {
		c.CellSize = min(c.Width, c.Height)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = parsed
		}
	}
	if v, ok := cfg["min_interval"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MinInterval = parsed
		}
	}
	if v, ok := cfg["interval_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.IntervalStep = parsed
		}
	}
	if v, ok := cfg["history_limit"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.HistoryLimit = parsed
		}
	}
	if v, ok := cfg["rules"]; ok {
		if parsed, err := rules.Parse(v); err == nil {
			c.InitialRules = parsed
		}
	}
	return c
}
