package life

import (
	"strconv"

	"mutalife/internal/rules"
)

// Config holds parameters for a fixed-rule Life run. Width and Height are in
// pixels; the grid has one cell per CellSize pixels in each direction.
type Config struct {
	Width    int
	Height   int
	CellSize int
	Rules    rules.RuleSet
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 750, Height: 750, CellSize: 25, Rules: rules.Classic()}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults.
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := rules.Parse(v); err == nil {
			c.Rules = parsed
		}
	}
	return c
}
