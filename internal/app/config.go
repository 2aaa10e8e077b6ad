package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"mutalife/internal/core"
	"mutalife/internal/rules"
)

// Config represents the command-line parameters for the application. Every
// field can also come from a JSON file named by -config; flags given on the
// command line win over the file.
type Config struct {
	Sim          string `json:"sim"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	CellSize     int    `json:"cell_size"`
	TPS          int    `json:"tps"`
	Seed         int64  `json:"seed"`
	Interval     int    `json:"mutation_interval"`
	HistoryLimit int    `json:"history_limit"`
	Rules        string `json:"rules"`
	HUDWidth     int    `json:"hud_width"`
	LogLevel     string `json:"log_level"`

	ConfigFile string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "mutating",
		Width:    750,
		Height:   750,
		CellSize: 25,
		TPS:      12,
		Seed:     1,
		Interval: 50,
		HUDWidth: 220,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid area width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "grid area height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns and mutations")
	fs.IntVar(&c.Interval, "interval", c.Interval, "generations between rule mutations")
	fs.IntVar(&c.HistoryLimit, "history", c.HistoryLimit, "rule history entries to keep (0 keeps all)")
	fs.StringVar(&c.Rules, "rules", c.Rules, "initial rules in B/S notation (default B3/S23)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON configuration file")
}

// Resolve parses args into a fresh Config, layering a JSON file (if -config
// is given) under the command-line flags.
func Resolve(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Resolve] failed to parse flags")
	}
	if c.ConfigFile != "" {
		if err := c.LoadFile(c.ConfigFile); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[Resolve] failed to parse flags")
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays the values present in a JSON file onto c.
func (c *Config) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	return nil
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell size must be positive, got %d", c.CellSize)
	}
	if c.Width < c.CellSize || c.Height < c.CellSize {
		return errors.Errorf("[Validate] %dx%d window cannot hold a %d pixel cell", c.Width, c.Height, c.CellSize)
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	}
	if c.Interval <= 0 {
		return errors.Errorf("[Validate] mutation interval must be positive, got %d", c.Interval)
	}
	if c.Rules != "" {
		if _, err := rules.Parse(c.Rules); err != nil {
			return errors.Wrap(err, "[Validate] rules")
		}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "[Validate] log level %q", c.LogLevel)
	}
	return nil
}

// SimOptions converts the config into the key/value map sim factories read.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"cell":          strconv.Itoa(c.CellSize),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"interval":      strconv.Itoa(c.Interval),
		"history_limit": strconv.Itoa(c.HistoryLimit),
	}
	if c.Rules != "" {
		opts["rules"] = c.Rules
		opts["rule"] = c.Rules
	}
	return opts
}

// NewLogger builds a logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "mutalife"})
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// SimNames lists the registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
