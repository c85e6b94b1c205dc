package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"

	"github.com/integrii/flaggy"
)

// ErrUnknownLayout is returned for a layout name that is not registered.
var ErrUnknownLayout = errors.New("unknown layout")

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Width       int
	Height      int
	Scale       int
	TPS         int
	Interval    time.Duration
	Layout      string
	Seed        int64
	MetricsAddr string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    200,
		Height:   200,
		Scale:    5,
		TPS:      60,
		Interval: core.DefaultInterval,
		Layout:   patterns.DefaultLayout,
		Seed:     42,
	}
}

// NewParser returns a flaggy parser that reports errors instead of exiting.
func NewParser(name, description string) *flaggy.Parser {
	p := flaggy.NewParser(name)
	p.Description = description
	p.ShowHelpOnUnexpected = false
	p.ShowVersionWithVersionFlag = false
	return p
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of the grid in cells")
	p.Int(&c.Height, "y", "height", "Height of the grid in cells")
	p.Int(&c.Scale, "c", "scale", "Pixels per cell")
	p.Int(&c.TPS, "t", "tps", "Display frames per second")
	p.Duration(&c.Interval, "i", "interval", "Delay between generations, for example 100ms")
	p.String(&c.Layout, "l", "layout", "Initial layout ["+strings.Join(patterns.Layouts(), "|")+"]")
	p.Int64(&c.Seed, "r", "seed", "Seed for the soup layout")
	p.String(&c.MetricsAddr, "m", "metrics", "Address to serve prometheus metrics on, empty to disable")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("grid %dx%d: %w", c.Width, c.Height, core.ErrInvalidSize)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %v", c.Interval)
	}
	if _, ok := patterns.Lookup(c.Layout); !ok {
		return fmt.Errorf("%w %q", ErrUnknownLayout, c.Layout)
	}
	return nil
}
