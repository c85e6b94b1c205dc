package app

import (
	"fmt"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/patterns"
)

// NewSimulation allocates the grid described by cfg, seeds it with the
// configured layout and wraps it in a Simulation.
func NewSimulation(cfg *Config) (*life.Simulation, error) {
	layout, ok := patterns.Lookup(cfg.Layout)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLayout, cfg.Layout)
	}
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("allocate %dx%d grid: %w", cfg.Width, cfg.Height, err)
	}
	layout(g, cfg.Seed)
	return life.NewSimulation(g), nil
}
