package life

import (
	"time"

	"lifegrid/internal/core"
)

// Stats summarizes a generation for HUDs, terminal views and metrics.
type Stats struct {
	Generation int
	Live       int
	ByColor    map[core.Color]int
	StepTime   time.Duration
}

// Simulation owns the live grid and replaces it with a new generation on
// every Step. The seeded grid is kept so the run can be restarted.
type Simulation struct {
	grid     *core.Grid
	seeded   *core.Grid
	gen      int
	stepTime time.Duration
}

// NewSimulation takes ownership of g as the initial generation.
func NewSimulation(g *core.Grid) *Simulation {
	return &Simulation{grid: g, seeded: g.Clone()}
}

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.grid.Size() }

// Grid exposes the current generation. Callers must treat it as read-only.
func (s *Simulation) Grid() *core.Grid { return s.grid }

// Generation returns the number of steps taken since the last reset.
func (s *Simulation) Generation() int { return s.gen }

// Step advances the simulation by one generation.
func (s *Simulation) Step() {
	start := time.Now()
	s.grid = Advance(s.grid)
	s.stepTime = time.Since(start)
	s.gen++
}

// Reset restores the seeded grid and zeroes the generation counter.
func (s *Simulation) Reset() {
	s.grid = s.seeded.Clone()
	s.gen = 0
	s.stepTime = 0
}

// Clear kills every cell in the current generation.
func (s *Simulation) Clear() {
	s.grid.Clear()
}

// Stats walks the current generation and tallies living cells by color.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Generation: s.gen,
		ByColor:    map[core.Color]int{},
		StepTime:   s.stepTime,
	}
	for _, c := range s.grid.Cells() {
		if !c.Alive {
			continue
		}
		st.Live++
		st.ByColor[c.Color]++
	}
	return st
}
