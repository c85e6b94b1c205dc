package view

import (
	"context"
	"time"

	"lifegrid/internal/life"
	"lifegrid/internal/metrics"
)

// Reasons a batch run ends.
const (
	StopMaxSteps = "step limit reached"
	StopExtinct  = "population died out"
	StopStatic   = "grid stopped changing"
	StopCanceled = "interrupted"
)

// BatchOptions bounds a headless run.
type BatchOptions struct {
	// Interval waits between generations; zero runs flat out.
	Interval time.Duration
	// MaxSteps stops the run after that many generations; zero means no limit.
	MaxSteps int
}

// RunBatch steps sim until ctx is done, the step limit is hit, every cell
// has died or a generation equals its predecessor. Every generation is
// reported to out and rec, both of which may be nil.
func RunBatch(ctx context.Context, sim *life.Simulation, opts BatchOptions, out *ConsoleOut, rec *metrics.Recorder) (life.Stats, string) {
	var tick <-chan time.Time
	if opts.Interval > 0 {
		t := time.NewTicker(opts.Interval)
		defer t.Stop()
		tick = t.C
	}

	rec.Observe(sim.Stats())
	for steps := 0; ; steps++ {
		if opts.MaxSteps > 0 && steps >= opts.MaxSteps {
			return sim.Stats(), StopMaxSteps
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return sim.Stats(), StopCanceled
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return sim.Stats(), StopCanceled
		}

		prev := sim.Grid()
		sim.Step()
		st := sim.Stats()
		rec.Observe(st)
		if out != nil {
			out.Refresh(st)
		}

		switch {
		case st.Live == 0:
			return st, StopExtinct
		case sim.Grid().Equal(prev):
			return st, StopStatic
		}
	}
}
