//go:build ebiten

package app

import (
	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/metrics"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep
	rec     *metrics.Recorder

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation. rec may be nil.
func New(sim *life.Simulation, cfg *Config, rec *metrics.Recorder) *Game {
	size := sim.Size()
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(),
		step:    core.NewFixedStep(cfg.Interval),
		rec:     rec,
		scale:   cfg.Scale,
	}
	g.refresh()
	return g
}

// Reset restores the seeded generation.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
	g.refresh()
}

func (g *Game) refresh() {
	st := g.sim.Stats()
	g.hud.Update(st, g.paused)
	g.rec.Observe(st)
}

// Update handles per-frame input and advances the simulation once per interval.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
		g.refresh()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	due := g.step.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
		g.refresh()
	}
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
