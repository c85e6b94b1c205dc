//go:build ebiten

package main

import (
	"context"
	"errors"
	"image"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/metrics"
	"lifegrid/internal/patterns"
	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := app.NewConfig()
	parser := app.NewParser("life", "Conway's Game of Life on a wrapping grid")
	cfg.Bind(parser)
	if err := parser.Parse(); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var rec *metrics.Recorder
	if cfg.MetricsAddr != "" {
		rec, err = metrics.NewRecorder(prometheus.DefaultRegisterer)
		if err != nil {
			log.Fatalf("register metrics: %v", err)
		}
		go func() {
			log.Printf("metrics endpoint listening on %s/metrics", cfg.MetricsAddr)
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("metrics server failed: %v", err)
			}
		}()
	}

	game := app.New(sim, cfg, rec)
	size := sim.Size()

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowIcon([]image.Image{windowIcon()})
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// windowIcon draws a glider on a 4x4 grid magnified to 32x32 pixels.
func windowIcon() image.Image {
	g, err := core.NewGrid(4, 4)
	if err != nil {
		log.Fatal(err)
	}
	patterns.Glider.Stamp(g, image.Pt(1, 0))
	return render.Rasterize(g, 8, render.Background)
}
