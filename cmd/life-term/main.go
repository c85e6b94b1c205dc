package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/app"
	"lifegrid/internal/metrics"
	"lifegrid/internal/view"

	"github.com/prometheus/client_golang/prometheus"
)

type termOptions struct {
	interactive bool
	steps       int
	every       int
	noColor     bool
}

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 60, 30
	opts := termOptions{steps: 100, every: 10}

	parser := app.NewParser("life-term", "Conway's Game of Life in the terminal")
	cfg.Bind(parser)
	parser.Bool(&opts.interactive, "n", "interactive", "Start the interactive terminal UI")
	parser.Int(&opts.steps, "s", "steps", "Stop a batch run after this many generations, 0 for no limit")
	parser.Int(&opts.every, "e", "every", "Print batch progress every N generations")
	parser.Bool(&opts.noColor, "", "no-color", "Disable ANSI colors in batch output")
	if err := parser.Parse(); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if opts.steps < 0 {
		log.Fatalf("invalid configuration: steps must not be negative, got %d", opts.steps)
	}

	sim, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rec *metrics.Recorder
	if cfg.MetricsAddr != "" {
		rec, err = metrics.NewRecorder(prometheus.DefaultRegisterer)
		if err != nil {
			log.Fatalf("register metrics: %v", err)
		}
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				log.Printf("metrics server failed: %v", err)
			}
		}()
	}

	size := sim.Size()
	config := map[string]interface{}{
		"Dimension": fmt.Sprintf("%d x %d", size.W, size.H),
		"Layout":    cfg.Layout,
		"Interval":  cfg.Interval,
		"Seed":      cfg.Seed,
	}

	if opts.interactive {
		ui, err := view.NewConsoleUI(sim, cfg.Interval, config, rec)
		if err != nil {
			log.Fatal(err)
		}
		if err := ui.Run(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	config["Iterations"] = opts.steps
	out := view.NewConsoleOut(os.Stdout, view.NewPalette(!opts.noColor), opts.every)
	out.Start(config)
	st, reason := view.RunBatch(ctx, sim, view.BatchOptions{Interval: cfg.Interval, MaxSteps: opts.steps}, out, rec)
	out.Finish(st, reason)
}
