package app

import (
	"errors"
	"testing"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Width != 200 || cfg.Height != 200 || cfg.Scale != 5 {
		t.Fatalf("unexpected default geometry %+v", cfg)
	}
	if cfg.Interval != 100*time.Millisecond {
		t.Fatalf("default interval = %v", cfg.Interval)
	}
	if cfg.Layout != patterns.DefaultLayout {
		t.Fatalf("default layout = %q", cfg.Layout)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	p := NewParser("life", "test")
	cfg.Bind(p)

	args := []string{"-x", "80", "--height", "60", "-c", "3", "-i", "250ms", "-l", "glider", "-r", "7", "--metrics", ":2112"}
	if err := p.ParseArgs(args); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	want := Config{
		Width:       80,
		Height:      60,
		Scale:       3,
		TPS:         60,
		Interval:    250 * time.Millisecond,
		Layout:      "glider",
		Seed:        7,
		MetricsAddr: ":2112",
	}
	if *cfg != want {
		t.Fatalf("parsed config = %+v, want %+v", *cfg, want)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, core.ErrInvalidSize},
		{"negative height", func(c *Config) { c.Height = -3 }, core.ErrInvalidSize},
		{"zero scale", func(c *Config) { c.Scale = 0 }, nil},
		{"zero tps", func(c *Config) { c.TPS = 0 }, nil},
		{"zero interval", func(c *Config) { c.Interval = 0 }, nil},
		{"unknown layout", func(c *Config) { c.Layout = "gosper" }, ErrUnknownLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Fatalf("error %v does not wrap %v", err, tc.target)
			}
		})
	}
}

func TestNewSimulation(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 60, 60

	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if sim.Size() != (core.Size{W: 60, H: 60}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	ref, _ := core.NewGrid(60, 60)
	patterns.SeedSuperTile(ref)
	if !sim.Grid().Equal(ref) {
		t.Fatal("default layout should seed the super-tile")
	}
}

func TestNewSimulationErrors(t *testing.T) {
	cfg := NewConfig()
	cfg.Layout = "nope"
	if _, err := NewSimulation(cfg); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("error = %v, want ErrUnknownLayout", err)
	}

	cfg = NewConfig()
	cfg.Width = 0
	if _, err := NewSimulation(cfg); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("error = %v, want ErrInvalidSize", err)
	}
}
