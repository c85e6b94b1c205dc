package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/metrics"

	"github.com/jroimartin/gocui"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

type runState int

const (
	statePaused runState = iota
	stateRunning
)

func (s runState) String() string {
	if s == stateRunning {
		return "running"
	}
	return "paused"
}

// ConsoleUI is the interactive terminal front end.
type ConsoleUI struct {
	mu       sync.Mutex
	sim      *life.Simulation
	state    runState
	interval time.Duration
	config   map[string]interface{}

	g   *gocui.Gui
	k   []keyBinding
	pal *Palette
	rec *metrics.Recorder
}

// NewConsoleUI opens the terminal and installs the key bindings.
func NewConsoleUI(sim *life.Simulation, interval time.Duration, config map[string]interface{}, rec *metrics.Recorder) (*ConsoleUI, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if interval <= 0 {
		interval = core.DefaultInterval
	}
	t := &ConsoleUI{
		sim:      sim,
		interval: interval,
		config:   config,
		g:        g,
		pal:      NewPalette(true),
		rec:      rec,
	}
	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit},
		{'q', "Q", "Exit", t.cmdQuit},
		{'n', "N", "Next step", t.cmdNextStep},
		{'r', "R", "Run", t.cmdRun},
		{'s', "S", "Stop", t.cmdStop},
		{'c', "C", "Clear", t.cmdClear},
		{'x', "X", "Reset", t.cmdReset},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err := g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return t, nil
}

// Run blocks in the gocui main loop until the user quits or ctx is done.
func (t *ConsoleUI) Run(ctx context.Context) error {
	defer t.g.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go t.loop(ctx)

	if err := t.g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (t *ConsoleUI) loop(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.g.Update(func(*gocui.Gui) error { return gocui.ErrQuit })
			return
		case <-ticker.C:
			t.mu.Lock()
			running := t.state == stateRunning
			if running {
				t.sim.Step()
			}
			t.mu.Unlock()
			if running {
				t.refresh()
			}
		}
	}
}

func (t *ConsoleUI) refresh() {
	t.mu.Lock()
	t.rec.Observe(t.sim.Stats())
	t.mu.Unlock()
	t.g.Update(func(g *gocui.Gui) error {
		t.renderStatus(g)
		t.renderField(g)
		return nil
	})
}

func (t *ConsoleUI) renderField(g *gocui.Gui) {
	v, err := g.View("field")
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	t.mu.Lock()
	frame := t.pal.Frame(t.sim.Grid(), maxW, maxH)
	t.mu.Unlock()
	_, _ = fmt.Fprint(v, frame)
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) {
	v, err := g.View("status")
	if err != nil {
		return
	}
	v.Clear()
	t.mu.Lock()
	st := t.sim.Stats()
	state := t.state
	t.mu.Unlock()

	_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", st.Generation))
	_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", st.Live))
	_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", st.StepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", state))
	out := ConsoleOut{pal: t.pal}
	for _, line := range out.Legend(st) {
		_, _ = fmt.Fprintln(v, line)
	}
}

func (t *ConsoleUI) renderConfiguration(g *gocui.Gui) {
	v, err := g.View("configuration")
	if err != nil {
		return
	}
	v.Clear()
	var b bytes.Buffer
	(&ConsoleOut{w: &b}).printHashData(t.config)
	_, _ = fmt.Fprint(v, b.String())
}

func (t *ConsoleUI) renderProp(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.pal.Aurora().Green(name).String()+": "+format, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	const leftColumnWidth = 30

	if v, err := g.SetView("configuration", 0, 0, leftColumnWidth, (maxY-3)/2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Configuration"
		t.renderConfiguration(g)
	}

	if v, err := g.SetView("status", 0, (maxY-3)/2+1, leftColumnWidth, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Status"
		t.renderStatus(g)
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Field"
	}
	t.renderField(g)

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Frame = false
		names := make([]string, 0, len(t.k))
		for _, k := range t.k {
			names = append(names, t.pal.Aurora().Green(k.name).String()+": "+k.descr)
		}
		_, _ = fmt.Fprintln(v, "KEYBINDINGS: "+strings.Join(names, ", "))
	}
	return nil
}

func (t *ConsoleUI) cmdQuit() error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep() error {
	t.mu.Lock()
	t.state = statePaused
	t.sim.Step()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdRun() error {
	t.setState(stateRunning)
	return nil
}

func (t *ConsoleUI) cmdStop() error {
	t.setState(statePaused)
	return nil
}

func (t *ConsoleUI) cmdClear() error {
	t.mu.Lock()
	t.sim.Clear()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdReset() error {
	t.mu.Lock()
	t.sim.Reset()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) setState(s runState) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
	t.refresh()
}
