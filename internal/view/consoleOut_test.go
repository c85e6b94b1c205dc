package view

import (
	"bytes"
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/patterns"
)

func TestConsoleOutStartSortsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOut(&buf, NewPalette(false), 10)
	out.Start(map[string]interface{}{"Width": 30, "Layout": "glider", "Height": 20})

	s := buf.String()
	h, l, w := strings.Index(s, "Height: 20"), strings.Index(s, "Layout: glider"), strings.Index(s, "Width: 30")
	if h < 0 || l < 0 || w < 0 {
		t.Fatalf("missing configuration lines:\n%s", s)
	}
	if !(h < l && l < w) {
		t.Fatalf("configuration not sorted:\n%s", s)
	}
}

func TestConsoleOutFinish(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOut(&buf, NewPalette(false), 10)
	out.Start(nil)
	buf.Reset()

	out.Finish(life.Stats{
		Generation: 7,
		Live:       6,
		ByColor: map[core.Color]int{
			patterns.OscillatorColor: 3,
			life.BirthColor:          2,
			patterns.StillLifeColor:  1,
		},
	}, StopMaxSteps)

	s := buf.String()
	for _, want := range []string{
		"Finished: " + StopMaxSteps,
		"Last generation: 7",
		"Live cells: 6",
		"█ born: 2",
		"█ oscillator: 3",
		"█ still life: 1",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestLegendMergesColorsByLabel(t *testing.T) {
	out := NewConsoleOut(nil, NewPalette(false), 0)
	lines := out.Legend(life.Stats{ByColor: map[core.Color]int{
		0x123456: 2,
		0x654321: 3,
	}})
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "other: 5") {
		t.Fatalf("legend = %q", lines)
	}
}
