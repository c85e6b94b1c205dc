package view

import (
	"fmt"
	"io"
	"sort"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/patterns"
)

// ConsoleOut prints batch-mode progress and a final summary.
type ConsoleOut struct {
	w         io.Writer
	pal       *Palette
	every     int
	startTime time.Time
}

// NewConsoleOut prints a progress line every `every` generations.
func NewConsoleOut(w io.Writer, pal *Palette, every int) *ConsoleOut {
	if every <= 0 {
		every = 10
	}
	return &ConsoleOut{w: w, pal: pal, every: every}
}

// Start prints the running configuration and marks the start time.
func (c *ConsoleOut) Start(config map[string]interface{}) {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(config)
	fmt.Fprintln(c.w, "\nSimulation started...")
}

// Refresh prints a progress line on every `every`th generation.
func (c *ConsoleOut) Refresh(st life.Stats) {
	if st.Generation == 0 || st.Generation%c.every != 0 {
		return
	}
	fmt.Fprintf(c.w, "  Generation %v: %v live cells (%v)\n", st.Generation, st.Live, st.StepTime.Round(time.Microsecond))
}

// Finish prints the summary for the last generation.
func (c *ConsoleOut) Finish(st life.Stats, reason string) {
	au := c.pal.Aurora()
	fmt.Fprintf(c.w, "\n%s %s\n", au.Red("Finished:").String(), reason)
	c.printHashData(map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":      st.Live,
	})
	for _, line := range c.Legend(st) {
		fmt.Fprintln(c.w, line)
	}
}

// Legend lists the living cells per color class with a matching swatch.
func (c *ConsoleOut) Legend(st life.Stats) []string {
	type entry struct {
		label string
		count int
		col   core.Color
	}
	byLabel := map[string]*entry{}
	for col, n := range st.ByColor {
		label := patterns.Describe(col)
		e, ok := byLabel[label]
		if !ok {
			e = &entry{label: label, col: col}
			byLabel[label] = e
		}
		e.count += n
	}
	labels := make([]string, 0, len(byLabel))
	for k := range byLabel {
		labels = append(labels, k)
	}
	sort.Strings(labels)

	out := make([]string, 0, len(labels))
	for _, label := range labels {
		e := byLabel[label]
		out = append(out, fmt.Sprintf("  %s %s: %d", c.pal.Swatch(liveGlyph, e.col), label, e.count))
	}
	return out
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
