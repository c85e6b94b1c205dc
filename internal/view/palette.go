// Package view drives the simulation from a terminal.
package view

import (
	"strings"

	"lifegrid/internal/core"

	"github.com/logrusorgru/aurora"
)

const (
	liveGlyph = "█"
	deadGlyph = "·"
)

// Palette turns grid cells into colored terminal glyphs.
type Palette struct {
	au aurora.Aurora
}

// NewPalette returns a palette; colors disables ANSI escapes when false.
func NewPalette(colors bool) *Palette {
	return &Palette{au: aurora.NewAurora(colors)}
}

// Aurora exposes the colorizer used for cells so labels can match.
func (p *Palette) Aurora() aurora.Aurora { return p.au }

// Swatch renders s in the terminal color closest to c.
func (p *Palette) Swatch(s string, c core.Color) string {
	return p.au.Colorize(s, terminalColor(c)).String()
}

// Cell renders a single cell.
func (p *Palette) Cell(c core.Cell) string {
	if !c.Alive {
		return deadGlyph
	}
	return p.Swatch(liveGlyph, c.Color)
}

// Frame renders g row by row. When the grid is larger than maxW×maxH the
// field is cropped and the last visible line carries a notice. A
// non-positive limit disables cropping on that axis.
func (p *Palette) Frame(g *core.Grid, maxW, maxH int) string {
	w, h := g.W, g.H
	crop := false
	if maxW > 0 && w > maxW {
		w, crop = maxW, true
	}
	if maxH > 0 && h > maxH {
		h, crop = maxH, true
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == h-1 {
			b.WriteString(p.au.Red("The field size is larger than the viewing area").String())
			break
		}
		for x := 0; x < w; x++ {
			b.WriteString(p.Cell(g.At(x, y)))
		}
	}
	return b.String()
}

// terminalColor maps a packed RGB value onto the eight basic ANSI colors.
func terminalColor(c core.Color) aurora.Color {
	r, g, b := c.Channels()
	idx := 0
	if r > 127 {
		idx |= 1
	}
	if g > 127 {
		idx |= 2
	}
	if b > 127 {
		idx |= 4
	}
	return [...]aurora.Color{
		aurora.BlackFg, aurora.RedFg, aurora.GreenFg, aurora.YellowFg,
		aurora.BlueFg, aurora.MagentaFg, aurora.CyanFg, aurora.WhiteFg,
	}[idx]
}
