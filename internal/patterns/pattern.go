// Package patterns holds the named seed shapes and the layouts that stamp
// them onto a grid.
package patterns

import (
	"image"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// Class groups patterns by their long-term behavior.
type Class int

const (
	StillLife Class = iota
	Oscillator
	Spaceship
)

// Class colors. All differ from life.BirthColor so seeded cells stay
// distinguishable from cells born during the run.
const (
	StillLifeColor  core.Color = 0x00FF00
	OscillatorColor core.Color = 0xFFFF00
	SpaceshipColor  core.Color = 0xFF00FF
)

var classes = []Class{StillLife, Oscillator, Spaceship}

// Classes lists every pattern class in display order.
func Classes() []Class { return classes }

// Color returns the seed color for the class.
func (c Class) Color() core.Color {
	switch c {
	case StillLife:
		return StillLifeColor
	case Oscillator:
		return OscillatorColor
	default:
		return SpaceshipColor
	}
}

func (c Class) String() string {
	switch c {
	case StillLife:
		return "still life"
	case Oscillator:
		return "oscillator"
	case Spaceship:
		return "spaceship"
	default:
		return "unknown"
	}
}

// ClassOf maps a seed color back to its class.
func ClassOf(c core.Color) (Class, bool) {
	for _, cl := range classes {
		if cl.Color() == c {
			return cl, true
		}
	}
	return 0, false
}

// Describe labels a cell color for HUDs and metrics.
func Describe(c core.Color) string {
	if cl, ok := ClassOf(c); ok {
		return cl.String()
	}
	if c == life.BirthColor {
		return "born"
	}
	return "other"
}

// Pattern is a reusable shape: cell offsets relative to an anchor.
type Pattern struct {
	Name  string
	Class Class
	Cells []image.Point
}

// Stamp writes the pattern at anchor using the class color. Cells that land
// outside the grid are clipped.
func (p Pattern) Stamp(g *core.Grid, anchor image.Point) {
	p.StampColor(g, anchor, p.Class.Color())
}

// StampColor writes the pattern at anchor with an explicit color.
func (p Pattern) StampColor(g *core.Grid, anchor image.Point, c core.Color) {
	for _, off := range p.Cells {
		pt := anchor.Add(off)
		g.Set(pt.X, pt.Y, core.Live(c))
	}
}

// Bounds returns the smallest rectangle covering every offset.
func (p Pattern) Bounds() image.Rectangle {
	if len(p.Cells) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: p.Cells[0], Max: p.Cells[0].Add(image.Pt(1, 1))}
	for _, pt := range p.Cells[1:] {
		r = r.Union(image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))})
	}
	return r
}
