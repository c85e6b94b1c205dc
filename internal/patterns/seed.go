package patterns

import (
	"image"
	"sort"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

// TileStride is the edge length of the repeating super-tile.
const TileStride = 30

// SoupDensity seeds one in SoupDensity cells in the soup layout.
const SoupDensity = 4

// Placement positions a pattern inside the super-tile.
type Placement struct {
	Pattern Pattern
	Offset  image.Point
}

// SuperTile lists the fourteen placements stamped into every tile.
var SuperTile = []Placement{
	{Block, image.Pt(0, 0)},
	{Beehive, image.Pt(7, 0)},
	{Loaf, image.Pt(14, 0)},
	{Boat, image.Pt(21, 0)},
	{Tub, image.Pt(0, 7)},
	{Blinker, image.Pt(7, 7)},
	{Toad, image.Pt(14, 7)},
	{Beacon, image.Pt(21, 7)},
	{Pulsar, image.Pt(0, 14)},
	{Pentadecathlon, image.Pt(7, 14)},
	{Glider, image.Pt(14, 14)},
	{LWSS, image.Pt(21, 14)},
	{MWSS, image.Pt(0, 21)},
	{HWSS, image.Pt(7, 21)},
}

// SeedSuperTile tiles g with SuperTile every TileStride cells from the origin.
// Tiles that run past the right or bottom edge are clipped, not wrapped.
func SeedSuperTile(g *core.Grid) {
	for i := 0; i < g.W; i += TileStride {
		for j := 0; j < g.H; j += TileStride {
			origin := image.Pt(i, j)
			for _, pl := range SuperTile {
				pl.Pattern.Stamp(g, origin.Add(pl.Offset))
			}
		}
	}
}

// SeedCentered stamps p so its bounding box is centered in g.
func SeedCentered(g *core.Grid, p Pattern) {
	b := p.Bounds()
	anchor := image.Pt((g.W-b.Dx())/2-b.Min.X, (g.H-b.Dy())/2-b.Min.Y)
	p.Stamp(g, anchor)
}

// SeedSoup fills g with a deterministic random soup using the birth color.
func SeedSoup(g *core.Grid, seed int64) {
	core.NewRNG(seed).Fill(g, SoupDensity, life.BirthColor)
}

// Layout populates an empty grid. Layouts that are not random ignore seed.
type Layout func(g *core.Grid, seed int64)

// DefaultLayout is the layout used when none is configured.
const DefaultLayout = "supertile"

var layouts = map[string]Layout{}

// Register adds a layout under the provided name.
func Register(name string, l Layout) {
	if name == "" || l == nil {
		return
	}
	layouts[name] = l
}

// Lookup returns the layout registered under name.
func Lookup(name string) (Layout, bool) {
	l, ok := layouts[name]
	return l, ok
}

// Layouts returns the registered layout names in sorted order.
func Layouts() []string {
	names := make([]string, 0, len(layouts))
	for k := range layouts {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(DefaultLayout, func(g *core.Grid, _ int64) { SeedSuperTile(g) })
	Register("soup", SeedSoup)
	for _, p := range catalog {
		p := p
		Register(p.Name, func(g *core.Grid, _ int64) { SeedCentered(g, p) })
	}
}
