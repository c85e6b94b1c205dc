package core

import (
	"errors"
	"image/color"
	"math"
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrTooLarge is returned when width*height does not fit in an int.
	ErrTooLarge = errors.New("grid dimensions overflow")
)

// Color is a packed 0xRRGGBB value.
type Color uint32

// RGB packs the three channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Channels unpacks the color into its red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ToRGBA converts the packed value into an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	r, g, b := c.Channels()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Cell holds the state of a single grid position. Dead cells carry no color.
type Cell struct {
	Alive bool
	Color Color
}

// Live returns a living cell tagged with the given color.
func Live(c Color) Cell { return Cell{Alive: true, Color: c} }

// Packed returns 0 for dead cells and the cell color otherwise.
func (c Cell) Packed() uint32 {
	if !c.Alive {
		return 0
	}
	return uint32(c.Color)
}

// Grid stores a 2D field of cells in row-major order.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with every cell dead.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if w > math.MaxInt/h {
		return nil, ErrTooLarge
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}, nil
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice for renderers. Callers must not modify it.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Set stores c at (x, y). Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		return
	}
	g.cells[g.Index(x, y)] = c
}

// At returns the cell at (x, y), or a dead cell outside the grid.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Cell{}
	}
	return g.cells[g.Index(x, y)]
}

// IsAlive reports whether (x, y) holds a living cell.
func (g *Grid) IsAlive(x, y int) bool {
	return g.At(x, y).Alive
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
}

// Blank returns a fresh all-dead grid with the same dimensions.
func (g *Grid) Blank() *Grid {
	return &Grid{W: g.W, H: g.H, cells: make([]Cell, len(g.cells))}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := g.Blank()
	copy(c.cells, g.cells)
	return c
}

// Equal reports whether both grids have the same size and identical cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Population counts the living cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive {
			n++
		}
	}
	return n
}
