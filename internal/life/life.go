// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
package life

import "lifegrid/internal/core"

// BirthColor tags every cell born during simulation, regardless of which
// neighbors caused the birth.
const BirthColor core.Color = 0xFFFFFF

// Neighbors counts the living cells in the Moore neighborhood of (x, y),
// wrapping around the grid edges.
func Neighbors(g *core.Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.IsAlive(g.Wrap(x+dx, y+dy)) {
				n++
			}
		}
	}
	return n
}

// Next applies the B3/S23 rule to a single cell given its neighbor count.
// Survivors keep their color; births take BirthColor.
func Next(cur core.Cell, neighbors int) core.Cell {
	switch {
	case cur.Alive && (neighbors == 2 || neighbors == 3):
		return cur
	case !cur.Alive && neighbors == 3:
		return core.Live(BirthColor)
	default:
		return core.Cell{}
	}
}

// Advance computes the next generation of g into a freshly allocated grid.
// g is only read, so every neighbor count sees the same generation.
func Advance(g *core.Grid) *core.Grid {
	next := g.Blank()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			next.Set(x, y, Next(g.At(x, y), Neighbors(g, x, y)))
		}
	}
	return next
}
