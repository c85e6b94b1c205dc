package render

import (
	"image"
	"image/color"

	"lifegrid/internal/core"
)

// Background is the color painted under dead cells.
var Background = color.RGBA{A: 0xff}

// fillRGBA converts cells into RGBA pixels in buf. Living cells use their own
// color, dead cells use bg.
func fillRGBA(buf []byte, cells []core.Cell, bg color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := bg
		if c.Alive {
			col = c.Color.ToRGBA()
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Rasterize paints g into a new image where every cell becomes a
// scale×scale block.
func Rasterize(g *core.Grid, scale int, bg color.RGBA) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, g.W*scale, g.H*scale))
	row := make([]byte, 4*g.W)
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		fillRGBA(row, cells[y*g.W:(y+1)*g.W], bg)
		for dy := 0; dy < scale; dy++ {
			line := img.Pix[(y*scale+dy)*img.Stride:]
			for x := 0; x < g.W; x++ {
				px := row[x*4 : x*4+4]
				for dx := 0; dx < scale; dx++ {
					copy(line[(x*scale+dx)*4:], px)
				}
			}
		}
	}
	return img
}
