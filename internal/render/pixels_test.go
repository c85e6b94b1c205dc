package render

import (
	"image/color"
	"testing"

	"lifegrid/internal/core"
)

func TestFillRGBA(t *testing.T) {
	cells := []core.Cell{core.Live(0xFF8000), {}, core.Live(0)}
	buf := make([]byte, 4*len(cells))
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 4}

	fillRGBA(buf, cells, bg)

	want := []byte{
		0xFF, 0x80, 0x00, 0xFF,
		1, 2, 3, 4,
		0, 0, 0, 0xFF,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestRasterizeMagnifies(t *testing.T) {
	g, err := core.NewGrid(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 0, core.Live(0x00FF00))
	g.Set(2, 1, core.Live(0xFF00FF))

	const scale = 5
	img := Rasterize(g, scale, Background)
	if b := img.Bounds(); b.Dx() != 15 || b.Dy() != 10 {
		t.Fatalf("bounds = %v, want 15x10", b)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 15; x++ {
			want := Background
			if c := g.At(x/scale, y/scale); c.Alive {
				want = c.Color.ToRGBA()
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeClampsScale(t *testing.T) {
	g, err := core.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if b := Rasterize(g, 0, Background).Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("bounds = %v, want 4x4", b)
	}
}
