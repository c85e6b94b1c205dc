package patterns

import "image"

func pts(xy ...int) []image.Point {
	out := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, image.Pt(xy[i], xy[i+1]))
	}
	return out
}

// Still lifes.
var (
	Block   = Pattern{Name: "block", Class: StillLife, Cells: pts(0, 0, 1, 0, 0, 1, 1, 1)}
	Beehive = Pattern{Name: "beehive", Class: StillLife, Cells: pts(0, 1, 1, 0, 2, 0, 3, 1, 1, 2, 2, 2)}
	Loaf    = Pattern{Name: "loaf", Class: StillLife, Cells: pts(2, 0, 3, 1, 3, 2, 1, 1, 0, 2, 1, 3, 2, 3)}
	Boat    = Pattern{Name: "boat", Class: StillLife, Cells: pts(0, 0, 1, 0, 0, 1, 2, 1, 1, 2)}
	Tub     = Pattern{Name: "tub", Class: StillLife, Cells: pts(1, 0, 0, 1, 2, 1, 1, 2)}
)

// Oscillators.
var (
	Blinker = Pattern{Name: "blinker", Class: Oscillator, Cells: pts(0, 0, 1, 0, 2, 0)}
	Toad    = Pattern{Name: "toad", Class: Oscillator, Cells: pts(1, 0, 2, 0, 3, 0, 0, 1, 1, 1, 2, 1)}
	Beacon  = Pattern{Name: "beacon", Class: Oscillator, Cells: pts(0, 0, 1, 0, 0, 1, 1, 1, 2, 2, 3, 2, 2, 3, 3, 3)}
	Pulsar  = Pattern{Name: "pulsar", Class: Oscillator, Cells: pts(
		2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10, 0,
		0, 2, 5, 2, 7, 2, 12, 2, 0, 3, 5, 3,
		7, 3, 12, 3, 0, 4, 5, 4, 7, 4, 12, 4,
		2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10, 5,
		2, 7, 3, 7, 4, 7, 8, 7, 9, 7, 10, 7,
		0, 8, 5, 8, 7, 8, 12, 8, 0, 9, 5, 9,
		7, 9, 12, 9, 0, 10, 5, 10, 7, 10, 12, 10,
		2, 12, 3, 12, 4, 12, 8, 12, 9, 12, 10, 12,
	)}
	Pentadecathlon = Pattern{Name: "pentadecathlon", Class: Oscillator, Cells: pts(
		0, 0, 1, 0, 2, 0, 3, 1, 3, 2, 2, 3, 1, 3,
		0, 3, 2, 4, 1, 4, 0, 4, 3, 5, 3, 6, 2, 7,
		1, 7, 0, 7, 1, 8, 2, 8, 3, 9, 0, 9,
	)}
)

// Spaceships.
var (
	Glider = Pattern{Name: "glider", Class: Spaceship, Cells: pts(1, 0, 2, 1, 0, 2, 1, 2, 2, 2)}
	LWSS   = Pattern{Name: "lwss", Class: Spaceship, Cells: pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 1, 0, 1, 0, 2, 3, 2, 1, 3)}
	MWSS   = Pattern{Name: "mwss", Class: Spaceship, Cells: pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 1, 0, 1, 0, 2, 4, 3, 1, 4)}
	HWSS   = Pattern{Name: "hwss", Class: Spaceship, Cells: pts(
		0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 5, 1, 0, 1, 0, 2,
		4, 3, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6, 4, 0, 3,
	)}
)

var catalog = []Pattern{
	Block, Beehive, Loaf, Boat, Tub,
	Blinker, Toad, Beacon, Pulsar, Pentadecathlon,
	Glider, LWSS, MWSS, HWSS,
}

// Catalog returns every named pattern in super-tile order.
func Catalog() []Pattern { return catalog }

// Find returns the catalog pattern with the given name.
func Find(name string) (Pattern, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
