package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// OneIn reports true with probability 1/n. n <= 1 always reports true.
func (r *RNG) OneIn(n int) bool {
	if n <= 1 {
		return true
	}
	return r.r.IntN(n) == 0
}

// Fill marks roughly one in n cells of g alive with color c.
func (r *RNG) Fill(g *Grid, n int, c Color) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if r.OneIn(n) {
				g.Set(x, y, Live(c))
			}
		}
	}
}
