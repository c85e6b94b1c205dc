package life

import "testing"

func TestSimulationStepAndReset(t *testing.T) {
	g := newGrid(t, 5, 5)
	seed(g, red, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	seeded := g.Clone()

	sim := NewSimulation(g)
	sim.Step()
	if sim.Generation() != 1 {
		t.Fatalf("generation = %d, want 1", sim.Generation())
	}
	if sim.Grid().Equal(seeded) {
		t.Fatal("grid should change after a blinker step")
	}
	if !g.Equal(seeded) {
		t.Fatal("Step must not mutate the previous generation")
	}

	sim.Step()
	sim.Reset()
	if sim.Generation() != 0 {
		t.Fatalf("generation after reset = %d", sim.Generation())
	}
	if !sim.Grid().Equal(seeded) {
		t.Fatal("Reset should restore the seeded grid")
	}
}

func TestSimulationResetSurvivesClear(t *testing.T) {
	g := newGrid(t, 4, 4)
	seed(g, red, [2]int{1, 1})
	sim := NewSimulation(g)

	sim.Clear()
	if sim.Grid().Population() != 0 {
		t.Fatal("Clear should kill every cell")
	}
	sim.Reset()
	if !sim.Grid().IsAlive(1, 1) {
		t.Fatal("Reset should bring back the seeded cells after Clear")
	}
}

func TestSimulationStats(t *testing.T) {
	g := newGrid(t, 6, 6)
	seed(g, red, [2]int{0, 0}, [2]int{5, 5})
	seed(g, blue, [2]int{3, 3})
	sim := NewSimulation(g)

	st := sim.Stats()
	if st.Live != 3 {
		t.Fatalf("live = %d, want 3", st.Live)
	}
	if st.ByColor[red] != 2 || st.ByColor[blue] != 1 {
		t.Fatalf("by color = %v", st.ByColor)
	}
	if st.Generation != 0 {
		t.Fatalf("generation = %d", st.Generation)
	}
}
