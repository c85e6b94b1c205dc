package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFixedStepPacing(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = clock.now

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock.t = clock.t.Add(40 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the interval elapsed")
	}
	clock.t = clock.t.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapsed")
	}
	if fs.ShouldStep() {
		t.Fatal("should not step twice for one interval")
	}
}

func TestFixedStepDropsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.ShouldStep()

	clock.t = clock.t.Add(time.Second)
	steps := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected backlog capped to two ticks, got %d", steps)
	}
}

func TestFixedStepDefaultInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != DefaultInterval {
		t.Fatalf("interval = %v, want %v", fs.Interval(), DefaultInterval)
	}
}
