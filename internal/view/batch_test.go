package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
)

func simWith(t *testing.T, w, h int, cells ...[2]int) *life.Simulation {
	t.Helper()
	g := newGrid(t, w, h)
	for _, c := range cells {
		g.Set(c[0], c[1], core.Live(0xFFFF00))
	}
	return life.NewSimulation(g)
}

func TestRunBatchStepLimit(t *testing.T) {
	sim := simWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	st, reason := RunBatch(context.Background(), sim, BatchOptions{MaxSteps: 4}, nil, nil)
	if reason != StopMaxSteps {
		t.Fatalf("reason = %q", reason)
	}
	if st.Generation != 4 || st.Live != 3 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestRunBatchStopsWhenExtinct(t *testing.T) {
	sim := simWith(t, 5, 5, [2]int{2, 2})
	st, reason := RunBatch(context.Background(), sim, BatchOptions{MaxSteps: 100}, nil, nil)
	if reason != StopExtinct || st.Generation != 1 {
		t.Fatalf("got %q after %d generations", reason, st.Generation)
	}
}

func TestRunBatchStopsWhenStatic(t *testing.T) {
	sim := simWith(t, 6, 6, [2]int{2, 2}, [2]int{3, 2}, [2]int{2, 3}, [2]int{3, 3})
	st, reason := RunBatch(context.Background(), sim, BatchOptions{}, nil, nil)
	if reason != StopStatic || st.Generation != 1 || st.Live != 4 {
		t.Fatalf("got %q, stats %+v", reason, st)
	}
}

func TestRunBatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sim := simWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	st, reason := RunBatch(ctx, sim, BatchOptions{}, nil, nil)
	if reason != StopCanceled || st.Generation != 0 {
		t.Fatalf("got %q after %d generations", reason, st.Generation)
	}
}

func TestRunBatchReportsProgress(t *testing.T) {
	var buf bytes.Buffer
	out := NewConsoleOut(&buf, NewPalette(false), 2)
	sim := simWith(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	RunBatch(context.Background(), sim, BatchOptions{MaxSteps: 5}, out, nil)

	if got := strings.Count(buf.String(), "Generation"); got != 2 {
		t.Fatalf("expected 2 progress lines, got %d:\n%s", got, buf.String())
	}
}
