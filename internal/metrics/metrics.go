// Package metrics exports simulation progress as prometheus collectors.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"lifegrid/internal/life"
	"lifegrid/internal/patterns"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks generations, population and step timings.
type Recorder struct {
	generations  prometheus.Counter
	liveCells    *prometheus.GaugeVec
	stepDuration prometheus.Histogram

	lastGen int
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "life_generations_total",
			Help: "Total number of generations computed",
		}),
		liveCells: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "life_live_cells",
			Help: "Living cells in the current generation by color class",
		}, []string{"class"}),
		stepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "life_step_duration_seconds",
			Help:    "Histogram of generation step durations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{r.generations, r.liveCells, r.stepDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records the population of st. Generations and step time are only
// recorded when st.Generation moved past the last observed generation, so
// refreshes without a step leave them alone. A nil Recorder is a no-op.
func (r *Recorder) Observe(st life.Stats) {
	if r == nil {
		return
	}
	if st.Generation > r.lastGen {
		r.generations.Add(float64(st.Generation - r.lastGen))
		r.stepDuration.Observe(st.StepTime.Seconds())
	}
	r.lastGen = st.Generation
	counts := map[string]int{}
	for _, cl := range patterns.Classes() {
		counts[cl.String()] = 0
	}
	counts[patterns.Describe(life.BirthColor)] = 0
	for c, n := range st.ByColor {
		counts[patterns.Describe(c)] += n
	}
	for label, n := range counts {
		r.liveCells.WithLabelValues(label).Set(float64(n))
	}
}

// Serve exposes the default registry on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
