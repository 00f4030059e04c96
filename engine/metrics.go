package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of gridpath_searches_total.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors an Engine reports to.
// A nil *Metrics records nothing.
type Metrics struct {
	searches   *prometheus.CounterVec
	visited    *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the engine collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics.
// Panics if the collectors are already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		visited: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_visited_cells",
			Help:    "Cells settled per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"algorithm"}),

		pathLength: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_path_cells",
			Help:    "Cells on the returned path of successful searches",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200, 500},
		}, []string{"algorithm"}),

		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"algorithm"}),
	}
}

func (m *Metrics) observe(r *Result) {
	if m == nil {
		return
	}
	alg := r.Algorithm.String()
	outcome := OutcomeUnreachable
	if r.Found {
		outcome = OutcomeFound
		m.pathLength.WithLabelValues(alg).Observe(float64(len(r.Path)))
	}
	m.searches.WithLabelValues(alg, outcome).Inc()
	m.visited.WithLabelValues(alg).Observe(float64(len(r.Visited)))
	m.duration.WithLabelValues(alg).Observe(r.Elapsed.Seconds())
}

func (m *Metrics) observeError(k Kind) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(k.String(), OutcomeError).Inc()
}
