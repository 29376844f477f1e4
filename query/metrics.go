package query

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "gremlin"

// Run outcomes reported by the runs counter.
const (
	outcomeOK         = "ok"
	outcomeAlreadyRun = "already_run"
	outcomeCanceled   = "canceled"
	outcomeError      = "error"
)

// Metrics holds the Prometheus collectors updated by every Query run it is attached to.
// A single Metrics may be shared by many queries.
type Metrics struct {
	runs     *prometheus.CounterVec
	results  prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics creates the query collectors and registers them on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "runs_total",
			Help:      "The total number of query runs, by outcome.",
		}, []string{"outcome"}),
		results: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "query",
			Name:      "results_total",
			Help:      "The total number of nodes produced by query runs.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:                       metricsNamespace,
			Subsystem:                       "query",
			Name:                            "run_duration_seconds",
			Help:                            "Time spent driving a query pipeline to completion.",
			Buckets:                         prometheus.ExponentialBuckets(0.0001, 4, 10),
			NativeHistogramBucketFactor:     1.1,
			NativeHistogramMaxBucketNumber:  100,
			NativeHistogramMinResetDuration: time.Hour,
		}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.results, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("query: register metrics: %w", err)
		}
	}

	return m, nil
}

// observe is safe on a nil receiver.
func (m *Metrics) observe(outcome string, results int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.results.Add(float64(results))
	m.duration.Observe(elapsed.Seconds())
}
