package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the set of prometheus collectors a simulation run updates as it
// steps. Collectors are safe for concurrent use by construction, which is what
// lets cmd/stochkit's serve mode expose /metrics on its own goroutine while the
// simulation loop runs on the driving goroutine.
type Metrics struct {
	registry *prometheus.Registry

	EventsTotal  prometheus.Counter
	SimulatedEnd prometheus.Gauge
	StepLatency  *prometheus.HistogramVec
}

// NewMetrics returns a Metrics bound to a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		EventsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stochkit",
			Name:      "events_total",
			Help:      "Number of events applied to the system so far.",
		}),
		SimulatedEnd: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "stochkit",
			Name:      "simulated_time",
			Help:      "Current simulated end time of the run.",
		}),
		StepLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stochkit",
			Name:      "step_latency_seconds",
			Help:      "Wall-clock latency of a single Advance call, by algorithm.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"algorithm"}),
	}
}

// Handler returns the HTTP handler to serve /metrics with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
