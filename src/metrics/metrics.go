// Package metrics keeps the Prometheus collectors for the outbound lookups and the
// enrichments done by musicsearch.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "musicsearch"

// Outcome labels used for lookups and enrichments.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeTimeout  = "timeout"
	OutcomeError    = "error"
)

// Metrics contains all collectors. A nil *Metrics is valid and observes nothing
// which is handy for tests and for running with metrics turned off.
type Metrics struct {
	registry *prometheus.Registry

	// Lookups counts the requests to upstream sources by source and outcome.
	Lookups *prometheus.CounterVec

	// LookupDuration is the time upstream requests took by source.
	LookupDuration *prometheus.HistogramVec

	// Enrichments counts the finished enrichments by outcome.
	Enrichments *prometheus.CounterVec

	// EnrichmentDuration is the time a whole enrichment took.
	EnrichmentDuration prometheus.Histogram
}

// New creates all collectors and registers them, together with the Go runtime and
// process collectors, into a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "lookups_total",
				Help:      "Total number of requests made to upstream sources",
			},
			[]string{"source", "outcome"},
		),

		LookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "source",
				Name:      "lookup_duration_seconds",
				Help:      "Duration of requests made to upstream sources",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"source"},
		),

		Enrichments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "enrich",
				Name:      "enrichments_total",
				Help:      "Total number of finished enrichments",
			},
			[]string{"outcome"},
		),

		EnrichmentDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "enrich",
				Name:      "enrichment_duration_seconds",
				Help:      "Duration of whole enrichments including all upstream requests",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}

	m.registry.MustRegister(
		m.Lookups,
		m.LookupDuration,
		m.Enrichments,
		m.EnrichmentDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveLookup records one finished request to `source`.
func (m *Metrics) ObserveLookup(source, outcome string, took time.Duration) {
	if m == nil {
		return
	}

	m.Lookups.WithLabelValues(source, outcome).Inc()
	m.LookupDuration.WithLabelValues(source).Observe(took.Seconds())
}

// ObserveEnrichment records one finished enrichment.
func (m *Metrics) ObserveEnrichment(outcome string, took time.Duration) {
	if m == nil {
		return
	}

	m.Enrichments.WithLabelValues(outcome).Inc()
	m.EnrichmentDuration.Observe(took.Seconds())
}

// Registry returns the underlying Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns a http.Handler which exposes all collectors in the Prometheus
// text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
