package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the documentation server on an isolated
// registry, so tests can build as many instances as they like.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal          *prometheus.CounterVec
	HTTPRequestDurationSeconds *prometheus.HistogramVec
	PageRendersTotal           *prometheus.CounterVec
}

// NewMetrics creates and registers every collector.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docs_http_requests_total",
				Help: "Total HTTP requests by route pattern and status code.",
			},
			[]string{"route", "status"},
		),
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "docs_http_request_duration_seconds",
				Help:    "HTTP request latency by route pattern.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		PageRendersTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "docs_page_renders_total",
				Help: "Pages rendered by page identifier.",
			},
			[]string{"page"},
		),
	}
	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDurationSeconds, m.PageRendersTotal)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
