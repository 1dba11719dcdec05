package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline run outcomes.
const (
	OutcomeOK      = "ok"
	OutcomeUnknown = "unknown_protein"
	OutcomeError   = "error"
)

// Collector holds all Prometheus metrics for the service
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Pipeline metrics
	PipelineRuns     *prometheus.CounterVec
	PipelineDuration *prometheus.HistogramVec
	ViewElements     *prometheus.HistogramVec
}

// NewCollector creates a collector with its own registry, so several may
// coexist in one process.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	pipelineRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Total number of subnetwork pipeline runs",
		},
		[]string{"outcome"},
	)

	pipelineDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Pipeline run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	viewElements := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "view_elements",
			Help:      "Number of elements per rendered view",
			Buckets:   prometheus.ExponentialBuckets(4, 2, 10),
		},
		[]string{"view"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		pipelineRuns,
		pipelineDuration,
		viewElements,
	)

	return &Collector{
		registry:         registry,
		HTTPRequests:     httpRequests,
		HTTPDuration:     httpDuration,
		PipelineRuns:     pipelineRuns,
		PipelineDuration: pipelineDuration,
		ViewElements:     viewElements,
	}
}

// ObservePipeline records one pipeline run.
func (c *Collector) ObservePipeline(outcome string, d time.Duration) {
	c.PipelineRuns.WithLabelValues(outcome).Inc()
	c.PipelineDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// ObserveView records the size of a rendered view.
func (c *Collector) ObserveView(view string, elements int) {
	c.ViewElements.WithLabelValues(view).Observe(float64(elements))
}

// ObserveRequest records one served HTTP request.
func (c *Collector) ObserveRequest(method, route, status string, d time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, status).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
