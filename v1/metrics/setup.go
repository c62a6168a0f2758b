package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing verification metrics.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// The service keeps its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Core built-in metrics
	checksTotal    *prometheus.CounterVec
	runDuration    *prometheus.HistogramVec
	requestLatency *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "weaviate-verify",
//	    EnableDefaultCollectors: true,
//	})
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	// Isolated registry per service; avoids collisions when multiple
	// services run in the same process.
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.checksTotal = createCounterVec("verification_checks_total", "Total number of executed permission checks", []string{"operation", "identity", "result"})
	m.runDuration = createHistogramVec("verification_run_duration_seconds", "Duration of complete verification runs in seconds", []string{"passed"}, prometheus.DefBuckets)
	m.requestLatency = createHistogramVec("weaviate_request_duration_seconds", "Duration of individual Weaviate API requests in seconds", []string{"endpoint"}, prometheus.DefBuckets)

	wrappedRegistry.MustRegister(
		m.checksTotal,
		m.runDuration,
		m.requestLatency,
	)

	// GoCollector: memory, goroutines, GC stats.
	// ProcessCollector: CPU, file descriptors, memory.
	// BuildInfoCollector: binary version/build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	m.Server = server
	return m
}

// ObserveCheck records the tagged result of a single permission check.
func (m *Metrics) ObserveCheck(operation, identity, result string) {
	m.checksTotal.WithLabelValues(operation, identity, result).Inc()
}

// ObserveRun records the duration of a complete verification run.
func (m *Metrics) ObserveRun(d time.Duration, passed bool) {
	label := "false"
	if passed {
		label = "true"
	}
	m.runDuration.WithLabelValues(label).Observe(d.Seconds())
}

// ObserveRequest records the latency of one Weaviate API request.
func (m *Metrics) ObserveRequest(endpoint string, d time.Duration) {
	m.requestLatency.WithLabelValues(endpoint).Observe(d.Seconds())
}
