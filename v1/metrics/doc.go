// Package metrics provides Prometheus-based monitoring for the
// verification suite.
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Isolated registry per service with a constant service="<name>" label
//   - Automatic registration of Go runtime and process-level collectors
//   - Built-in verification metrics:
//     verification_checks_total{operation,identity,result}
//     verification_run_duration_seconds{passed}
//     weaviate_request_duration_seconds{endpoint}
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// Direct usage (without Fx):
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "weaviate-verify",
//	})
//	go m.Server.ListenAndServe()
//
//	m.ObserveCheck("record_write", "viewer", "denied")
//
// Configuration via environment variables:
//
//	METRICS_ADDRESS=:9090
//	METRICS_SERVICE_NAME=weaviate-verify
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true
package metrics
