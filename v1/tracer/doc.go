// Package tracer provides distributed tracing for the verification suite
// through OpenTelemetry.
//
// It wraps the OpenTelemetry TracerProvider behind a small API: StartSpan
// for creating spans, RecordErrorOnSpan for error status, and SetAttributes
// for tagging spans with typed attributes. The verification runner opens one
// span per run and one child span per permission check.
//
// When export is enabled, spans are shipped over OTLP HTTP; the exporter
// endpoint follows the standard OTEL_EXPORTER_OTLP_* environment variables.
//
// Configuration:
//
//	TRACER_SERVICE_NAME=weaviate-verify
//	APP_ENV=production
//	TRACER_ENABLE_EXPORT=true
package tracer
