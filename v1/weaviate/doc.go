// Package weaviate provides a thin client for the Weaviate REST API,
// covering the surface the permission verification suite exercises.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides all
// low-level HTTP details, endpoint paths and header handling:
//
//	client, err := weaviate.NewClient(cfg, log)
//
// Operations:
//
//   - Meta                       — GET /v1/meta liveness and identity probe
//   - GetSchema / GetClass       — schema introspection
//   - CreateClass / DeleteClass  — collection creation and removal
//   - EnsureClass                — idempotent delete-then-create
//   - InsertObject               — record write
//   - ListObjects                — record read, possibly-empty ordered result
//   - CreateBackup / BackupStatus / WaitForBackup
//
// Tokens travel per call, not per client: a verification run speaks to the
// same server under two identities and must not rebuild its transport to
// switch between them.
//
// # Error Classification
//
// Failures are classified into typed errors rather than message text:
//
//	ErrUnauthorized  — credential rejected (HTTP 401)
//	ErrForbidden     — permission denied  (HTTP 403)
//	ErrNotFound      — target absent      (HTTP 404)
//	ErrUnavailable   — transport failure, never conflatable with denial
//
// Check them with errors.Is or the helpers IsPermissionDenied, IsAuthFailure,
// IsConnectionFailure and IsNotFound. Other non-2xx responses surface as
// *StatusError with the raw code and body.
//
// # Configuration
//
// Configuration is sourced from environment variables:
//
//	WEAVIATE_SCHEME                 (default "http")
//	WEAVIATE_HOST                   (required)
//	WEAVIATE_PORT                   (default 8080)
//	WEAVIATE_HTTP_TIMEOUT_SECONDS   (default 30)
//
// # Dependency Injection (Fx)
//
// A ready-to-use Fx module is provided:
//
//	weaviate.FXModule
//
// which supplies *weaviate.Config and *weaviate.Client and registers a
// shutdown hook that drops idle connections.
package weaviate
