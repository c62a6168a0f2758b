// Package logger provides structured logging for the verification suite.
//
// It wraps Uber's Zap logger behind a small, stable API:
//
//	log := logger.NewLoggerClient(logger.NewConfig())
//	log.Info("check finished", nil, map[string]interface{}{
//		"operation": "schema_create",
//		"identity":  "viewer",
//	})
//
// Every log line is JSON-encoded and carries the process id and the
// service name as initial fields.
//
// Configuration via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug            # debug, info, warning, error
//	ZAP_LOGGER_SERVICE_NAME=verify    # "service" field value
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
