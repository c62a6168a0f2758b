package verifier

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/identity"
	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
	"github.com/Aleph-Alpha/weaviate-verify/v1/metrics"
	"github.com/Aleph-Alpha/weaviate-verify/v1/tracer"
	"github.com/Aleph-Alpha/weaviate-verify/v1/weaviate"
)

// FXModule wires the verification runner into Fx.
//
// It provides:
//   - Config   (NewConfig)
//   - *Runner  (NewRunner, with metrics and tracing attached)
var FXModule = fx.Module(
	"verifier",

	fx.Provide(
		NewConfig,
		func(client *weaviate.Client, creds *identity.Credentials, cfg Config, log *logger.Logger, m *metrics.Metrics, t *tracer.Tracer) (*Runner, error) {
			runner, err := NewRunner(client, creds, cfg, log)
			if err != nil {
				return nil, err
			}
			runner.SetMetrics(m)
			runner.SetTracer(t)
			return runner, nil
		},
	),
)
