package weaviate

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
	"github.com/Aleph-Alpha/weaviate-verify/v1/metrics"
)

// FXModule wires the Weaviate client into Fx.
//
// It provides:
//   - *Config  (NewConfig)
//   - *Client  (NewClient, with the metrics registry attached as observer)
//   - Lifecycle hook for releasing idle connections on shutdown
var FXModule = fx.Module(
	"weaviate",

	fx.Provide(
		NewConfig,
		func(cfg *Config, log *logger.Logger, m *metrics.Metrics) (*Client, error) {
			client, err := NewClient(cfg, log)
			if err != nil {
				return nil, err
			}
			client.SetObserver(m)
			return client, nil
		},
	),

	fx.Invoke(RegisterWeaviateLifecycle),
)

// RegisterWeaviateLifecycle ensures the client releases its connections on
// application shutdown.
func RegisterWeaviateLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
