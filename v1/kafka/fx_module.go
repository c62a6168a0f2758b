package kafka

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
)

var FXModule = fx.Module("kafka",
	fx.Provide(
		NewConfig,
		func(cfg Config, log *logger.Logger) *Client {
			return NewClient(cfg, log)
		},
	),
	fx.Invoke(RegisterKafkaLifecycle),
)

func RegisterKafkaLifecycle(lc fx.Lifecycle, c *Client, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing kafka producer...", nil, nil)
			return c.Close()
		},
	})
}
