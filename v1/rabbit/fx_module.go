package rabbit

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
)

var FXModule = fx.Module("rabbit",
	fx.Provide(
		NewConfig,
		func(cfg Config, log *logger.Logger) (*Rabbit, error) {
			return NewClient(cfg, log)
		},
	),
	fx.Invoke(RegisterRabbitLifecycle),
)

func RegisterRabbitLifecycle(lc fx.Lifecycle, rb *Rabbit, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing rabbit client...", nil, nil)
			return rb.Close()
		},
	})
}
