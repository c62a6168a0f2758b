package history

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
)

var FXModule = fx.Module("history",
	fx.Provide(
		NewConfig,
		func(cfg Config, log *logger.Logger) (*Store, error) {
			return NewStore(cfg, log)
		},
	),
	fx.Invoke(RegisterHistoryLifecycle),
)

func RegisterHistoryLifecycle(lc fx.Lifecycle, s *Store, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("closing history store...", nil, nil)
			return s.Close()
		},
	})
}
