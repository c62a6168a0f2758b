package minio

import (
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-verify/v1/logger"
)

var FXModule = fx.Module("minio",
	fx.Provide(
		NewConfig,
		func(cfg Config, log *logger.Logger) (*Minio, error) {
			return NewClient(cfg, log)
		},
	),
)
