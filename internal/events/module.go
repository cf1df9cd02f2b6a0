package events

import (
	"context"
	"log/slog"

	"github.com/hoseki-store/joyeria/internal/config"
	"go.uber.org/fx"
)

// Module provides the event producer and closes it on shutdown.
var Module = fx.Options(
	fx.Provide(newProducer),
	fx.Invoke(registerProducerLifecycle),
)

func newProducer(cfg *config.Config, logger *slog.Logger) *Producer {
	return NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
}

func registerProducerLifecycle(lc fx.Lifecycle, producer *Producer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return producer.Close()
		},
	})
}
