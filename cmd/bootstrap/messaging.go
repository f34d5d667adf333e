package bootstrap

import (
	"context"
	"log/slog"

	"ootd-commerce/internal/infra/messaging/kafka"
	"ootd-commerce/internal/infra/outbox"
	"ootd-commerce/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewOutboxPublisher,
	),
)

// NewOutboxPublisher returns a nil Publisher when kafka is disabled; the
// outbox worker then leaves jobs queued until a broker is configured.
func NewOutboxPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (outbox.Publisher, error) {
	if !cfg.Kafka.Enabled {
		logger.Info("kafka is disabled; outbox jobs will not be published")
		return nil, nil
	}

	producer, err := kafka.NewProducer(cfg.Kafka, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return producer.Close()
		},
	})

	logger.Info("kafka producer ready", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return kafka.NewOutboxPublisher(producer, cfg.Kafka.Topic), nil
}
