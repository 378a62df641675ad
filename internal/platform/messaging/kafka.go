package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// Kafka publishes relay events to the downstream broker. Messages are keyed
// by bag id so consumers see per-bag ordering.
type Kafka struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafka(brokers []string, topic string, logger *slog.Logger) *Kafka {
	if logger == nil {
		logger = slog.Default()
	}
	return &Kafka{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

func (k *Kafka) Publish(ctx context.Context, key string, payload []byte) error {
	err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
	if err != nil {
		k.logger.Error("event publish failed",
			"event", "kafka_publish_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"topic", k.writer.Topic,
			"key", key,
			"error", err.Error(),
		)
		return err
	}
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
