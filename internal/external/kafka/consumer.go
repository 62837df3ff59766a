package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"paymee-bridge/internal/messaging"
	"paymee-bridge/pkg/correlation"
	"paymee-bridge/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// Consumer implements messaging.Worker using Kafka.
type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer creates a new Kafka consumer.
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})

	return &Consumer{reader: reader}
}

// Start begins consuming messages and passes them to the handler.
// Blocks until context is cancelled or an unrecoverable error occurs.
func (c *Consumer) Start(ctx context.Context, handler messaging.MessageHandler) error {
	topic := c.reader.Config().Topic
	group := c.reader.Config().GroupID
	slog.Info("consumer started", "topic", topic, "group_id", group)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Info("consumer stopped (context cancelled)", "topic", topic)
				return nil
			}
			slog.Error("fetch message", "topic", topic, "error", err)
			return err
		}

		msgCtx := withCorrelation(ctx, msg)
		slog.DebugContext(msgCtx, "message received",
			"topic", msg.Topic,
			"partition", msg.Partition,
			"offset", msg.Offset,
			"key", string(msg.Key))

		start := time.Now()
		if err := handler(msgCtx, msg.Key, msg.Value); err != nil {
			metrics.KafkaProcessingDuration.WithLabelValues(topic, group, "error").Observe(time.Since(start).Seconds())
			metrics.KafkaMessagesProcessed.WithLabelValues(topic, group, "error").Inc()
			slog.ErrorContext(msgCtx, "handler error, message not committed",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"key", string(msg.Key),
				"error", err)
			// Not committed: the message is redelivered on restart.
			continue
		}
		metrics.KafkaProcessingDuration.WithLabelValues(topic, group, "ok").Observe(time.Since(start).Seconds())
		metrics.KafkaMessagesProcessed.WithLabelValues(topic, group, "ok").Inc()

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			slog.ErrorContext(msgCtx, "commit message",
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
				"error", err)
			return err
		}
	}
}

// Close closes the Kafka reader.
func (c *Consumer) Close() error {
	slog.Info("closing consumer",
		"topic", c.reader.Config().Topic,
		"group_id", c.reader.Config().GroupID)
	return c.reader.Close()
}

func withCorrelation(ctx context.Context, msg kafka.Message) context.Context {
	for _, h := range msg.Headers {
		if h.Key == correlation.KafkaHeaderName && len(h.Value) > 0 {
			return correlation.WithID(ctx, string(h.Value))
		}
	}
	ctx, _ = correlation.EnsureID(ctx)
	return ctx
}
