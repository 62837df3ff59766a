package app

import (
	"context"
	"log/slog"

	"paymee-bridge/config"
	"paymee-bridge/internal/controller/message"
	"paymee-bridge/internal/external/kafka"
	"paymee-bridge/internal/messaging"
	"paymee-bridge/internal/webhook"
)

// StartWorkers starts the Kafka consumer that drains the IPN topic and
// applies notifications through the same processor the sync mode uses.
// It stops when ctx is cancelled.
func StartWorkers(ctx context.Context, cfg config.Config, processor *webhook.SyncProcessor) {
	controller := message.NewNotificationMessageController(processor)
	consumer := kafka.NewConsumer(
		cfg.KafkaBrokers,
		cfg.KafkaNotificationsTopic,
		cfg.KafkaConsumerGroup,
	)
	runner := messaging.NewRunner([]messaging.Worker{consumer}, controller.HandleMessage)

	go func() {
		slog.Info("starting IPN consumer",
			"topic", cfg.KafkaNotificationsTopic,
			"group", cfg.KafkaConsumerGroup)
		if err := runner.Start(ctx); err != nil {
			slog.Error("IPN runner failed", "error", err)
		}
	}()
}
