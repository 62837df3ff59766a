package webhook

import (
	"context"
	"fmt"

	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/messaging"
)

// NotificationMessageType routes IPN envelopes on the notifications topic.
const NotificationMessageType = "paymee.ipn"

// KafkaProcessor defers notification handling to a consumer by
// publishing the notification to the broker.
type KafkaProcessor struct {
	publisher messaging.Publisher
}

func NewKafkaProcessor(publisher messaging.Publisher) *KafkaProcessor {
	return &KafkaProcessor{publisher: publisher}
}

func (p *KafkaProcessor) ProcessNotification(ctx context.Context, n payment.Notification) error {
	env, err := messaging.NewEnvelope(n.ReferenceCode, NotificationMessageType, n)
	if err != nil {
		return fmt.Errorf("wrap notification: %w", err)
	}
	return p.publisher.Publish(ctx, env)
}
