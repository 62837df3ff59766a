package message

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"paymee-bridge/internal/controller/apperror"
	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/messaging"
	"paymee-bridge/internal/webhook"
)

// NotificationMessageController handles IPN notification messages from Kafka.
type NotificationMessageController struct {
	processor *webhook.SyncProcessor
}

// NewNotificationMessageController creates a new notification message controller.
func NewNotificationMessageController(processor *webhook.SyncProcessor) *NotificationMessageController {
	return &NotificationMessageController{processor: processor}
}

// HandleMessage processes a single IPN notification message.
func (c *NotificationMessageController) HandleMessage(ctx context.Context, key, value []byte) error {
	var env messaging.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		slog.ErrorContext(ctx, "unmarshal envelope", "key", string(key), "error", err)
		return fmt.Errorf("unmarshal envelope: %w", err)
	}

	slog.DebugContext(ctx, "processing notification message",
		"event_id", env.EventID,
		"key", env.Key,
		"type", env.Type)

	var n payment.Notification
	if err := json.Unmarshal(env.Payload, &n); err != nil {
		slog.ErrorContext(ctx, "unmarshal notification payload", "event_id", env.EventID, "error", err)
		return fmt.Errorf("unmarshal notification: %w", err)
	}

	if err := c.processor.ProcessNotification(ctx, n); err != nil {
		// Idempotency: redelivered notifications are not errors
		if errors.Is(err, apperror.ErrDuplicateNotification) {
			slog.InfoContext(ctx, "duplicate notification ignored",
				"event_id", env.EventID,
				"reference", n.ReferenceCode)
			return nil
		}
		// A provider replay arriving after the final status is dropped too;
		// retrying cannot make the transition legal.
		if errors.Is(err, apperror.ErrInvalidStatusTransition) {
			slog.WarnContext(ctx, "notification with illegal transition dropped",
				"event_id", env.EventID,
				"reference", n.ReferenceCode,
				"status", n.Status)
			return nil
		}

		slog.ErrorContext(ctx, "process notification",
			"event_id", env.EventID,
			"reference", n.ReferenceCode,
			"error", err)
		return err
	}

	slog.InfoContext(ctx, "notification processed",
		"event_id", env.EventID,
		"reference", n.ReferenceCode,
		"status", n.Status)

	return nil
}
