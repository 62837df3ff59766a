package webhook

import (
	"context"

	"paymee-bridge/internal/domain/payment"
)

// Processor defines the interface for processing IPN notifications.
// Implementations can handle notifications synchronously or asynchronously.
type Processor interface {
	ProcessNotification(ctx context.Context, n payment.Notification) error
}
