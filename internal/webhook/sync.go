package webhook

import (
	"context"
	"log/slog"

	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/internal/notifier"
	"paymee-bridge/pkg/metrics"
)

// SyncProcessor applies notifications directly: update the payment record,
// then push the new status to the host platform.
type SyncProcessor struct {
	payments *payment.Service
	host     notifier.Client
}

func NewSyncProcessor(payments *payment.Service, host notifier.Client) *SyncProcessor {
	return &SyncProcessor{payments: payments, host: host}
}

func (p *SyncProcessor) ProcessNotification(ctx context.Context, n payment.Notification) error {
	if err := p.payments.ProcessNotification(ctx, n); err != nil {
		metrics.NotificationsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues("applied").Inc()

	p.notifyHost(ctx, n)
	return nil
}

// notifyHost is best effort: the payment record is already updated, a
// host outage only delays the storefront catching up.
func (p *SyncProcessor) notifyHost(ctx context.Context, n payment.Notification) {
	rec, err := p.payments.GetPaymentByReference(ctx, n.ReferenceCode)
	if err != nil {
		slog.ErrorContext(ctx, "load payment for host update", "reference", n.ReferenceCode, "error", err)
		return
	}

	req := notifier.PaymentUpdateRequest{
		Reference:     rec.Reference,
		OrderID:       rec.OrderID,
		Status:        string(rec.Status),
		PayerName:     rec.Payer.Name,
		PayerEmail:    rec.Payer.Email,
		PaymentType:   rec.Payer.PaymentType,
		PaymentMethod: rec.Payer.PaymentMethod,
		PaymentLink:   rec.Payer.PaymentLink,
		UpdatedAt:     rec.UpdatedAt,
	}
	if err := p.host.SendPaymentUpdate(ctx, req); err != nil {
		slog.ErrorContext(ctx, "send payment update to host",
			"reference", rec.Reference,
			"order_id", rec.OrderID,
			"status", rec.Status,
			"error", err)
	}
}
