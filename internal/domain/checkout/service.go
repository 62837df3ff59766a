package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"paymee-bridge/pkg/metrics"
)

// Service runs the checkout flow: build the payload, call the provider,
// record the pending payment on success.
type Service struct {
	gateway  Gateway
	recorder Recorder
	cfg      BuilderConfig
}

func NewService(gateway Gateway, recorder Recorder, cfg BuilderConfig) *Service {
	return &Service{gateway: gateway, recorder: recorder, cfg: cfg}
}

// Checkout starts a payment for the given order. A non-nil error means the
// order itself was invalid; every provider-side outcome is in the Result.
func (s *Service) Checkout(ctx context.Context, order Order) (Result, error) {
	payload, err := BuildPayload(order, s.cfg)
	if err != nil {
		return Result{}, fmt.Errorf("build checkout payload: %w", err)
	}

	result := s.gateway.CreateCheckout(ctx, payload)
	metrics.CheckoutRequestsTotal.WithLabelValues(string(result.Kind)).Inc()

	if result.OK() {
		// Best effort: a failed record leaves the checkout payable and the
		// IPN listener creates the payment on first notification instead.
		if err := s.recorder.RecordPending(ctx, payload.ReferenceCode, order.ID, result.Token, result.RedirectURL); err != nil {
			slog.ErrorContext(ctx, "record pending payment",
				"reference", payload.ReferenceCode,
				"order_id", order.ID,
				"error", err)
		}
	}

	return result, nil
}
