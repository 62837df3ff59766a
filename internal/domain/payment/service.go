package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"paymee-bridge/internal/controller/apperror"
)

// Service owns payment record lifecycle: pending on checkout, then
// transitions applied from provider notifications.
type Service struct {
	repo Repo
	// invoicePrefix recovers the host order id from a reference code when
	// the pending record is missing.
	invoicePrefix string
}

func NewService(repo Repo, invoicePrefix string) *Service {
	return &Service{repo: repo, invoicePrefix: invoicePrefix}
}

// RecordPending stores a freshly created checkout. Implements the
// checkout recorder port.
func (s *Service) RecordPending(ctx context.Context, reference, orderID, token, redirectURL string) error {
	now := time.Now().UTC()
	p := Payment{
		Reference:   reference,
		OrderID:     orderID,
		Token:       token,
		RedirectURL: redirectURL,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.CreatePayment(ctx, p); err != nil {
		return fmt.Errorf("create pending payment: %w", err)
	}
	return nil
}

// GetPaymentByReference loads a single payment record.
func (s *Service) GetPaymentByReference(ctx context.Context, reference string) (Payment, error) {
	return getByReference(ctx, s.repo, reference)
}

func getByReference(ctx context.Context, repo TxRepo, reference string) (Payment, error) {
	query, _ := NewPaymentsQueryBuilder().
		WithReferences(reference).
		Build()

	payments, err := repo.GetPayments(ctx, query)
	if err != nil {
		return Payment{}, fmt.Errorf("get payment: %w", err)
	}
	if len(payments) == 0 {
		return Payment{}, apperror.ErrPaymentNotFound
	}
	return payments[0], nil
}

// GetPayments lists payment records matching the query.
func (s *Service) GetPayments(ctx context.Context, query PaymentsQuery) ([]Payment, error) {
	payments, err := s.repo.GetPayments(ctx, &query)
	if err != nil {
		return nil, fmt.Errorf("filter payments: %w", err)
	}
	return payments, nil
}

// ProcessNotification applies one IPN notification atomically. A
// notification for an unknown reference creates the record first (the
// pending insert at checkout time is best effort). Redelivery of the
// current status and transitions out of a final status are rejected.
func (s *Service) ProcessNotification(ctx context.Context, n Notification) error {
	status, err := n.MappedStatus()
	if err != nil {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidStatusTransition, err.Error())
	}

	return s.repo.InTransaction(ctx, func(tx TxRepo) error {
		p, err := getByReference(ctx, tx, n.ReferenceCode)
		if errors.Is(err, apperror.ErrPaymentNotFound) {
			return s.createFromNotification(ctx, tx, n, status)
		}
		if err != nil {
			return fmt.Errorf("load payment: %w", err)
		}

		if p.Status == status {
			return apperror.ErrDuplicateNotification
		}
		if !p.Status.CanBeUpdatedTo(status) {
			return apperror.ErrInvalidStatusTransition
		}

		if err := tx.UpdateStatus(ctx, p.Reference, status, n.PayerMeta(), time.Now().UTC()); err != nil {
			return fmt.Errorf("update payment: %w", err)
		}
		return nil
	})
}

func (s *Service) createFromNotification(ctx context.Context, tx TxRepo, n Notification, status Status) error {
	now := time.Now().UTC()
	p := Payment{
		Reference: n.ReferenceCode,
		OrderID:   strings.TrimPrefix(n.ReferenceCode, s.invoicePrefix),
		Status:    status,
		Payer:     n.PayerMeta(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.CreatePayment(ctx, p); err != nil {
		return fmt.Errorf("create payment from notification: %w", err)
	}
	return nil
}
