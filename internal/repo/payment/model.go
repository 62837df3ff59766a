package payment_repo

import (
	"time"

	"paymee-bridge/internal/domain/payment"
)

type paymentRow struct {
	Reference     string
	OrderID       string
	Token         string
	RedirectURL   string
	Status        string
	PayerName     *string
	PayerEmail    *string
	PaymentType   *string
	PaymentMethod *string
	PaymentLink   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m paymentRow) toDomain() (payment.Payment, error) {
	status, err := payment.NewStatus(m.Status)
	if err != nil {
		return payment.Payment{}, err
	}

	return payment.Payment{
		Reference:   m.Reference,
		OrderID:     m.OrderID,
		Token:       m.Token,
		RedirectURL: m.RedirectURL,
		Status:      status,
		Payer: payment.Payer{
			Name:          deref(m.PayerName),
			Email:         deref(m.PayerEmail),
			PaymentType:   deref(m.PaymentType),
			PaymentMethod: deref(m.PaymentMethod),
			PaymentLink:   deref(m.PaymentLink),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
