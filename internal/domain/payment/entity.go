package payment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"paymee-bridge/internal/controller/apperror"
)

// Payment is the bridge's record of one checkout, keyed by the provider
// reference code (invoice prefix + order id).
type Payment struct {
	Reference   string    `json:"reference"`
	OrderID     string    `json:"order_id"`
	Token       string    `json:"token,omitempty"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	Status      Status    `json:"status"`
	Payer       Payer     `json:"payer"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Payer holds the metadata PayMee reports about who actually paid.
type Payer struct {
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	PaymentType   string `json:"payment_type,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	PaymentLink   string `json:"payment_link,omitempty"`
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

var AvailableStatuses = []Status{StatusPending, StatusPaid, StatusCancelled, StatusExpired}

// CanBeUpdatedTo reports whether a transition is legal. Paid, cancelled
// and expired are final.
func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusPaid, StatusCancelled, StatusExpired}, newStatus)
	case StatusPaid, StatusCancelled, StatusExpired:
		return false
	default:
		return false
	}
}

func NewStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(raw))
	if slices.Contains(AvailableStatuses, s) {
		return s, nil
	}
	return "", errors.New("invalid payment status")
}

type PaymentsQuery struct {
	References []string
	OrderIDs   []string
	Statuses   []Status
}

func (q *PaymentsQuery) Validate() error {
	for _, s := range q.Statuses {
		if !slices.Contains(AvailableStatuses, s) {
			return fmt.Errorf("invalid status: %s", s)
		}
	}
	return nil
}

type PaymentsQueryBuilder struct {
	query *PaymentsQuery
}

func NewPaymentsQueryBuilder() *PaymentsQueryBuilder {
	return &PaymentsQueryBuilder{
		query: &PaymentsQuery{},
	}
}

func (b *PaymentsQueryBuilder) Build() (*PaymentsQuery, error) {
	if err := b.query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidPaymentsQuery, err.Error())
	}
	return b.query, nil
}

func (b *PaymentsQueryBuilder) WithReferences(refs ...string) *PaymentsQueryBuilder {
	b.query.References = refs
	return b
}

func (b *PaymentsQueryBuilder) WithOrderIDs(orderIDs ...string) *PaymentsQueryBuilder {
	b.query.OrderIDs = orderIDs
	return b
}

func (b *PaymentsQueryBuilder) WithStatuses(statuses ...Status) *PaymentsQueryBuilder {
	b.query.Statuses = statuses
	return b
}
