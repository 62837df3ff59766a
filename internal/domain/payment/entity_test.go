package payment

import (
	"testing"

	"paymee-bridge/internal/controller/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_CanBeUpdatedTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending to paid", from: StatusPending, to: StatusPaid, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "pending to expired", from: StatusPending, to: StatusExpired, allowed: true},
		{name: "paid is final", from: StatusPaid, to: StatusCancelled, allowed: false},
		{name: "cancelled is final", from: StatusCancelled, to: StatusPaid, allowed: false},
		{name: "expired is final", from: StatusExpired, to: StatusPaid, allowed: false},
		{name: "no going back to pending", from: StatusPaid, to: StatusPending, allowed: false},
		{name: "unknown status has no transitions", from: Status("weird"), to: StatusPaid, allowed: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanBeUpdatedTo(tc.to))
		})
	}
}

func TestNewStatus(t *testing.T) {
	t.Parallel()

	t.Run("should normalize case", func(t *testing.T) {
		s, err := NewStatus("PAID")
		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, s)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := NewStatus("on-hold")
		assert.Error(t, err)
	})
}

func TestPaymentsQueryBuilder(t *testing.T) {
	t.Parallel()

	t.Run("should build query with filters", func(t *testing.T) {
		query, err := NewPaymentsQueryBuilder().
			WithReferences("WC-1", "WC-2").
			WithOrderIDs("1").
			WithStatuses(StatusPaid).
			Build()

		require.NoError(t, err)
		assert.Equal(t, []string{"WC-1", "WC-2"}, query.References)
		assert.Equal(t, []string{"1"}, query.OrderIDs)
		assert.Equal(t, []Status{StatusPaid}, query.Statuses)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := NewPaymentsQueryBuilder().
			WithStatuses(Status("bogus")).
			Build()

		assert.ErrorIs(t, err, apperror.ErrInvalidPaymentsQuery)
	})
}

func TestNotification_MappedStatus(t *testing.T) {
	t.Parallel()

	t.Run("should map provider status string", func(t *testing.T) {
		n := Notification{ReferenceCode: "WC-9", Status: "Paid"}

		s, err := n.MappedStatus()

		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, s)
	})

	t.Run("should reject unmapped status", func(t *testing.T) {
		n := Notification{ReferenceCode: "WC-9", Status: "refunded"}

		_, err := n.MappedStatus()

		assert.Error(t, err)
	})
}

func TestNotification_PayerMeta(t *testing.T) {
	t.Parallel()

	t.Run("should resolve catalog names", func(t *testing.T) {
		n := Notification{
			Sender:        Sender{Name: "Maria Silva", Email: "maria@example.com"},
			PaymentMethod: Method{Type: 1, Code: 103},
			PaymentLink:   "https://paymee.com.br/receipt/1",
		}

		payer := n.PayerMeta()

		assert.Equal(t, Payer{
			Name:          "Maria Silva",
			Email:         "maria@example.com",
			PaymentType:   "Bank Transfer",
			PaymentMethod: "Bank Transfer Itaú-Unibanco",
			PaymentLink:   "https://paymee.com.br/receipt/1",
		}, payer)
	})

	t.Run("should leave method fields empty when absent", func(t *testing.T) {
		payer := Notification{Sender: Sender{Name: "Maria"}}.PayerMeta()

		assert.Empty(t, payer.PaymentType)
		assert.Empty(t, payer.PaymentMethod)
	})

	t.Run("should name unknown codes Unknown", func(t *testing.T) {
		payer := Notification{PaymentMethod: Method{Type: 9, Code: 999}}.PayerMeta()

		assert.Equal(t, "Unknown", payer.PaymentType)
		assert.Equal(t, "Unknown", payer.PaymentMethod)
	})
}

func TestPaymentMethodCatalog(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bank Transfer", PaymentTypeName(1))
	assert.Equal(t, "Cash Payment", PaymentTypeName(2))
	assert.Equal(t, "Bank Transfer Banco do Brasil", PaymentMethodName(101))
	assert.Equal(t, "Cash Payment Itaú-Unibanco", PaymentMethodName(105))
	assert.Equal(t, "Unknown", PaymentMethodName(0))
}
