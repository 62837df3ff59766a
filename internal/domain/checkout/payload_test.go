package checkout

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() Order {
	return Order{
		ID:            "1542",
		Number:        "1542",
		Total:         dec("199.90"),
		ShippingTotal: dec("15.00"),
		DiscountTotal: dec("10.00"),
		Billing: Billing{
			FirstName: "Maria",
			LastName:  "Silva",
			CPF:       "123.456.789-09",
			Email:     "maria@example.com",
		},
		Items: []OrderItem{
			{Name: "Camiseta", Quantity: 2, UnitPrice: dec("49.90")},
			{Name: "Caneca", Quantity: 1, UnitPrice: dec("35.10")},
		},
		Fees: []Fee{
			{Name: "Gift wrap", Total: dec("5.00")},
		},
		Taxes: []Tax{
			{Label: "ICMS", Amount: dec("50.00"), ShippingAmount: dec("5.00")},
		},
	}
}

func TestBuildPayload(t *testing.T) {
	t.Parallel()

	cfg := BuilderConfig{
		InvoicePrefix: "WC-",
		CallbackURL:   "https://shop.example.com/ipn/paymee",
	}

	t.Run("should build full payload from order", func(t *testing.T) {
		// given
		order := sampleOrder()

		// when
		p, err := BuildPayload(order, cfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, "BRL", p.Currency)
		assert.Equal(t, "199.90", p.Amount)
		assert.Equal(t, "WC-1542", p.ReferenceCode)
		assert.Equal(t, 1440, p.MaxAge)
		assert.Equal(t, cfg.CallbackURL, p.CallbackURL)
		assert.Equal(t, Shopper{
			FirstName: "Maria",
			LastName:  "Silva",
			CPF:       "123.456.789-09",
			Email:     "maria@example.com",
		}, p.Shopper)
		assert.Equal(t, []LineItem{
			{Description: "Camiseta", Amount: "49.90", Quantity: 2},
			{Description: "Caneca", Amount: "35.10", Quantity: 1},
			{Description: "Gift wrap", Amount: "5.00", Quantity: 1},
			{Description: "ICMS", Amount: "55.00", Quantity: 1},
		}, p.Items)
		assert.Equal(t, "15.00", p.ShippingCost)
		assert.Equal(t, "-10.00", p.ExtraAmount)
	})

	t.Run("should collapse order into single line when send only total", func(t *testing.T) {
		// given
		order := sampleOrder()
		totalCfg := cfg
		totalCfg.SendOnlyTotal = true

		// when
		p, err := BuildPayload(order, totalCfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, []LineItem{
			{Description: "Order 1542", Amount: "199.90", Quantity: 1},
		}, p.Items)
		assert.Empty(t, p.ShippingCost)
		assert.Empty(t, p.ExtraAmount)
	})

	t.Run("should skip non-positive lines and omit optional amounts", func(t *testing.T) {
		// given
		order := Order{
			ID:    "77",
			Total: dec("10.00"),
			Items: []OrderItem{
				{Name: "Free sample", Quantity: 1, UnitPrice: dec("0")},
				{Name: "Refund line", Quantity: 1, UnitPrice: dec("-5.00")},
				{Name: "Book", Quantity: 0, UnitPrice: dec("10.00")},
				{Name: "Pen", Quantity: 3, UnitPrice: dec("2.50")},
			},
			Fees: []Fee{
				{Name: "Waived fee", Total: dec("0")},
			},
			Taxes: []Tax{
				{Label: "Zero tax", Amount: dec("0"), ShippingAmount: dec("0")},
			},
		}

		// when
		p, err := BuildPayload(order, cfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, []LineItem{
			{Description: "Pen", Amount: "2.50", Quantity: 3},
		}, p.Items)
		assert.Empty(t, p.ShippingCost)
		assert.Empty(t, p.ExtraAmount)
	})

	t.Run("should render amounts with two decimals and dot separator", func(t *testing.T) {
		// given
		order := sampleOrder()
		order.Total = dec("1234.5")

		// when
		p, err := BuildPayload(order, cfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, "1234.50", p.Amount)
	})

	t.Run("should fall back to order id when number missing", func(t *testing.T) {
		// given
		order := sampleOrder()
		order.Number = ""
		totalCfg := cfg
		totalCfg.SendOnlyTotal = true

		// when
		p, err := BuildPayload(order, totalCfg)

		// then
		require.NoError(t, err)
		assert.Equal(t, "Order 1542", p.Items[0].Description)
	})

	t.Run("should reject order without id", func(t *testing.T) {
		// given
		order := sampleOrder()
		order.ID = ""

		// when
		_, err := BuildPayload(order, cfg)

		// then
		assert.ErrorIs(t, err, errMissingOrderID)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		// given
		order := sampleOrder()
		order.Total = dec("-1.00")

		// when
		_, err := BuildPayload(order, cfg)

		// then
		assert.ErrorIs(t, err, errNegativeTotal)
	})
}

func TestSanitizeDescription(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "should strip markup",
			in:       "<b>Camiseta</b> <i>azul</i>",
			expected: "Camiseta azul",
		},
		{
			name:     "should collapse whitespace runs",
			in:       "Camiseta \t\n  azul",
			expected: "Camiseta azul",
		},
		{
			name:     "should trim surrounding whitespace",
			in:       "  Caneca  ",
			expected: "Caneca",
		},
		{
			name:     "should truncate to 95 characters",
			in:       strings.Repeat("a", 200),
			expected: strings.Repeat("a", 95),
		},
		{
			name:     "should count runes not bytes when truncating",
			in:       strings.Repeat("ç", 200),
			expected: strings.Repeat("ç", 95),
		},
		{
			name:     "should keep short plain text untouched",
			in:       "Caneca",
			expected: "Caneca",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, sanitizeDescription(tc.in))
		})
	}
}
