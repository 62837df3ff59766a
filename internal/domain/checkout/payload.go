package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// CurrencyBRL is the only currency PayMee accepts.
	CurrencyBRL = "BRL"
	// maxAgeMinutes is how long a checkout stays payable.
	maxAgeMinutes = 1440
)

// LineItem is one chargeable entry in the checkout payload.
type LineItem struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Quantity    int    `json:"quantity"`
}

// Shopper is the buyer block of the checkout payload.
type Shopper struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
}

// Payload is the JSON body sent to PayMee's checkout endpoint.
// Built fresh per attempt, never persisted.
type Payload struct {
	Currency      string     `json:"currency"`
	Amount        string     `json:"amount"`
	ReferenceCode string     `json:"referenceCode"`
	MaxAge        int        `json:"maxAge"`
	CallbackURL   string     `json:"callbackURL"`
	Shopper       Shopper    `json:"shopper"`
	Items         []LineItem `json:"items,omitempty"`
	ShippingCost  string     `json:"shippingCost,omitempty"`
	ExtraAmount   string     `json:"extraAmount,omitempty"`
}

// BuilderConfig carries the merchant settings the builder depends on.
type BuilderConfig struct {
	// InvoicePrefix is prepended to the order id to form the reference code.
	// Must be unique across merchant accounts sharing a PayMee account.
	InvoicePrefix string
	// CallbackURL is the merchant's public IPN listener endpoint.
	CallbackURL string
	// SendOnlyTotal collapses the order into a single total line item.
	SendOnlyTotal bool
}

// BuildPayload transforms an order into the provider's checkout schema.
// Pure: no network or persistence side effects.
func BuildPayload(order Order, cfg BuilderConfig) (Payload, error) {
	if err := order.Validate(); err != nil {
		return Payload{}, fmt.Errorf("invalid order: %w", err)
	}

	p := Payload{
		Currency:      CurrencyBRL,
		Amount:        formatAmount(order.Total),
		ReferenceCode: cfg.InvoicePrefix + order.ID,
		MaxAge:        maxAgeMinutes,
		CallbackURL:   cfg.CallbackURL,
		Shopper: Shopper{
			FirstName: order.Billing.FirstName,
			LastName:  order.Billing.LastName,
			CPF:       order.Billing.CPF,
			Email:     order.Billing.Email,
		},
	}

	if cfg.SendOnlyTotal {
		p.Items = []LineItem{{
			Description: sanitizeDescription(fmt.Sprintf("Order %s", order.DisplayNumber())),
			Amount:      formatAmount(order.Total),
			Quantity:    1,
		}}
		return p, nil
	}

	p.Items = buildLineItems(order)

	if order.ShippingTotal.IsPositive() {
		p.ShippingCost = formatAmount(order.ShippingTotal)
	}
	if order.DiscountTotal.IsPositive() {
		p.ExtraAmount = "-" + formatAmount(order.DiscountTotal)
	}

	return p, nil
}

// buildLineItems emits one entry per product, fee and tax with a strictly
// positive amount; everything else is silently skipped.
func buildLineItems(order Order) []LineItem {
	items := make([]LineItem, 0, len(order.Items)+len(order.Fees)+len(order.Taxes))

	for _, item := range order.Items {
		if item.Quantity <= 0 || !item.UnitPrice.IsPositive() {
			continue
		}
		items = append(items, LineItem{
			Description: sanitizeDescription(item.Name),
			Amount:      formatAmount(item.UnitPrice),
			Quantity:    item.Quantity,
		})
	}

	for _, fee := range order.Fees {
		if !fee.Total.IsPositive() {
			continue
		}
		items = append(items, LineItem{
			Description: sanitizeDescription(fee.Name),
			Amount:      formatAmount(fee.Total),
			Quantity:    1,
		})
	}

	for _, tax := range order.Taxes {
		total := tax.total()
		if !total.IsPositive() {
			continue
		}
		items = append(items, LineItem{
			Description: sanitizeDescription(tax.Label),
			Amount:      formatAmount(total),
			Quantity:    1,
		})
	}

	return items
}

// formatAmount renders a fixed two-decimal amount with '.' separator,
// independent of locale.
func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
