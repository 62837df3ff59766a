package checkout

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Order is the host platform's view of a sale, read-only to the bridge.
// It arrives on the checkout endpoint and is never persisted here.
type Order struct {
	ID            string          `json:"id" binding:"required"`
	Number        string          `json:"number"`
	Total         decimal.Decimal `json:"total"`
	ShippingTotal decimal.Decimal `json:"shipping_total"`
	DiscountTotal decimal.Decimal `json:"discount_total"`
	Billing       Billing         `json:"billing"`
	Items         []OrderItem     `json:"items"`
	Fees          []Fee           `json:"fees"`
	Taxes         []Tax           `json:"taxes"`
}

// Billing carries the buyer fields PayMee requires in the shopper block.
type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
}

// OrderItem is a product line. UnitPrice is the per-unit total excluding tax.
type OrderItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type Fee struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// Tax is a tax row; the chargeable amount is Amount plus ShippingAmount.
type Tax struct {
	Label          string          `json:"label"`
	Amount         decimal.Decimal `json:"amount"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
}

func (t Tax) total() decimal.Decimal {
	return t.Amount.Add(t.ShippingAmount)
}

var (
	errMissingOrderID = errors.New("order id is required")
	errNegativeTotal  = errors.New("order total must not be negative")
)

// Validate checks the minimum the builder needs: an id and a non-negative total.
func (o Order) Validate() error {
	if o.ID == "" {
		return errMissingOrderID
	}
	if o.Total.IsNegative() {
		return errNegativeTotal
	}
	return nil
}

// DisplayNumber returns the human-facing order number, falling back to the id.
func (o Order) DisplayNumber() string {
	if o.Number != "" {
		return o.Number
	}
	return o.ID
}
