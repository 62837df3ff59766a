package payment

import "fmt"

// Notification is PayMee's asynchronous IPN payload. Unknown fields are
// ignored; there is no inbound signature to verify.
type Notification struct {
	ReferenceCode string  `json:"referenceCode" form:"referenceCode" binding:"required"`
	Status        string  `json:"status" form:"status" binding:"required"`
	Sender        Sender  `json:"sender"`
	PaymentMethod Method  `json:"paymentMethod"`
	PaymentLink   string  `json:"paymentLink" form:"paymentLink"`
	Transaction   string  `json:"uuid" form:"uuid"`
	Amount        float64 `json:"amount" form:"amount"`
}

type Sender struct {
	Name  string `json:"name" form:"sender_name"`
	Email string `json:"email" form:"sender_email"`
}

type Method struct {
	Type int `json:"type" form:"payment_type"`
	Code int `json:"code" form:"payment_code"`
}

// MappedStatus converts the provider's status string into a domain status.
func (n Notification) MappedStatus() (Status, error) {
	s, err := NewStatus(n.Status)
	if err != nil {
		return "", fmt.Errorf("notification for %s: %w", n.ReferenceCode, err)
	}
	return s, nil
}

// PayerMeta builds the payer block recorded from this notification.
func (n Notification) PayerMeta() Payer {
	p := Payer{
		Name:        n.Sender.Name,
		Email:       n.Sender.Email,
		PaymentLink: n.PaymentLink,
	}
	if n.PaymentMethod.Type != 0 {
		p.PaymentType = PaymentTypeName(n.PaymentMethod.Type)
	}
	if n.PaymentMethod.Code != 0 {
		p.PaymentMethod = PaymentMethodName(n.PaymentMethod.Code)
	}
	return p
}
