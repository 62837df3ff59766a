package payment_repo

import (
	"github.com/jackc/pgx/v5"

	"paymee-bridge/internal/domain/payment"
)

func parsePaymentRow(row pgx.Row) (payment.Payment, error) {
	var m paymentRow

	err := row.Scan(&m.Reference,
		&m.OrderID,
		&m.Token,
		&m.RedirectURL,
		&m.Status,
		&m.PayerName,
		&m.PayerEmail,
		&m.PaymentType,
		&m.PaymentMethod,
		&m.PaymentLink,
		&m.CreatedAt,
		&m.UpdatedAt)
	if err != nil {
		return payment.Payment{}, err
	}

	return m.toDomain()
}

func parsePaymentRows(rows pgx.Rows) ([]payment.Payment, error) {
	defer rows.Close()

	var payments []payment.Payment

	for rows.Next() {
		p, err := parsePaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
