package payment_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paymee-bridge/internal/controller/apperror"
	"paymee-bridge/internal/domain/payment"
	"paymee-bridge/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

// PgPaymentRepo is the main repository
type PgPaymentRepo struct {
	pg *postgres.Postgres
	repo
}

func NewPgPaymentRepo(pg *postgres.Postgres) payment.Repo {
	return &PgPaymentRepo{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgPaymentRepo) InTransaction(ctx context.Context, fn func(repo payment.TxRepo) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func (r *repo) CreatePayment(ctx context.Context, p payment.Payment) error {
	query, args, err := r.builder.Insert("payments").
		Columns("reference", "order_id", "token", "redirect_url", "status",
			"payer_name", "payer_email", "payment_type", "payment_method", "payment_link",
			"created_at", "updated_at").
		Values(p.Reference, p.OrderID, p.Token, p.RedirectURL, p.Status,
			nullable(p.Payer.Name), nullable(p.Payer.Email), nullable(p.Payer.PaymentType),
			nullable(p.Payer.PaymentMethod), nullable(p.Payer.PaymentLink),
			p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "payments_pkey") {
			return apperror.ErrPaymentAlreadyExists
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *repo) GetPayments(ctx context.Context, query *payment.PaymentsQuery) ([]payment.Payment, error) {
	sql, args := r.buildPaymentsQuery(query)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	return parsePaymentRows(rows)
}

func (r *repo) UpdateStatus(ctx context.Context, reference string, status payment.Status, payer payment.Payer, updatedAt time.Time) error {
	update := r.builder.Update("payments").
		Set("status", status).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"reference": reference})

	// Payer metadata arrives with the notification; absent fields keep
	// their stored values.
	if payer.Name != "" {
		update = update.Set("payer_name", payer.Name)
	}
	if payer.Email != "" {
		update = update.Set("payer_email", payer.Email)
	}
	if payer.PaymentType != "" {
		update = update.Set("payment_type", payer.PaymentType)
	}
	if payer.PaymentMethod != "" {
		update = update.Set("payment_method", payer.PaymentMethod)
	}
	if payer.PaymentLink != "" {
		update = update.Set("payment_link", payer.PaymentLink)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (r *repo) buildPaymentsQuery(q *payment.PaymentsQuery) (string, []interface{}) {
	query := r.builder.Select("reference", "order_id", "token", "redirect_url", "status",
		"payer_name", "payer_email", "payment_type", "payment_method", "payment_link",
		"created_at", "updated_at").
		From("payments")

	if len(q.References) > 0 {
		query = query.Where(squirrel.Eq{"reference": q.References})
	}
	if len(q.OrderIDs) > 0 {
		query = query.Where(squirrel.Eq{"order_id": q.OrderIDs})
	}
	if len(q.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": q.Statuses})
	}

	query = query.OrderBy("created_at DESC")

	sql, args, _ := query.ToSql()
	return sql, args
}
