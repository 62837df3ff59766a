package payment

import (
	"context"
	"time"
)

//go:generate mockgen -source=repo_port.go -destination=mock_repo.go -package=payment

// TxRepo is the repository surface available both on the pool and inside
// a transaction.
type TxRepo interface {
	CreatePayment(ctx context.Context, p Payment) error
	GetPayments(ctx context.Context, query *PaymentsQuery) ([]Payment, error)
	UpdateStatus(ctx context.Context, reference string, status Status, payer Payer, updatedAt time.Time) error
}

// Repo adds transaction control on top of TxRepo.
type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
