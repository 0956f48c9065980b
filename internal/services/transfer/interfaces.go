package transfer

import (
	"context"

	"sahay/internal/models"
	"sahay/internal/services/fraud"
)

// RiskEvaluator scores a transfer attempt before it is accepted.
type RiskEvaluator interface {
	Evaluate(ctx context.Context, sender *models.User, recipientUpiID string, amount float64) fraud.Verdict
}

// Directory resolves a counterparty UPI address to an account record.
type Directory interface {
	GetByUpiID(upiID string) (*models.User, error)
}

// Service owns the transfer state machine. It is the only writer of a
// transfer's status and of the sender's balance.
type Service interface {
	Send(ctx context.Context, sender *models.User, req SendRequest) (*models.Transaction, error)
	Confirm(ctx context.Context, senderID uint, transactionID string, req ConfirmRequest) (*models.Transaction, error)
	Cancel(ctx context.Context, senderID uint, transactionID string, reason string) (*models.Transaction, error)
	Get(ctx context.Context, senderID uint, transactionID string) (*models.Transaction, error)
	List(ctx context.Context, senderID uint, status string, limit, offset int) ([]models.Transaction, int64, error)
	Stats(ctx context.Context, sender *models.User) (*Summary, error)
}
