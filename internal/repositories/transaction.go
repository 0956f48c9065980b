package repositories

import (
	"errors"
	"time"

	"sahay/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// TransactionStore is the subset of transaction persistence used inside the
// completion critical section. InTransaction runs fn against a store bound
// to a single database transaction; every write inside fn commits or rolls
// back as one unit.
type TransactionStore interface {
	InTransaction(fn func(tx TransactionStore) error) error

	CreateTransaction(txn *models.Transaction) error
	GetTransaction(senderID uint, transactionID string) (*models.Transaction, error)
	// GetTransactionForUpdate row-locks the transaction for the duration of
	// the enclosing database transaction.
	GetTransactionForUpdate(senderID uint, transactionID string) (*models.Transaction, error)
	UpdateTransaction(txn *models.Transaction) error

	// MarkTransactionFailed forces a non-terminal transaction to failed and
	// appends an error-log entry. Used after the completion unit rolled back.
	MarkTransactionFailed(transactionID, kind, message string) error

	// DebitBalance subtracts amount from the user's balance with a guarded
	// update; it returns ErrInsufficientBalance when the guard fails so the
	// check and the write cannot race.
	DebitBalance(userID uint, amount float64) error

	// BumpFraudScore raises the user's fraud score by delta, capped at 100.
	BumpFraudScore(userID uint, delta float64) error

	// UpsertContactLedger creates or increments the (user, counterparty)
	// relationship record.
	UpsertContactLedger(userID uint, contactUpiID, contactName string, amount float64, when time.Time) error
}

// TransactionRepository adds the read-side queries: history listings and the
// aggregate reads the fraud signal collector depends on.
type TransactionRepository interface {
	TransactionStore

	ListTransactions(senderID uint, status string, limit, offset int) ([]models.Transaction, int64, error)

	// Signal reads. These are plain snapshot reads; callers tolerate
	// staleness and absorb errors.
	CountRecentAttempts(senderID uint, since time.Time) (int64, error)
	CompletedAmountStats(senderID uint) (avg, max float64, count int64, err error)
	CountCompletedToRecipient(senderID uint, recipientUpiID string) (int64, error)
	SumActiveAmountSince(senderID uint, since time.Time) (float64, error)

	RecentFlagged(senderID uint, limit int) ([]models.Transaction, error)
	CompletedSummary(senderID uint, since time.Time) (count int64, total float64, err error)
}
