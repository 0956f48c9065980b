package transfer

import (
	"time"

	"sahay/internal/models"
)

// CancellationWindow is the wall-clock budget after creation during which an
// unconfirmed transfer may be cancelled. It is evaluated when cancel is
// attempted, not by a timer.
const CancellationWindow = 30 * time.Second

const defaultCancelReason = "user cancelled"

// Error-log kinds
const (
	errKindSettlement          = "settlement"
	errKindInsufficientBalance = "insufficient_balance"
)

// allowedTransitions enumerates the full state machine. Any transition not
// listed here is rejected.
var allowedTransitions = map[string][]string{
	models.TransactionStatusPending: {
		models.TransactionStatusProcessing,
		models.TransactionStatusCancelled,
	},
	models.TransactionStatusFlagged: {
		models.TransactionStatusProcessing,
		models.TransactionStatusCancelled,
	},
	models.TransactionStatusProcessing: {
		models.TransactionStatusCompleted,
		models.TransactionStatusFailed,
	},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// transition moves the transaction to the target status, rejecting anything
// outside the transition table.
func transition(txn *models.Transaction, to string) error {
	if !canTransition(txn.Status, to) {
		return ErrNotConfirmable
	}
	txn.Status = to
	return nil
}
