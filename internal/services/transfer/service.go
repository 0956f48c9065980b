// Package transfer implements the transaction lifecycle: creation with a
// risk verdict, multi-modality confirmation, settlement and time-boxed
// cancellation.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/repositories/cache"
	"sahay/internal/services/fraud"
	"sahay/internal/utils"
)

type service struct {
	repo      repositories.TransactionRepository
	directory Directory
	risk      RiskEvaluator
	cache     *cache.CacheService
	now       func() time.Time
}

// NewService creates a new transfer service. cache may be nil.
func NewService(repo repositories.TransactionRepository, directory Directory, risk RiskEvaluator, cacheSvc *cache.CacheService) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	if directory == nil {
		panic("recipient directory is required")
	}
	if risk == nil {
		panic("risk evaluator is required")
	}

	return &service{
		repo:      repo,
		directory: directory,
		risk:      risk,
		cache:     cacheSvc,
		now:       time.Now,
	}
}

// Send validates and persists a new transfer attempt. The risk verdict is
// computed synchronously and decides the initial status: flagged transfers
// take the review path but are never hard-blocked.
func (s *service) Send(ctx context.Context, sender *models.User, req SendRequest) (*models.Transaction, error) {
	if !sender.CanTransact() {
		return nil, ErrAccountNotActive
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Amount > sender.TransactionLimit {
		return nil, ErrLimitExceeded
	}
	if req.Amount > sender.Balance {
		return nil, ErrInsufficientBalance
	}
	if req.RecipientUpiID == "" || req.RecipientUpiID == sender.UpiID {
		return nil, ErrInvalidRecipient
	}

	recipient, err := s.directory.GetByUpiID(req.RecipientUpiID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidRecipient
		}
		return nil, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	verdict := s.risk.Evaluate(ctx, sender, req.RecipientUpiID, req.Amount)

	status := models.TransactionStatusPending
	if verdict.Flagged {
		status = models.TransactionStatusFlagged
	}

	txn := &models.Transaction{
		TransactionID:  utils.GenerateTransactionID(),
		SenderID:       sender.ID,
		SenderUpiID:    sender.UpiID,
		RecipientUpiID: req.RecipientUpiID,
		RecipientName:  recipient.Name,
		Amount:         req.Amount,
		Description:    req.Description,
		Status:         status,
		Cancellable:    true,
		Fraud: models.FraudAnalysis{
			RiskScore:              verdict.RiskScore,
			Flagged:                verdict.Flagged,
			FlagReasons:            models.StringList(verdict.Reasons),
			IsNewRecipient:         verdict.IsNewRecipient,
			RecentTransactionCount: verdict.RecentTransactionCount,
			TimeWindowMinutes:      verdict.TimeWindowMinutes,
		},
		UsedVoiceNavigation: req.UsedVoiceNavigation,
		UsedScreenReader:    req.UsedScreenReader,
		ConfirmationMethod:  req.ConfirmationMethod,
	}

	err = s.repo.InTransaction(func(tx repositories.TransactionStore) error {
		if err := tx.CreateTransaction(txn); err != nil {
			return err
		}
		if verdict.Flagged {
			return tx.BumpFraudScore(sender.ID, fraud.FlaggedScorePenalty)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	if verdict.Flagged {
		s.invalidateSender(ctx, sender.ID)
	}
	return txn, nil
}

// Confirm records the satisfied confirmation modalities and settles the
// transfer. The status transitions, the balance debit and the counterparty
// ledger upsert are applied as one atomic unit: a crash or a concurrent
// reader can never observe a debit without a completed transfer or the
// reverse.
func (s *service) Confirm(ctx context.Context, senderID uint, transactionID string, req ConfirmRequest) (*models.Transaction, error) {
	var out *models.Transaction
	err := s.repo.InTransaction(func(tx repositories.TransactionStore) error {
		txn, err := tx.GetTransactionForUpdate(senderID, transactionID)
		if err != nil {
			return err
		}

		if err := transition(txn, models.TransactionStatusProcessing); err != nil {
			return err
		}

		now := s.now()
		txn.Confirmation = models.ConfirmationSteps{
			VoiceConfirmed:     req.VoiceConfirmed,
			VisualConfirmed:    req.VisualConfirmed,
			BiometricConfirmed: req.BiometricConfirmed,
			ConfirmedAt:        &now,
		}
		if err := tx.UpdateTransaction(txn); err != nil {
			return err
		}

		if err := tx.DebitBalance(txn.SenderID, txn.Amount); err != nil {
			return err
		}

		if err := transition(txn, models.TransactionStatusCompleted); err != nil {
			return err
		}
		txn.CompletedAt = &now
		txn.Cancellable = false
		if err := tx.UpdateTransaction(txn); err != nil {
			return err
		}

		if err := tx.UpsertContactLedger(txn.SenderID, txn.RecipientUpiID, txn.RecipientName, txn.Amount, now); err != nil {
			return err
		}

		out = txn
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrTransactionNotFound), errors.Is(err, ErrNotConfirmable):
			return nil, err
		case errors.Is(err, repositories.ErrInsufficientBalance):
			s.markFailed(transactionID, errKindInsufficientBalance, err.Error())
			return nil, ErrInsufficientBalance
		default:
			s.markFailed(transactionID, errKindSettlement, err.Error())
			return nil, ErrTransferFailed
		}
	}

	s.invalidateSender(ctx, senderID)
	return out, nil
}

// Cancel aborts an unconfirmed transfer within the cancellation window. No
// balance or ledger effect: nothing was debited before confirmation.
func (s *service) Cancel(ctx context.Context, senderID uint, transactionID string, reason string) (*models.Transaction, error) {
	var out *models.Transaction
	err := s.repo.InTransaction(func(tx repositories.TransactionStore) error {
		txn, err := tx.GetTransactionForUpdate(senderID, transactionID)
		if err != nil {
			return err
		}

		if !txn.Cancellable || !canTransition(txn.Status, models.TransactionStatusCancelled) {
			return ErrNotCancellable
		}

		now := s.now()
		if now.Sub(txn.CreatedAt) > CancellationWindow {
			// A failed cancel attempt leaves the record untouched.
			return ErrCancelWindowExpired
		}

		txn.Status = models.TransactionStatusCancelled
		txn.Cancellable = false
		txn.CancelledAt = &now
		if reason == "" {
			reason = defaultCancelReason
		}
		txn.CancellationReason = reason

		if err := tx.UpdateTransaction(txn); err != nil {
			return err
		}
		out = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) Get(_ context.Context, senderID uint, transactionID string) (*models.Transaction, error) {
	return s.repo.GetTransaction(senderID, transactionID)
}

func (s *service) List(_ context.Context, senderID uint, status string, limit, offset int) ([]models.Transaction, int64, error) {
	return s.repo.ListTransactions(senderID, status, limit, offset)
}

func (s *service) Stats(_ context.Context, sender *models.User) (*Summary, error) {
	total, totalAmount, err := s.repo.CompletedSummary(sender.ID, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer summary: %w", err)
	}

	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthly, monthlyAmount, err := s.repo.CompletedSummary(sender.ID, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}

	return &Summary{
		TotalTransfers:    total,
		TotalAmountSent:   totalAmount,
		MonthlyTransfers:  monthly,
		MonthlyAmountSent: monthlyAmount,
		Balance:           sender.Balance,
	}, nil
}

// markFailed forces the transfer to failed after the completion unit rolled
// back, so the settlement error is never silently lost.
func (s *service) markFailed(transactionID, kind, message string) {
	if err := s.repo.MarkTransactionFailed(transactionID, kind, message); err != nil {
		log.Printf("transfer %s: failed to record %s error: %v", transactionID, kind, err)
	}
}

func (s *service) invalidateSender(ctx context.Context, senderID uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateUser(ctx, senderID); err != nil {
		log.Printf("failed to invalidate cache for user %d: %v", senderID, err)
	}
}
