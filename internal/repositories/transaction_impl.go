package repositories

import (
	"time"

	"sahay/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Statuses that count toward velocity and daily-total signals. Cancelled and
// failed attempts never moved money and are excluded.
var activeStatuses = []string{
	models.TransactionStatusPending,
	models.TransactionStatusProcessing,
	models.TransactionStatusCompleted,
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository backed by GORM.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) InTransaction(fn func(tx TransactionStore) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&transactionRepository{db: tx})
	})
}

func (r *transactionRepository) CreateTransaction(txn *models.Transaction) error {
	return r.db.Create(txn).Error
}

func (r *transactionRepository) GetTransaction(senderID uint, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.Where("sender_id = ? AND transaction_id = ?", senderID, transactionID).
		First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) GetTransactionForUpdate(senderID uint, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("sender_id = ? AND transaction_id = ?", senderID, transactionID).
		First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) UpdateTransaction(txn *models.Transaction) error {
	return r.db.Save(txn).Error
}

func (r *transactionRepository) MarkTransactionFailed(transactionID, kind, message string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("transaction_id = ?", transactionID).
			First(&txn).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTransactionNotFound
			}
			return err
		}
		// Terminal records stay terminal; only the error log may grow.
		txn.ErrorLog = append(txn.ErrorLog, models.TransactionError{
			Kind:      kind,
			Message:   message,
			Timestamp: time.Now(),
		})
		if !txn.IsTerminal() {
			txn.Status = models.TransactionStatusFailed
			txn.Cancellable = false
		}
		return tx.Save(&txn).Error
	})
}

func (r *transactionRepository) DebitBalance(userID uint, amount float64) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (r *transactionRepository) BumpFraudScore(userID uint, delta float64) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("fraud_score", gorm.Expr("LEAST(fraud_score + ?, 100)", delta)).
		Error
}

func (r *transactionRepository) UpsertContactLedger(userID uint, contactUpiID, contactName string, amount float64, when time.Time) error {
	contact := &models.TrustedContact{
		UserID:                 userID,
		ContactUpiID:           contactUpiID,
		ContactName:            contactName,
		Relationship:           models.RelationshipOther,
		TransactionCount:       1,
		TotalAmountTransferred: amount,
		LastTransactionAt:      &when,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "contact_upi_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"transaction_count":        gorm.Expr("trusted_contacts.transaction_count + 1"),
			"total_amount_transferred": gorm.Expr("trusted_contacts.total_amount_transferred + ?", amount),
			"last_transaction_at":      when,
			"updated_at":               when,
		}),
	}).Create(contact).Error
}

func (r *transactionRepository) ListTransactions(senderID uint, status string, limit, offset int) ([]models.Transaction, int64, error) {
	query := r.db.Model(&models.Transaction{}).Where("sender_id = ?", senderID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txns []models.Transaction
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&txns).Error
	return txns, total, err
}

func (r *transactionRepository) CountRecentAttempts(senderID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("sender_id = ? AND created_at >= ? AND status IN ?", senderID, since, activeStatuses).
		Count(&count).Error
	return count, err
}

func (r *transactionRepository) CompletedAmountStats(senderID uint) (avg, max float64, count int64, err error) {
	row := r.db.Model(&models.Transaction{}).
		Where("sender_id = ? AND status = ?", senderID, models.TransactionStatusCompleted).
		Select("COALESCE(AVG(amount), 0), COALESCE(MAX(amount), 0), COUNT(*)").
		Row()
	err = row.Scan(&avg, &max, &count)
	return
}

func (r *transactionRepository) CountCompletedToRecipient(senderID uint, recipientUpiID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Transaction{}).
		Where("sender_id = ? AND recipient_upi_id = ? AND status = ?",
			senderID, recipientUpiID, models.TransactionStatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *transactionRepository) SumActiveAmountSince(senderID uint, since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Transaction{}).
		Where("sender_id = ? AND created_at >= ? AND status IN ?", senderID, since, activeStatuses).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&total)
	return total, err
}

func (r *transactionRepository) RecentFlagged(senderID uint, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.Where("sender_id = ? AND fraud_flagged = ?", senderID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) CompletedSummary(senderID uint, since time.Time) (count int64, total float64, err error) {
	row := r.db.Model(&models.Transaction{}).
		Where("sender_id = ? AND status = ? AND created_at >= ?",
			senderID, models.TransactionStatusCompleted, since).
		Select("COUNT(*), COALESCE(SUM(amount), 0)").
		Row()
	err = row.Scan(&count, &total)
	return
}
