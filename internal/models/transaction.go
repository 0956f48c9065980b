package models

import (
	"time"
)

// Transaction statuses
const (
	TransactionStatusPending    = "pending"
	TransactionStatusFlagged    = "flagged"
	TransactionStatusProcessing = "processing"
	TransactionStatusCompleted  = "completed"
	TransactionStatusCancelled  = "cancelled"
	TransactionStatusFailed     = "failed"
)

// FraudAnalysis is the risk verdict attached to a transfer at creation.
type FraudAnalysis struct {
	RiskScore              float64    `json:"risk_score"`
	Flagged                bool       `json:"flagged"`
	FlagReasons            StringList `gorm:"type:jsonb" json:"flag_reasons"`
	IsNewRecipient         bool       `json:"is_new_recipient"`
	RecentTransactionCount int        `json:"recent_transaction_count"`
	TimeWindowMinutes      int        `json:"time_window_minutes"`
}

// ConfirmationSteps records which confirmation modalities were satisfied.
type ConfirmationSteps struct {
	VoiceConfirmed     bool       `json:"voice_confirmed"`
	VisualConfirmed    bool       `json:"visual_confirmed"`
	BiometricConfirmed bool       `json:"biometric_confirmed"`
	ConfirmedAt        *time.Time `json:"confirmed_at"`
}

// TransactionError is one entry in a transfer's error log.
type TransactionError struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Transaction is one transfer attempt. The transfer service is the only
// writer of Status and of the sender's balance; once a transaction reaches
// a terminal status it is immutable except for error-log appends.
type Transaction struct {
	ID            uint   `gorm:"primarykey" json:"-"`
	TransactionID string `gorm:"uniqueIndex;not null" json:"transaction_id"`

	SenderID       uint   `gorm:"index;not null" json:"sender_id"`
	SenderUpiID    string `gorm:"not null" json:"sender_upi_id"`
	RecipientUpiID string `gorm:"index;not null" json:"recipient_upi_id"`
	RecipientName  string `json:"recipient_name"`

	Amount      float64 `gorm:"not null" json:"amount"`
	Description string  `json:"description"`

	Status string `gorm:"not null;default:'pending';index" json:"status"`

	Fraud        FraudAnalysis     `gorm:"embedded;embeddedPrefix:fraud_" json:"fraud_analysis"`
	Confirmation ConfirmationSteps `gorm:"embedded;embeddedPrefix:confirmation_" json:"confirmation"`

	Cancellable        bool       `gorm:"default:true" json:"cancellable"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`

	UsedVoiceNavigation bool   `json:"used_voice_navigation"`
	UsedScreenReader    bool   `json:"used_screen_reader"`
	ConfirmationMethod  string `json:"confirmation_method,omitempty"`

	ErrorLog ErrorList `gorm:"type:jsonb" json:"error_log,omitempty"`

	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"-"`
}

// IsTerminal reports whether the transaction has reached a final status.
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case TransactionStatusCompleted, TransactionStatusCancelled, TransactionStatusFailed:
		return true
	}
	return false
}
