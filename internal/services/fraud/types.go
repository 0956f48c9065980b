package fraud

import (
	"context"
	"time"

	"sahay/internal/models"
)

// Signals is the historical fact bundle collected for one attempted
// transfer. A zero value means "no signal" and scores zero.
type Signals struct {
	RecentAttemptCount     int
	TimeWindowMinutes      int
	AverageCompletedAmount float64
	MaxCompletedAmount     float64
	CompletedCount         int64
	PriorToRecipient       int64
	AmountToday            float64
	FraudScore             float64
}

// Verdict is the scorer's output, persisted on the transaction at creation.
type Verdict struct {
	RiskScore              float64
	Flagged                bool
	Reasons                []string
	IsNewRecipient         bool
	RecentTransactionCount int
	TimeWindowMinutes      int
}

// Stats is the fraud summary exposed for display.
type Stats struct {
	FraudScore      float64              `json:"fraud_score"`
	RiskLevel       string               `json:"risk_level"`
	FlaggedCount    int                  `json:"flagged_count"`
	RecentFlagged   []models.Transaction `json:"recent_flagged"`
	Recommendations []string             `json:"recommendations"`
}

// SignalReader provides the historical reads used to score a transfer.
type SignalReader interface {
	CountRecentAttempts(senderID uint, since time.Time) (int64, error)
	CompletedAmountStats(senderID uint) (avg, max float64, count int64, err error)
	CountCompletedToRecipient(senderID uint, recipientUpiID string) (int64, error)
	SumActiveAmountSince(senderID uint, since time.Time) (float64, error)
	RecentFlagged(senderID uint, limit int) ([]models.Transaction, error)
}

// UserReader loads the sender record for the stats summary.
type UserReader interface {
	GetByID(id uint) (*models.User, error)
}

// Service evaluates transfer attempts and reports fraud statistics.
type Service interface {
	Evaluate(ctx context.Context, sender *models.User, recipientUpiID string, amount float64) Verdict
	GetStats(ctx context.Context, userID uint) (*Stats, error)
}
