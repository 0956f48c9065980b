package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact relationships
const (
	RelationshipFamily   = "family"
	RelationshipFriend   = "friend"
	RelationshipBusiness = "business"
	RelationshipService  = "service"
	RelationshipOther    = "other"
)

// TrustedContact is the per-(user, counterparty) relationship ledger.
// The transfer counters are updated only inside the completion unit of the
// transfer service, at most once per completed transfer.
type TrustedContact struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex:idx_user_contact;not null" json:"user_id"`
	ContactUpiID string `gorm:"uniqueIndex:idx_user_contact;not null" json:"contact_upi_id"`
	ContactName  string `gorm:"not null" json:"contact_name"`
	Nickname     string `json:"nickname,omitempty"`
	Relationship string `gorm:"default:'other'" json:"relationship"`

	TransactionCount       int        `gorm:"default:0" json:"transaction_count"`
	TotalAmountTransferred float64    `gorm:"default:0" json:"total_amount_transferred"`
	LastTransactionAt      *time.Time `json:"last_transaction_at,omitempty"`
}
