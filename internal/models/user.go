package models

import (
	"time"

	"gorm.io/gorm"
)

// Account statuses
const (
	AccountStatusActive    = "active"
	AccountStatusFrozen    = "frozen"
	AccountStatusSuspended = "suspended"
)

// Default limits for new accounts, in rupees.
const (
	DefaultDemoBalance      = 10000.0
	DefaultTransactionLimit = 10000.0
	DefaultDailyLimit       = 50000.0
)

// AccessibilitySettings holds a user's accessibility preferences,
// persisted as a single jsonb column.
type AccessibilitySettings struct {
	EnableVoiceNavigation    bool    `json:"enable_voice_navigation"`
	EnableScreenReader       bool    `json:"enable_screen_reader"`
	HighContrastMode         bool    `json:"high_contrast_mode"`
	FontSize                 string  `json:"font_size"`
	VoiceSpeed               float64 `json:"voice_speed"`
	HapticFeedback           bool    `json:"haptic_feedback"`
	ConfirmationDelaySeconds int     `json:"confirmation_delay_seconds"`
	EnableBiometric          bool    `json:"enable_biometric"`
}

// DefaultAccessibilitySettings returns the settings applied at registration.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{
		FontSize:                 "medium",
		VoiceSpeed:               1.0,
		HapticFeedback:           true,
		ConfirmationDelaySeconds: 5,
	}
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Phone    string `gorm:"uniqueIndex;not null"`
	UpiID    string `gorm:"uniqueIndex;not null"`
	Role     string `gorm:"default:'user'"`

	Balance          float64 `gorm:"default:10000"`
	TransactionLimit float64 `gorm:"default:10000"`
	DailyLimit       float64 `gorm:"default:50000"`

	// FraudScore is a persistent 0-100 value, bumped when a transfer is
	// flagged. It never decreases automatically.
	FraudScore    float64 `gorm:"default:0"`
	AccountStatus string  `gorm:"default:'active'"`

	Accessibility AccessibilitySettings `gorm:"type:jsonb"`

	TokenVersion int `gorm:"default:1"`
	LastLoginAt  time.Time
}

// CanTransact reports whether the account may initiate transfers.
func (u *User) CanTransact() bool {
	return u.AccountStatus == AccountStatusActive
}

type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
