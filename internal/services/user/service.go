package user

import (
	"errors"
	"fmt"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput  = errors.New("invalid registration input")
	ErrWeakPassword  = errors.New("password must be at least 8 characters and contain special characters")
	ErrInvalidStatus = errors.New("invalid account status")
)

type Service interface {
	Register(input *models.RegisterUserInput) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetSettings(userID uint) (*models.AccessibilitySettings, error)
	UpdateSettings(userID uint, settings models.AccessibilitySettings) (*models.AccessibilitySettings, error)
	UpdateAccountStatus(userID uint, status string) error
}

type service struct {
	repo repositories.UserRepository
}

func NewService(repo repositories.UserRepository) Service {
	if repo == nil {
		panic("user repository is required")
	}
	return &service{
		repo: repo,
	}
}

// Register creates a user account with demo funds and default limits. The
// UPI address is derived from the phone number, which is unique.
func (s *service) Register(input *models.RegisterUserInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, ErrInvalidInput
	}
	if !validation.IsValidPhone(input.Phone) {
		return nil, ErrInvalidInput
	}
	if len(input.Password) < 8 || !validation.HasSpecialChar(input.Password) {
		return nil, ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		Password:         string(hashedPassword),
		UpiID:            fmt.Sprintf("%s@sahay", input.Phone),
		Role:             "user",
		Balance:          models.DefaultDemoBalance,
		TransactionLimit: models.DefaultTransactionLimit,
		DailyLimit:       models.DefaultDailyLimit,
		AccountStatus:    models.AccountStatusActive,
		Accessibility:    models.DefaultAccessibilitySettings(),
		TokenVersion:     1,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

func (s *service) GetSettings(userID uint) (*models.AccessibilitySettings, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &user.Accessibility, nil
}

// UpdateSettings replaces the user's accessibility settings wholesale.
// Clients send the full settings object, not a patch.
func (s *service) UpdateSettings(userID uint, settings models.AccessibilitySettings) (*models.AccessibilitySettings, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if settings.FontSize == "" {
		settings.FontSize = "medium"
	}
	if settings.VoiceSpeed <= 0 {
		settings.VoiceSpeed = 1.0
	}
	if settings.ConfirmationDelaySeconds < 0 {
		settings.ConfirmationDelaySeconds = 0
	}

	user.Accessibility = settings
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return &user.Accessibility, nil
}

// UpdateAccountStatus is admin-only. Freezing an account blocks new
// transfers but leaves in-flight ones to finish their lifecycle.
func (s *service) UpdateAccountStatus(userID uint, status string) error {
	switch status {
	case models.AccountStatusActive, models.AccountStatusFrozen, models.AccountStatusSuspended:
	default:
		return ErrInvalidStatus
	}
	return s.repo.UpdateAccountStatus(userID, status)
}
