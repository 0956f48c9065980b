package repositories

import (
	"errors"

	"sahay/internal/models"

	"gorm.io/gorm"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrContactExists   = errors.New("contact already in trusted list")
)

// TrustedContactRepository handles the trusted contact list. The transfer
// counters on these records are written by the transaction repository's
// ledger upsert, not here.
type TrustedContactRepository interface {
	Create(contact *models.TrustedContact) error
	GetByPair(userID uint, contactUpiID string) (*models.TrustedContact, error)
	ListByUser(userID uint) ([]models.TrustedContact, error)
	Update(contact *models.TrustedContact) error
	Delete(userID uint, contactUpiID string) error
}

type trustedContactRepository struct {
	db *gorm.DB
}

func NewTrustedContactRepository(db *gorm.DB) TrustedContactRepository {
	return &trustedContactRepository{db: db}
}

func (r *trustedContactRepository) Create(contact *models.TrustedContact) error {
	var existing models.TrustedContact
	err := r.db.Where("user_id = ? AND contact_upi_id = ?", contact.UserID, contact.ContactUpiID).
		First(&existing).Error
	if err == nil {
		return ErrContactExists
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.Create(contact).Error
}

func (r *trustedContactRepository) GetByPair(userID uint, contactUpiID string) (*models.TrustedContact, error) {
	var contact models.TrustedContact
	err := r.db.Where("user_id = ? AND contact_upi_id = ?", userID, contactUpiID).
		First(&contact).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

func (r *trustedContactRepository) ListByUser(userID uint) ([]models.TrustedContact, error) {
	var contacts []models.TrustedContact
	err := r.db.Where("user_id = ?", userID).
		Order("transaction_count DESC").
		Find(&contacts).Error
	return contacts, err
}

func (r *trustedContactRepository) Update(contact *models.TrustedContact) error {
	return r.db.Save(contact).Error
}

func (r *trustedContactRepository) Delete(userID uint, contactUpiID string) error {
	result := r.db.Where("user_id = ? AND contact_upi_id = ?", userID, contactUpiID).
		Delete(&models.TrustedContact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
