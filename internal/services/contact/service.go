// Package contact manages the user's trusted contact list. The transfer
// counters on contact records are maintained by the transfer settlement
// path; this service only handles the curated list itself.
package contact

import (
	"errors"

	"sahay/internal/models"
	"sahay/internal/repositories"
	"sahay/internal/validation"
)

var (
	ErrInvalidUpiID        = errors.New("invalid UPI address")
	ErrInvalidRelationship = errors.New("invalid relationship")
)

type AddRequest struct {
	ContactUpiID string `json:"contact_upi_id"`
	ContactName  string `json:"contact_name"`
	Nickname     string `json:"nickname"`
	Relationship string `json:"relationship"`
}

type UpdateRequest struct {
	Nickname     string `json:"nickname"`
	Relationship string `json:"relationship"`
}

type Service interface {
	Add(userID uint, req AddRequest) (*models.TrustedContact, error)
	List(userID uint) ([]models.TrustedContact, error)
	Update(userID uint, contactUpiID string, req UpdateRequest) (*models.TrustedContact, error)
	Remove(userID uint, contactUpiID string) error
}

type service struct {
	repo repositories.TrustedContactRepository
}

func NewService(repo repositories.TrustedContactRepository) Service {
	if repo == nil {
		panic("trusted contact repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Add(userID uint, req AddRequest) (*models.TrustedContact, error) {
	if !validation.IsValidUpiID(req.ContactUpiID) {
		return nil, ErrInvalidUpiID
	}
	relationship := req.Relationship
	if relationship == "" {
		relationship = models.RelationshipOther
	}
	if !validRelationship(relationship) {
		return nil, ErrInvalidRelationship
	}

	name := req.ContactName
	if name == "" {
		name = req.ContactUpiID
	}

	contact := &models.TrustedContact{
		UserID:       userID,
		ContactUpiID: req.ContactUpiID,
		ContactName:  name,
		Nickname:     req.Nickname,
		Relationship: relationship,
	}
	if err := s.repo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *service) List(userID uint) ([]models.TrustedContact, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Update(userID uint, contactUpiID string, req UpdateRequest) (*models.TrustedContact, error) {
	contact, err := s.repo.GetByPair(userID, contactUpiID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != "" {
		contact.Nickname = req.Nickname
	}
	if req.Relationship != "" {
		if !validRelationship(req.Relationship) {
			return nil, ErrInvalidRelationship
		}
		contact.Relationship = req.Relationship
	}

	if err := s.repo.Update(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *service) Remove(userID uint, contactUpiID string) error {
	return s.repo.Delete(userID, contactUpiID)
}

func validRelationship(r string) bool {
	switch r {
	case models.RelationshipFamily, models.RelationshipFriend,
		models.RelationshipBusiness, models.RelationshipService,
		models.RelationshipOther:
		return true
	}
	return false
}
