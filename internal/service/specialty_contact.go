package service

import (
	"fmt"
	"time"

	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// SpecialtyContactService handles business logic for specialty fallback contacts
type SpecialtyContactService struct {
	repo      repository.SpecialtyContactRepositoryInterface
	validator *validator.Validate
}

// NewSpecialtyContactService creates a new specialty contact service
func NewSpecialtyContactService(repo repository.SpecialtyContactRepositoryInterface, validator *validator.Validate) *SpecialtyContactService {
	return &SpecialtyContactService{repo: repo, validator: validator}
}

// PutSpecialtyContactRequest represents the request to set a fallback contact phone
type PutSpecialtyContactRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,max=40"`
}

// SpecialtyContactResponse represents a specialty fallback contact
type SpecialtyContactResponse struct {
	Specialty   string             `json:"specialty"`
	Role        models.ContactRole `json:"role"`
	Label       string             `json:"label"`
	PhoneNumber string             `json:"phone_number"`
	UpdatedAt   string             `json:"updated_at"`
}

// GetContacts retrieves all fallback contacts for a specialty
func (s *SpecialtyContactService) GetContacts(specialty string) ([]SpecialtyContactResponse, error) {
	contacts, err := s.repo.GetBySpecialty(specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to get specialty contacts: %w", err)
	}
	responses := make([]SpecialtyContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *toContactResponse(&contacts[i])
	}
	return responses, nil
}

// PutContact creates or overwrites the contact for a (specialty, role) pair
func (s *SpecialtyContactService) PutContact(specialty string, role models.ContactRole, req *PutSpecialtyContactRequest) (*SpecialtyContactResponse, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidContactRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact := &models.SpecialtyContact{
		Specialty:   specialty,
		Role:        role,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.repo.Upsert(contact); err != nil {
		return nil, fmt.Errorf("failed to upsert specialty contact: %w", err)
	}
	return toContactResponse(contact), nil
}

// DeleteContact removes the contact for a (specialty, role) pair
func (s *SpecialtyContactService) DeleteContact(specialty string, role models.ContactRole) error {
	if !role.IsValid() {
		return apperrors.ErrInvalidContactRole
	}
	if err := s.repo.Delete(specialty, role); err != nil {
		return fmt.Errorf("failed to delete specialty contact: %w", err)
	}
	return nil
}

func toContactResponse(c *models.SpecialtyContact) *SpecialtyContactResponse {
	return &SpecialtyContactResponse{
		Specialty:   c.Specialty,
		Role:        c.Role,
		Label:       c.Label(),
		PhoneNumber: c.PhoneNumber,
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}
