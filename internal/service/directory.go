package service

import (
	"errors"
	"fmt"
	"time"

	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectoryService handles business logic for the provider directory
type DirectoryService struct {
	repo      repository.DirectoryRepositoryInterface
	validator *validator.Validate
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(repo repository.DirectoryRepositoryInterface, validator *validator.Validate) *DirectoryService {
	return &DirectoryService{repo: repo, validator: validator}
}

// CreateDirectoryEntryRequest represents the request to create a directory entry
type CreateDirectoryEntryRequest struct {
	ProviderName string `json:"provider_name" validate:"required,max=100"`
	PhoneNumber  string `json:"phone_number" validate:"max=40"`
	Specialty    string `json:"specialty" validate:"max=100"`
}

// UpdateDirectoryEntryRequest represents the request to update a directory entry
type UpdateDirectoryEntryRequest struct {
	ProviderName *string `json:"provider_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber  *string `json:"phone_number,omitempty" validate:"omitempty,max=40"`
	Specialty    *string `json:"specialty,omitempty" validate:"omitempty,max=100"`
}

// DirectoryEntryResponse represents a directory entry in API responses
type DirectoryEntryResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderName string    `json:"provider_name"`
	PhoneNumber  string    `json:"phone_number"`
	Specialty    string    `json:"specialty,omitempty"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// DirectoryListResponse represents a paginated list of directory entries
type DirectoryListResponse struct {
	Entries  []DirectoryEntryResponse `json:"entries"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// Lookup retrieves the directory rows for a batch of provider names.
// Names with no row are absent from the result, not errors.
func (s *DirectoryService) Lookup(providerNames []string) ([]DirectoryEntryResponse, error) {
	entries, err := s.repo.GetByNames(providerNames)
	if err != nil {
		return nil, fmt.Errorf("failed to look up directory entries: %w", err)
	}
	responses := make([]DirectoryEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *toDirectoryResponse(&entries[i])
	}
	return responses, nil
}

// List retrieves directory entries with pagination
func (s *DirectoryService) List(page, pageSize int) (*DirectoryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory entries: %w", err)
	}

	responses := make([]DirectoryEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *toDirectoryResponse(&entries[i])
	}
	return &DirectoryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Create creates a new directory entry
func (s *DirectoryService) Create(req *CreateDirectoryEntryRequest) (*DirectoryEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry := &models.DirectoryEntry{
		ProviderName: req.ProviderName,
		PhoneNumber:  req.PhoneNumber,
		Specialty:    req.Specialty,
	}
	if err := s.repo.Create(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDirectoryEntryExists
		}
		return nil, fmt.Errorf("failed to create directory entry: %w", err)
	}
	return toDirectoryResponse(entry), nil
}

// Update updates a directory entry
func (s *DirectoryService) Update(id uuid.UUID, req *UpdateDirectoryEntryRequest) (*DirectoryEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDirectoryEntryNotFound
		}
		return nil, fmt.Errorf("failed to get directory entry: %w", err)
	}

	if req.ProviderName != nil {
		entry.ProviderName = *req.ProviderName
	}
	if req.PhoneNumber != nil {
		entry.PhoneNumber = *req.PhoneNumber
	}
	if req.Specialty != nil {
		entry.Specialty = *req.Specialty
	}

	if err := s.repo.Update(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDirectoryEntryExists
		}
		return nil, fmt.Errorf("failed to update directory entry: %w", err)
	}
	return toDirectoryResponse(entry), nil
}

// Delete deletes a directory entry
func (s *DirectoryService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDirectoryEntryNotFound
		}
		return fmt.Errorf("failed to get directory entry: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete directory entry: %w", err)
	}
	return nil
}

func toDirectoryResponse(e *models.DirectoryEntry) *DirectoryEntryResponse {
	return &DirectoryEntryResponse{
		ID:           e.ID,
		ProviderName: e.ProviderName,
		PhoneNumber:  e.PhoneNumber,
		Specialty:    e.Specialty,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}
