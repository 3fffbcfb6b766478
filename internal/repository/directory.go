package repository

import (
	"oncall-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectoryRepository handles database operations for directory entries
type DirectoryRepository struct {
	db *gorm.DB
}

// NewDirectoryRepository creates a new directory repository
func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// GetByID retrieves a directory entry by ID
func (r *DirectoryRepository) GetByID(id uuid.UUID) (*models.DirectoryEntry, error) {
	var entry models.DirectoryEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByName retrieves a directory entry by provider name
func (r *DirectoryRepository) GetByName(providerName string) (*models.DirectoryEntry, error) {
	var entry models.DirectoryEntry
	err := r.db.First(&entry, "provider_name = ?", providerName).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByNames retrieves directory entries for a batch of provider names.
// Names without a row are simply absent from the result.
func (r *DirectoryRepository) GetByNames(providerNames []string) ([]models.DirectoryEntry, error) {
	if len(providerNames) == 0 {
		return nil, nil
	}
	var entries []models.DirectoryEntry
	err := r.db.Where("provider_name IN ?", providerNames).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAll retrieves directory entries with pagination
func (r *DirectoryRepository) GetAll(limit, offset int) ([]models.DirectoryEntry, int64, error) {
	var entries []models.DirectoryEntry
	var total int64

	if err := r.db.Model(&models.DirectoryEntry{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("provider_name").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Create creates a new directory entry
func (r *DirectoryRepository) Create(entry *models.DirectoryEntry) error {
	return r.db.Create(entry).Error
}

// Update updates a directory entry
func (r *DirectoryRepository) Update(entry *models.DirectoryEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a directory entry
func (r *DirectoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DirectoryEntry{}, "id = ?", id).Error
}
