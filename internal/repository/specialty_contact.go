package repository

import (
	"oncall-directory-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpecialtyContactRepository handles database operations for specialty fallback contacts
type SpecialtyContactRepository struct {
	db *gorm.DB
}

// NewSpecialtyContactRepository creates a new specialty contact repository
func NewSpecialtyContactRepository(db *gorm.DB) *SpecialtyContactRepository {
	return &SpecialtyContactRepository{db: db}
}

// GetBySpecialty retrieves all fallback contacts for a specialty in one read
func (r *SpecialtyContactRepository) GetBySpecialty(specialty string) ([]models.SpecialtyContact, error) {
	var contacts []models.SpecialtyContact
	err := r.db.Where("specialty = ?", specialty).Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// Upsert writes a contact, overwriting the phone number when the
// (specialty, role) pair already exists
func (r *SpecialtyContactRepository) Upsert(contact *models.SpecialtyContact) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "specialty"}, {Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{"phone_number", "updated_at"}),
	}).Create(contact).Error
}

// Delete removes the contact for a (specialty, role) pair
func (r *SpecialtyContactRepository) Delete(specialty string, role models.ContactRole) error {
	return r.db.Delete(&models.SpecialtyContact{}, "specialty = ? AND role = ?", specialty, role).Error
}
