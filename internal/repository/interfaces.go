package repository

import (
	"time"

	"oncall-directory-backend/internal/database/models"
	"oncall-directory-backend/internal/scheduling"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AssignmentRepositoryInterface defines the interface for schedule assignment repository operations
type AssignmentRepositoryInterface interface {
	GetByKey(date time.Time, specialty string, plan *string) (*models.ScheduleAssignment, error)
	GetByKeys(keys []scheduling.AssignmentKey) ([]models.ScheduleAssignment, error)
	ListByRange(from, to time.Time, specialty string, plan *string) ([]models.ScheduleAssignment, error)
	ListAllByRange(from, to time.Time, specialty string) ([]models.ScheduleAssignment, error)
	Upsert(assignment *models.ScheduleAssignment) error
	Delete(date time.Time, specialty, providerName string, plan *string) error
}

// DirectoryRepositoryInterface defines the interface for directory repository operations
type DirectoryRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.DirectoryEntry, error)
	GetByName(providerName string) (*models.DirectoryEntry, error)
	GetByNames(providerNames []string) ([]models.DirectoryEntry, error)
	GetAll(limit, offset int) ([]models.DirectoryEntry, int64, error)
	Create(entry *models.DirectoryEntry) error
	Update(entry *models.DirectoryEntry) error
	Delete(id uuid.UUID) error
}

// SpecialtyContactRepositoryInterface defines the interface for specialty contact repository operations
type SpecialtyContactRepositoryInterface interface {
	GetBySpecialty(specialty string) ([]models.SpecialtyContact, error)
	Upsert(contact *models.SpecialtyContact) error
	Delete(specialty string, role models.ContactRole) error
}
