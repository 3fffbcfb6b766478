package service

import (
	"time"

	"oncall-directory-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OnCallServiceInterface defines the interface for on-call resolution
type OnCallServiceInterface interface {
	Resolve(specialty string, plan *string, day time.Time) (*ResolvedAssignmentResponse, error)
	ResolveActive(specialty string, plan *string, at time.Time) (*ResolvedAssignmentResponse, error)
}

// ScheduleServiceInterface defines the interface for schedule reconciliation and queries
type ScheduleServiceInterface interface {
	List(from, to time.Time, specialty string, plan *string) ([]AssignmentResponse, error)
	Reconcile(req *ReconcileRequest) (*ReconcileResult, error)
	Delete(date time.Time, specialty, providerName string, plan *string) error
	ExportMonth(month time.Time, specialty string) ([]byte, string, error)
}

// DirectoryServiceInterface defines the interface for directory operations
type DirectoryServiceInterface interface {
	Lookup(providerNames []string) ([]DirectoryEntryResponse, error)
	List(page, pageSize int) (*DirectoryListResponse, error)
	Create(req *CreateDirectoryEntryRequest) (*DirectoryEntryResponse, error)
	Update(id uuid.UUID, req *UpdateDirectoryEntryRequest) (*DirectoryEntryResponse, error)
	Delete(id uuid.UUID) error
}

// SpecialtyContactServiceInterface defines the interface for specialty fallback contacts
type SpecialtyContactServiceInterface interface {
	GetContacts(specialty string) ([]SpecialtyContactResponse, error)
	PutContact(specialty string, role models.ContactRole, req *PutSpecialtyContactRequest) (*SpecialtyContactResponse, error)
	DeleteContact(specialty string, role models.ContactRole) error
}
