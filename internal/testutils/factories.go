package testutils

import (
	"time"

	"oncall-directory-backend/internal/database/models"
	"oncall-directory-backend/internal/scheduling"

	"github.com/google/uuid"
)

// AssignmentFactory provides methods to create test ScheduleAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates a test ScheduleAssignment with default values
func (f *AssignmentFactory) Create() *models.ScheduleAssignment {
	return &models.ScheduleAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date:               scheduling.NormalizeDay(time.Now()),
		Specialty:          "Cardiology",
		HealthcarePlan:     nil,
		ProviderName:       "Dr. Alice Hart",
		SecondPhoneEnabled: false,
		SecondPhonePref:    models.SecondPhonePrefAuto,
		Cover:              false,
		CoveringProvider:   nil,
	}
}

// WithDate sets the calendar day for the assignment
func (f *AssignmentFactory) WithDate(date time.Time) *models.ScheduleAssignment {
	a := f.Create()
	a.Date = scheduling.NormalizeDay(date)
	return a
}

// WithSpecialty sets a custom specialty for the assignment
func (f *AssignmentFactory) WithSpecialty(specialty string) *models.ScheduleAssignment {
	a := f.Create()
	a.Specialty = specialty
	return a
}

// WithPlan sets the healthcare plan for the assignment
func (f *AssignmentFactory) WithPlan(plan string) *models.ScheduleAssignment {
	a := f.Create()
	a.Specialty = models.SpecialtyInternalMedicine
	a.HealthcarePlan = &plan
	return a
}

// WithProvider sets a custom provider for the assignment
func (f *AssignmentFactory) WithProvider(provider string) *models.ScheduleAssignment {
	a := f.Create()
	a.ProviderName = provider
	return a
}

// WithSecondPhone enables the second phone with the given preference
func (f *AssignmentFactory) WithSecondPhone(pref models.SecondPhonePref) *models.ScheduleAssignment {
	a := f.Create()
	a.SecondPhoneEnabled = true
	a.SecondPhonePref = pref
	return a
}

// WithCover marks the assignment as covered by another provider
func (f *AssignmentFactory) WithCover(coveringProvider string) *models.ScheduleAssignment {
	a := f.Create()
	a.Cover = true
	a.CoveringProvider = &coveringProvider
	return a
}

// DirectoryEntryFactory provides methods to create test DirectoryEntry data
type DirectoryEntryFactory struct{}

// NewDirectoryEntryFactory creates a new DirectoryEntryFactory
func NewDirectoryEntryFactory() *DirectoryEntryFactory {
	return &DirectoryEntryFactory{}
}

// Create creates a test DirectoryEntry with default values
func (f *DirectoryEntryFactory) Create() *models.DirectoryEntry {
	id := uuid.New()
	return &models.DirectoryEntry{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// unique suffix keeps concurrent factory calls from colliding
		ProviderName: "Dr. Test " + id.String()[:8],
		PhoneNumber:  "+1-555-0100",
		Specialty:    "Cardiology",
	}
}

// WithName sets a custom provider name for the entry
func (f *DirectoryEntryFactory) WithName(name string) *models.DirectoryEntry {
	e := f.Create()
	e.ProviderName = name
	return e
}

// WithPhone sets a custom phone number for the entry
func (f *DirectoryEntryFactory) WithPhone(phone string) *models.DirectoryEntry {
	e := f.Create()
	e.PhoneNumber = phone
	return e
}

// WithSpecialty sets a custom specialty for the entry
func (f *DirectoryEntryFactory) WithSpecialty(specialty string) *models.DirectoryEntry {
	e := f.Create()
	e.Specialty = specialty
	return e
}

// SpecialtyContactFactory provides methods to create test SpecialtyContact data
type SpecialtyContactFactory struct{}

// NewSpecialtyContactFactory creates a new SpecialtyContactFactory
func NewSpecialtyContactFactory() *SpecialtyContactFactory {
	return &SpecialtyContactFactory{}
}

// Create creates a test SpecialtyContact with default values
func (f *SpecialtyContactFactory) Create() *models.SpecialtyContact {
	return &models.SpecialtyContact{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Specialty:   "Cardiology",
		Role:        models.ContactRolePA,
		PhoneNumber: "+1-555-0200",
	}
}

// WithSpecialty sets a custom specialty for the contact
func (f *SpecialtyContactFactory) WithSpecialty(specialty string) *models.SpecialtyContact {
	c := f.Create()
	c.Specialty = specialty
	return c
}

// WithRole sets a custom role for the contact
func (f *SpecialtyContactFactory) WithRole(role models.ContactRole) *models.SpecialtyContact {
	c := f.Create()
	c.Role = role
	return c
}

// FactorySet provides access to all factories
type FactorySet struct {
	Assignment       *AssignmentFactory
	DirectoryEntry   *DirectoryEntryFactory
	SpecialtyContact *SpecialtyContactFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Assignment:       NewAssignmentFactory(),
		DirectoryEntry:   NewDirectoryEntryFactory(),
		SpecialtyContact: NewSpecialtyContactFactory(),
	}
}
