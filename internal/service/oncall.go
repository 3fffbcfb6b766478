package service

import (
	"errors"
	"fmt"
	"time"

	"oncall-directory-backend/internal/cache"
	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/repository"
	"oncall-directory-backend/internal/scheduling"

	"gorm.io/gorm"
)

// OnCallService resolves the active provider and its full contact chain
// for a specialty, plan and calendar day
type OnCallService struct {
	assignments repository.AssignmentRepositoryInterface
	directory   repository.DirectoryRepositoryInterface
	contacts    repository.SpecialtyContactRepositoryInterface
	cache       *cache.ResolutionCache
}

// NewOnCallService creates a new on-call resolution service. The cache may
// be nil, which disables caching.
func NewOnCallService(
	assignments repository.AssignmentRepositoryInterface,
	directory repository.DirectoryRepositoryInterface,
	contacts repository.SpecialtyContactRepositoryInterface,
	resolutionCache *cache.ResolutionCache,
) *OnCallService {
	return &OnCallService{
		assignments: assignments,
		directory:   directory,
		contacts:    contacts,
		cache:       resolutionCache,
	}
}

// ResolvedAssignmentResponse is the fully joined read-side answer: the
// assignment plus primary phone, fallback second phone and cover contact
type ResolvedAssignmentResponse struct {
	Date               string                 `json:"date"`
	Specialty          string                 `json:"specialty"`
	HealthcarePlan     *string                `json:"healthcare_plan,omitempty"`
	ProviderName       string                 `json:"provider_name"`
	PhoneNumber        *string                `json:"phone_number,omitempty"`
	SecondPhoneEnabled bool                   `json:"second_phone_enabled"`
	SecondPhonePref    models.SecondPhonePref `json:"second_phone_pref,omitempty"`
	SecondPhone        *string                `json:"second_phone,omitempty"`
	SecondPhoneSource  *string                `json:"second_phone_source,omitempty"`
	Cover              bool                   `json:"cover"`
	CoverProviderName  *string                `json:"cover_provider_name,omitempty"`
	CoverPhone         *string                `json:"cover_phone,omitempty"`
}

// ResolveActive resolves the provider on call at a wall-clock instant,
// mapping the instant to its effective on-call day first.
func (s *OnCallService) ResolveActive(specialty string, plan *string, at time.Time) (*ResolvedAssignmentResponse, error) {
	return s.Resolve(specialty, plan, scheduling.EffectiveDay(at))
}

// Resolve produces the on-call answer for one (specialty, plan, day) key.
// Missing assignments and contacts come back as typed not-found errors;
// only transport failures propagate as hard errors.
func (s *OnCallService) Resolve(specialty string, plan *string, day time.Time) (*ResolvedAssignmentResponse, error) {
	if models.SpecialtyRequiresPlan(specialty) && plan == nil {
		return nil, apperrors.NewPlanRequiredError(specialty)
	}

	cacheKey := cache.Key(specialty, plan, scheduling.FormatDay(day))
	var cached ResolvedAssignmentResponse
	if s.cache.Get(cacheKey, &cached) {
		return &cached, nil
	}

	assignment, err := s.assignments.GetByKey(day, specialty, plan)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	response := &ResolvedAssignmentResponse{
		Date:               scheduling.FormatDay(assignment.Date),
		Specialty:          assignment.Specialty,
		HealthcarePlan:     assignment.HealthcarePlan,
		ProviderName:       assignment.ProviderName,
		SecondPhoneEnabled: assignment.SecondPhoneEnabled,
		SecondPhonePref:    assignment.SecondPhonePref,
		Cover:              assignment.Cover,
	}

	// Primary phone: an absent directory row is not an error, just no phone
	entry, err := s.directory.GetByName(assignment.ProviderName)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up provider phone: %w", err)
	}
	if entry != nil && entry.PhoneNumber != "" {
		response.PhoneNumber = &entry.PhoneNumber
	}

	if assignment.SecondPhoneEnabled {
		second, err := s.resolveSecondPhone(assignment.SecondPhonePref, assignment.Specialty)
		if err != nil {
			return nil, err
		}
		if second != nil {
			response.SecondPhone = &second.Phone
			response.SecondPhoneSource = &second.Source
		}
	}

	if assignment.Cover && assignment.CoveringProvider != nil {
		coverName, coverPhone, err := s.resolveCover(*assignment.CoveringProvider)
		if err != nil {
			return nil, err
		}
		response.CoverProviderName = &coverName
		response.CoverPhone = coverPhone
	}

	s.cache.Set(cacheKey, response)
	return response, nil
}

// secondPhoneResult pairs a fallback phone with the label of the contact
// it came from
type secondPhoneResult struct {
	Phone  string
	Source string
}

// rolesForPref returns the candidate roles in resolution order. Under
// "auto" the PA contact takes priority over the residency line.
func rolesForPref(pref models.SecondPhonePref) []models.ContactRole {
	switch pref {
	case models.SecondPhonePrefPA:
		return []models.ContactRole{models.ContactRolePA}
	case models.SecondPhonePrefResidency:
		return []models.ContactRole{models.ContactRoleResidency}
	default:
		return []models.ContactRole{models.ContactRolePA, models.ContactRoleResidency}
	}
}

// resolveSecondPhone walks the specialty's fallback contacts in preference
// order and returns the first with a phone on file, or nil when none
// qualifies ("no such contact registered" is a renderable outcome).
func (s *OnCallService) resolveSecondPhone(pref models.SecondPhonePref, specialty string) (*secondPhoneResult, error) {
	contacts, err := s.contacts.GetBySpecialty(specialty)
	if err != nil {
		return nil, fmt.Errorf("failed to look up specialty contacts: %w", err)
	}

	byRole := make(map[models.ContactRole]models.SpecialtyContact, len(contacts))
	for _, c := range contacts {
		byRole[c.Role] = c
	}

	for _, role := range rolesForPref(pref) {
		c, ok := byRole[role]
		if !ok || c.PhoneNumber == "" {
			continue
		}
		return &secondPhoneResult{Phone: c.PhoneNumber, Source: c.Label()}, nil
	}
	return nil, nil
}

// resolveCover looks up the covering provider's phone. A provider with no
// directory row or no phone still resolves: callers render
// "Dr. X (no phone on file)".
func (s *OnCallService) resolveCover(coveringProvider string) (string, *string, error) {
	entry, err := s.directory.GetByName(coveringProvider)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return coveringProvider, nil, nil
		}
		return "", nil, fmt.Errorf("failed to look up covering provider: %w", err)
	}
	if entry.PhoneNumber == "" {
		return coveringProvider, nil, nil
	}
	phone := entry.PhoneNumber
	return coveringProvider, &phone, nil
}
