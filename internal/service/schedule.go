package service

import (
	"errors"
	"fmt"
	"time"

	"oncall-directory-backend/internal/cache"
	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/logger"
	"oncall-directory-backend/internal/repository"
	"oncall-directory-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService reconciles staged schedule edits against persisted
// assignments and serves schedule queries
type ScheduleService struct {
	repo      repository.AssignmentRepositoryInterface
	validator *validator.Validate
	cache     *cache.ResolutionCache
	log       *logger.Logger
}

// NewScheduleService creates a new schedule service
func NewScheduleService(repo repository.AssignmentRepositoryInterface, validator *validator.Validate, resolutionCache *cache.ResolutionCache) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		validator: validator,
		cache:     resolutionCache,
		log:       logger.New().WithField("component", "schedule"),
	}
}

// StagedEntryRequest is one client-staged assignment intent
type StagedEntryRequest struct {
	Date               string                 `json:"date" validate:"required"`
	Specialty          string                 `json:"specialty" validate:"required,max=100"`
	HealthcarePlan     *string                `json:"healthcare_plan,omitempty"`
	ProviderName       string                 `json:"provider_name" validate:"required,max=100"`
	SecondPhoneEnabled bool                   `json:"second_phone_enabled"`
	SecondPhonePref    models.SecondPhonePref `json:"second_phone_pref,omitempty"`
	Cover              bool                   `json:"cover"`
	CoveringProvider   *string                `json:"covering_provider,omitempty"`
}

// StagedDeletionRequest is one client-staged removal intent
type StagedDeletionRequest struct {
	Date           string  `json:"date" validate:"required"`
	Specialty      string  `json:"specialty" validate:"required,max=100"`
	HealthcarePlan *string `json:"healthcare_plan,omitempty"`
	ProviderName   string  `json:"provider_name" validate:"required,max=100"`
}

// ReconcileRequest is a batch of staged edits to converge with persisted state
type ReconcileRequest struct {
	Entries   []StagedEntryRequest    `json:"entries" validate:"dive"`
	Deletions []StagedDeletionRequest `json:"deletions" validate:"dive"`
}

// OperationResult reports the outcome of one planned operation
type OperationResult struct {
	Kind           string  `json:"kind"`
	Date           string  `json:"date"`
	Specialty      string  `json:"specialty"`
	HealthcarePlan *string `json:"healthcare_plan,omitempty"`
	ProviderName   string  `json:"provider_name"`
	Conflict       bool    `json:"conflict,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// ReconcileResult splits a batch into applied and failed operations so the
// caller can re-stage only the failed subset
type ReconcileResult struct {
	Applied []OperationResult `json:"applied"`
	Failed  []OperationResult `json:"failed"`
}

// AssignmentResponse represents one persisted schedule assignment
type AssignmentResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Date               string                 `json:"date"`
	Specialty          string                 `json:"specialty"`
	HealthcarePlan     *string                `json:"healthcare_plan,omitempty"`
	ProviderName       string                 `json:"provider_name"`
	SecondPhoneEnabled bool                   `json:"second_phone_enabled"`
	SecondPhonePref    models.SecondPhonePref `json:"second_phone_pref"`
	Cover              bool                   `json:"cover"`
	CoveringProvider   *string                `json:"covering_provider,omitempty"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

// List retrieves assignments for an inclusive date range. A nil plan
// matches only rows with no plan, never empty-string or other plans.
func (s *ScheduleService) List(from, to time.Time, specialty string, plan *string) ([]AssignmentResponse, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	assignments, err := s.repo.ListByRange(from, to, specialty, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// Reconcile turns a batch of staged edits into the minimal write-set and
// applies it sequentially, deletions before upserts. No transaction wraps
// the batch: on failure the result reports the applied/failed split and the
// returned error is a PartialBatchError.
func (s *ScheduleService) Reconcile(req *ReconcileRequest) (*ReconcileResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Entries) == 0 && len(req.Deletions) == 0 {
		// an empty batch reconciles to an empty write-set
		return &ReconcileResult{}, nil
	}

	staged, err := s.convertEntries(req.Entries)
	if err != nil {
		return nil, err
	}
	deletions, err := s.convertDeletions(req.Deletions)
	if err != nil {
		return nil, err
	}

	persisted, err := s.repo.GetByKeys(scheduling.TouchedKeys(staged, deletions))
	if err != nil {
		return nil, fmt.Errorf("failed to read persisted assignments: %w", err)
	}

	plan := scheduling.BuildPlan(staged, deletions, persisted)
	result := s.applyPlan(&plan)

	s.invalidateTouchedDays(staged, deletions)

	if len(result.Failed) > 0 {
		return result, &apperrors.PartialBatchError{
			Applied: len(result.Applied),
			Failed:  len(result.Failed),
		}
	}
	return result, nil
}

// applyPlan executes the plan's operations: every deletion (explicit and
// rename-implied) before any upsert, so the unique key index is never
// transiently violated. Each operation is awaited on its own; a failure
// does not roll back earlier operations.
func (s *ScheduleService) applyPlan(plan *scheduling.Plan) *ReconcileResult {
	result := &ReconcileResult{}
	opErrs := make(map[int]error, len(plan.Operations))

	for i, op := range plan.Operations {
		var del *scheduling.StagedDeletion
		switch op.Kind {
		case scheduling.OpDelete:
			del = op.Deletion
		case scheduling.OpRename:
			del = &scheduling.StagedDeletion{
				Date:           op.Entry.Date,
				Specialty:      op.Entry.Specialty,
				HealthcarePlan: op.Entry.HealthcarePlan,
				ProviderName:   op.OldProvider,
			}
		default:
			continue
		}
		if err := s.repo.Delete(del.Date, del.Specialty, del.ProviderName, del.HealthcarePlan); err != nil {
			opErrs[i] = fmt.Errorf("delete failed: %w", err)
		}
	}

	for i, op := range plan.Operations {
		if op.Entry == nil || opErrs[i] != nil {
			continue
		}
		if err := s.repo.Upsert(stagedToModel(op.Entry)); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				key := op.Entry.Key()
				opErrs[i] = apperrors.NewConflictError(
					fmt.Sprintf("(%s, %s, %s)", key.Date, key.Specialty, key.Plan))
			} else {
				opErrs[i] = fmt.Errorf("upsert failed: %w", err)
			}
		}
	}

	for i, op := range plan.Operations {
		res := operationResult(&op)
		if err := opErrs[i]; err != nil {
			res.Error = err.Error()
			res.Conflict = apperrors.IsConflict(err)
			result.Failed = append(result.Failed, res)
			s.log.WithError(err).WithFields(map[string]interface{}{
				"kind": res.Kind, "date": res.Date, "specialty": res.Specialty,
			}).Warn("schedule operation failed")
		} else {
			result.Applied = append(result.Applied, res)
		}
	}
	return result
}

// Delete removes the assignment identified by (date, specialty, provider, plan)
func (s *ScheduleService) Delete(date time.Time, specialty, providerName string, plan *string) error {
	if err := s.repo.Delete(date, specialty, providerName, plan); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	s.cache.InvalidateDay(scheduling.FormatDay(date))
	return nil
}

func (s *ScheduleService) convertEntries(reqs []StagedEntryRequest) ([]scheduling.StagedEntry, error) {
	staged := make([]scheduling.StagedEntry, 0, len(reqs))
	for i := range reqs {
		r := reqs[i]
		day, err := scheduling.ParseDay(r.Date)
		if err != nil {
			return nil, apperrors.ErrInvalidDateFormat
		}
		if err := validatePlanField(r.Specialty, r.HealthcarePlan); err != nil {
			return nil, err
		}
		pref := r.SecondPhonePref
		if pref == "" {
			pref = models.SecondPhonePrefAuto
		}
		if !pref.IsValid() {
			return nil, apperrors.ErrInvalidSecondPhonePref
		}
		staged = append(staged, scheduling.StagedEntry{
			Date:               day,
			Specialty:          r.Specialty,
			HealthcarePlan:     r.HealthcarePlan,
			ProviderName:       r.ProviderName,
			SecondPhoneEnabled: r.SecondPhoneEnabled,
			SecondPhonePref:    pref,
			Cover:              r.Cover,
			CoveringProvider:   r.CoveringProvider,
		})
	}
	return staged, nil
}

func (s *ScheduleService) convertDeletions(reqs []StagedDeletionRequest) ([]scheduling.StagedDeletion, error) {
	deletions := make([]scheduling.StagedDeletion, 0, len(reqs))
	for i := range reqs {
		r := reqs[i]
		day, err := scheduling.ParseDay(r.Date)
		if err != nil {
			return nil, apperrors.ErrInvalidDateFormat
		}
		if r.HealthcarePlan != nil && *r.HealthcarePlan == "" {
			return nil, apperrors.NewValidationError("healthcare_plan", "must be omitted or non-empty")
		}
		deletions = append(deletions, scheduling.StagedDeletion{
			Date:           day,
			Specialty:      r.Specialty,
			HealthcarePlan: r.HealthcarePlan,
			ProviderName:   r.ProviderName,
		})
	}
	return deletions, nil
}

// validatePlanField enforces the plan-keyed-specialty rule on staged
// entries and keeps "no plan" distinct from an empty-string plan.
func validatePlanField(specialty string, plan *string) error {
	if plan != nil && *plan == "" {
		return apperrors.NewValidationError("healthcare_plan", "must be omitted or non-empty")
	}
	if models.SpecialtyRequiresPlan(specialty) && plan == nil {
		return apperrors.NewPlanRequiredError(specialty)
	}
	return nil
}

func (s *ScheduleService) invalidateTouchedDays(staged []scheduling.StagedEntry, deletions []scheduling.StagedDeletion) {
	days := make(map[string]bool)
	for i := range staged {
		days[scheduling.FormatDay(staged[i].Date)] = true
	}
	for i := range deletions {
		days[scheduling.FormatDay(deletions[i].Date)] = true
	}
	for day := range days {
		s.cache.InvalidateDay(day)
	}
}

func stagedToModel(e *scheduling.StagedEntry) *models.ScheduleAssignment {
	return &models.ScheduleAssignment{
		Date:               e.Date,
		Specialty:          e.Specialty,
		HealthcarePlan:     e.HealthcarePlan,
		ProviderName:       e.ProviderName,
		SecondPhoneEnabled: e.SecondPhoneEnabled,
		SecondPhonePref:    e.SecondPhonePref,
		Cover:              e.Cover,
		CoveringProvider:   e.CoveringProvider,
	}
}

func operationResult(op *scheduling.Operation) OperationResult {
	if op.Kind == scheduling.OpDelete {
		return OperationResult{
			Kind:           string(op.Kind),
			Date:           scheduling.FormatDay(op.Deletion.Date),
			Specialty:      op.Deletion.Specialty,
			HealthcarePlan: op.Deletion.HealthcarePlan,
			ProviderName:   op.Deletion.ProviderName,
		}
	}
	return OperationResult{
		Kind:           string(op.Kind),
		Date:           scheduling.FormatDay(op.Entry.Date),
		Specialty:      op.Entry.Specialty,
		HealthcarePlan: op.Entry.HealthcarePlan,
		ProviderName:   op.Entry.ProviderName,
	}
}

func toAssignmentResponse(a *models.ScheduleAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:                 a.ID,
		Date:               scheduling.FormatDay(a.Date),
		Specialty:          a.Specialty,
		HealthcarePlan:     a.HealthcarePlan,
		ProviderName:       a.ProviderName,
		SecondPhoneEnabled: a.SecondPhoneEnabled,
		SecondPhonePref:    a.SecondPhonePref,
		Cover:              a.Cover,
		CoveringProvider:   a.CoveringProvider,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}
}
