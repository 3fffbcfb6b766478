package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Not-found outcomes are normal, renderable results, never alarms.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// PlanRequiredError is returned when a specialty is keyed by healthcare
// plan and none was given; resolution short-circuits without a query.
type PlanRequiredError struct {
	Specialty string
}

func (e *PlanRequiredError) Error() string {
	return fmt.Sprintf("specialty %q requires a healthcare plan", e.Specialty)
}

// Is enables errors.Is() comparison for PlanRequiredError
func (e *PlanRequiredError) Is(target error) bool {
	_, ok := target.(*PlanRequiredError)
	return ok
}

// ConflictError represents a write that violated the one-assignment-per-key
// uniqueness invariant, e.g. a concurrent external writer winning the race.
type ConflictError struct {
	Key string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("write conflict on schedule key %s", e.Key)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// PartialBatchError reports a reconciliation batch in which some
// operations succeeded and some failed. The full applied/failed split
// travels in the reconcile result so callers can re-stage only the
// failed subset.
type PartialBatchError struct {
	Applied int
	Failed  int
}

func (e *PartialBatchError) Error() string {
	return fmt.Sprintf("%d of %d schedule operations failed", e.Failed, e.Applied+e.Failed)
}

// Is enables errors.Is() comparison for PartialBatchError
func (e *PartialBatchError) Is(target error) bool {
	_, ok := target.(*PartialBatchError)
	return ok
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrAssignmentNotFound       = &NotFoundError{Entity: "schedule assignment"}
	ErrDirectoryEntryNotFound   = &NotFoundError{Entity: "directory entry"}
	ErrSpecialtyContactNotFound = &NotFoundError{Entity: "specialty contact"}
)

// Already Exists Errors
var (
	ErrDirectoryEntryExists = &AlreadyExistsError{Entity: "directory entry", Context: "with this provider name"}
)

// Business Logic Errors
var (
	ErrInvalidSecondPhonePref = errors.New("invalid second phone preference")
	ErrInvalidContactRole     = errors.New("invalid contact role")
	ErrInvalidDateFormat      = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrEmptyPlanFilter        = errors.New("healthcare plan filter must be omitted, not empty")
	ErrEmptyBatch             = errors.New("reconciliation batch contains no entries or deletions")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsPlanRequired checks if an error is a PlanRequiredError
func IsPlanRequired(err error) bool {
	var planErr *PlanRequiredError
	return errors.As(err, &planErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsPartialBatch checks if an error is a PartialBatchError
func IsPartialBatch(err error) bool {
	var batchErr *PartialBatchError
	return errors.As(err, &batchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewPlanRequiredError creates a new PlanRequiredError
func NewPlanRequiredError(specialty string) error {
	return &PlanRequiredError{Specialty: specialty}
}

// NewConflictError creates a new ConflictError for a schedule key
func NewConflictError(key string) error {
	return &ConflictError{Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
