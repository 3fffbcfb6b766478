package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	assert.Equal(t, "schedule assignment not found", ErrAssignmentNotFound.Error())
	assert.True(t, IsNotFound(ErrAssignmentNotFound))
	assert.True(t, errors.Is(ErrAssignmentNotFound, &NotFoundError{Entity: "schedule assignment"}))
	assert.False(t, errors.Is(ErrAssignmentNotFound, ErrDirectoryEntryNotFound))
}

func TestNotFoundErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("resolving on-call: %w", ErrAssignmentNotFound)
	assert.True(t, IsNotFound(wrapped))
	assert.True(t, errors.Is(wrapped, ErrAssignmentNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "directory entry already exists with this provider name", ErrDirectoryEntryExists.Error())
	assert.True(t, IsAlreadyExists(ErrDirectoryEntryExists))
	assert.False(t, IsAlreadyExists(ErrAssignmentNotFound))
}

func TestPlanRequiredError(t *testing.T) {
	err := NewPlanRequiredError("Internal Medicine")
	assert.Equal(t, `specialty "Internal Medicine" requires a healthcare plan`, err.Error())
	assert.True(t, IsPlanRequired(err))
	assert.True(t, IsPlanRequired(fmt.Errorf("resolve: %w", err)))
	assert.False(t, IsPlanRequired(ErrAssignmentNotFound))
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("2026-04-01/Cardiology")
	assert.Equal(t, "write conflict on schedule key 2026-04-01/Cardiology", err.Error())
	assert.True(t, IsConflict(err))
	assert.False(t, IsConflict(ErrAssignmentNotFound))
}

func TestPartialBatchError(t *testing.T) {
	err := &PartialBatchError{Applied: 3, Failed: 2}
	assert.Equal(t, "2 of 5 schedule operations failed", err.Error())
	assert.True(t, IsPartialBatch(err))
	assert.True(t, IsPartialBatch(fmt.Errorf("reconcile: %w", err)))
	assert.False(t, IsPartialBatch(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	withField := NewValidationError("healthcare_plan", "must not be empty")
	assert.Equal(t, "validation error: healthcare_plan - must not be empty", withField.Error())
	assert.True(t, IsValidation(withField))

	withoutField := NewValidationError("", "bad input")
	assert.Equal(t, "validation error: bad input", withoutField.Error())
}

func TestHelpersRejectNil(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsAlreadyExists(nil))
	assert.False(t, IsPlanRequired(nil))
	assert.False(t, IsConflict(nil))
	assert.False(t, IsPartialBatch(nil))
	assert.False(t, IsValidation(nil))
}
