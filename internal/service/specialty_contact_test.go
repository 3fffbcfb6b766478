package service

import (
	"testing"

	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSpecialtyContactGetContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	mockRepo.EXPECT().GetBySpecialty("Cardiology").Return([]models.SpecialtyContact{
		{Specialty: "Cardiology", Role: models.ContactRolePA, PhoneNumber: "+1-555-0201"},
		{Specialty: "Cardiology", Role: models.ContactRoleResidency, PhoneNumber: "+1-555-0202"},
	}, nil)

	contacts, err := svc.GetContacts("Cardiology")

	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "Cardiology PA Phone", contacts[0].Label)
	assert.Equal(t, "Cardiology Residency", contacts[1].Label)
}

func TestSpecialtyContactPutContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(c *models.SpecialtyContact) error {
		assert.Equal(t, "Neurology", c.Specialty)
		assert.Equal(t, models.ContactRolePA, c.Role)
		return nil
	})

	contact, err := svc.PutContact("Neurology", models.ContactRolePA, &PutSpecialtyContactRequest{PhoneNumber: "+1-555-0204"})

	assert.NoError(t, err)
	assert.Equal(t, "+1-555-0204", contact.PhoneNumber)
	assert.Equal(t, "Neurology PA Phone", contact.Label)
}

func TestSpecialtyContactPutContactInvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	contact, err := svc.PutContact("Neurology", "fax", &PutSpecialtyContactRequest{PhoneNumber: "+1-555-0204"})

	assert.Nil(t, contact)
	assert.ErrorIs(t, err, apperrors.ErrInvalidContactRole)
}

func TestSpecialtyContactPutContactMissingPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	contact, err := svc.PutContact("Neurology", models.ContactRolePA, &PutSpecialtyContactRequest{})

	assert.Nil(t, contact)
	assert.Error(t, err)
}

func TestSpecialtyContactDeleteContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	mockRepo.EXPECT().Delete("Cardiology", models.ContactRoleResidency).Return(nil)

	assert.NoError(t, svc.DeleteContact("Cardiology", models.ContactRoleResidency))
}

func TestSpecialtyContactDeleteContactInvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSpecialtyContactRepositoryInterface(ctrl)
	svc := NewSpecialtyContactService(mockRepo, validator.New())

	assert.ErrorIs(t, svc.DeleteContact("Cardiology", ""), apperrors.ErrInvalidContactRole)
}
