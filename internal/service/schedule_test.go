package service

import (
	"testing"
	"time"

	"oncall-directory-backend/internal/database/models"
	apperrors "oncall-directory-backend/internal/errors"
	"oncall-directory-backend/internal/mocks"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ScheduleServiceTestSuite tests the ScheduleService
type ScheduleServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockAssignmentRepositoryInterface
	service  *ScheduleService
	day      time.Time
}

// SetupTest sets up each individual test
func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.service = NewScheduleService(suite.mockRepo, validator.New(), nil)
	suite.day = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *ScheduleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func entryReq(date, specialty, provider string) StagedEntryRequest {
	return StagedEntryRequest{Date: date, Specialty: specialty, ProviderName: provider}
}

// TestReconcileEmptyBatch tests that an empty batch touches nothing
func (suite *ScheduleServiceTestSuite) TestReconcileEmptyBatch() {
	result, err := suite.service.Reconcile(&ReconcileRequest{})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.Applied)
	assert.Empty(suite.T(), result.Failed)
}

// TestReconcileInsert tests reconciling a single new entry
func (suite *ScheduleServiceTestSuite) TestReconcileInsert() {
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return(nil, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(a *models.ScheduleAssignment) error {
		assert.Equal(suite.T(), suite.day, a.Date)
		assert.Equal(suite.T(), "Dr. Hart", a.ProviderName)
		assert.Equal(suite.T(), models.SecondPhonePrefAuto, a.SecondPhonePref)
		return nil
	})

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", "Cardiology", "Dr. Hart")},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Applied, 1)
	assert.Equal(suite.T(), "insert", result.Applied[0].Kind)
	assert.Empty(suite.T(), result.Failed)
}

// TestReconcileNoOpWhenSatisfied tests that a staged entry matching the
// persisted row produces zero writes
func (suite *ScheduleServiceTestSuite) TestReconcileNoOpWhenSatisfied() {
	persisted := models.ScheduleAssignment{
		Date:            suite.day,
		Specialty:       "Cardiology",
		ProviderName:    "Dr. Hart",
		SecondPhonePref: models.SecondPhonePrefAuto,
	}
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return([]models.ScheduleAssignment{persisted}, nil)

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", "Cardiology", "Dr. Hart")},
	})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.Applied)
	assert.Empty(suite.T(), result.Failed)
}

// TestReconcileRenameDeletesBeforeUpsert tests the rename ordering
func (suite *ScheduleServiceTestSuite) TestReconcileRenameDeletesBeforeUpsert() {
	persisted := models.ScheduleAssignment{
		Date:            suite.day,
		Specialty:       "Cardiology",
		ProviderName:    "Dr. Hart",
		SecondPhonePref: models.SecondPhonePrefAuto,
	}
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return([]models.ScheduleAssignment{persisted}, nil)

	deleteCall := suite.mockRepo.EXPECT().
		Delete(suite.day, "Cardiology", "Dr. Hart", nil).
		Return(nil)
	suite.mockRepo.EXPECT().
		Upsert(gomock.Any()).
		After(deleteCall).
		DoAndReturn(func(a *models.ScheduleAssignment) error {
			assert.Equal(suite.T(), "Dr. Osei", a.ProviderName)
			return nil
		})

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", "Cardiology", "Dr. Osei")},
	})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Applied, 1)
	assert.Equal(suite.T(), "rename", result.Applied[0].Kind)
}

// TestReconcilePrefChangeIsSingleUpdate tests that a preference-only change
// never deletes the row
func (suite *ScheduleServiceTestSuite) TestReconcilePrefChangeIsSingleUpdate() {
	persisted := models.ScheduleAssignment{
		Date:            suite.day,
		Specialty:       "Cardiology",
		ProviderName:    "Dr. Hart",
		SecondPhonePref: models.SecondPhonePrefAuto,
	}
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return([]models.ScheduleAssignment{persisted}, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	// no Delete expectation: an implicit delete here would fail the test

	req := entryReq("2026-04-01", "Cardiology", "Dr. Hart")
	req.SecondPhoneEnabled = true
	req.SecondPhonePref = models.SecondPhonePrefPA

	result, err := suite.service.Reconcile(&ReconcileRequest{Entries: []StagedEntryRequest{req}})

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Applied, 1)
	assert.Equal(suite.T(), "update", result.Applied[0].Kind)
}

// TestReconcileConflictIsReported tests the write-time uniqueness re-check
func (suite *ScheduleServiceTestSuite) TestReconcileConflictIsReported() {
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return(nil, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", "Cardiology", "Dr. Hart")},
	})

	assert.True(suite.T(), apperrors.IsPartialBatch(err))
	assert.Empty(suite.T(), result.Applied)
	assert.Len(suite.T(), result.Failed, 1)
	assert.True(suite.T(), result.Failed[0].Conflict)
}

// TestReconcilePartialFailure tests that one failed operation does not sink
// the rest of the batch
func (suite *ScheduleServiceTestSuite) TestReconcilePartialFailure() {
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return(nil, nil)
	suite.mockRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(a *models.ScheduleAssignment) error {
		if a.ProviderName == "Dr. Hart" {
			return gorm.ErrDuplicatedKey
		}
		return nil
	}).Times(2)

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{
			entryReq("2026-04-01", "Cardiology", "Dr. Hart"),
			entryReq("2026-04-02", "Neurology", "Dr. Walsh"),
		},
	})

	assert.True(suite.T(), apperrors.IsPartialBatch(err))
	assert.Len(suite.T(), result.Applied, 1)
	assert.Len(suite.T(), result.Failed, 1)
	assert.Equal(suite.T(), "Dr. Walsh", result.Applied[0].ProviderName)
	assert.Equal(suite.T(), "Dr. Hart", result.Failed[0].ProviderName)
}

// TestReconcileRenameSkipsUpsertWhenDeleteFails tests that a failed implied
// delete blocks the dependent upsert
func (suite *ScheduleServiceTestSuite) TestReconcileRenameSkipsUpsertWhenDeleteFails() {
	persisted := models.ScheduleAssignment{
		Date:            suite.day,
		Specialty:       "Cardiology",
		ProviderName:    "Dr. Hart",
		SecondPhonePref: models.SecondPhonePrefAuto,
	}
	suite.mockRepo.EXPECT().GetByKeys(gomock.Any()).Return([]models.ScheduleAssignment{persisted}, nil)
	suite.mockRepo.EXPECT().
		Delete(suite.day, "Cardiology", "Dr. Hart", nil).
		Return(assert.AnError)
	// no Upsert expectation: it must not run after the delete failed

	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", "Cardiology", "Dr. Osei")},
	})

	assert.True(suite.T(), apperrors.IsPartialBatch(err))
	assert.Empty(suite.T(), result.Applied)
	assert.Len(suite.T(), result.Failed, 1)
}

// TestReconcileRejectsEmptyPlanString tests plan field validation
func (suite *ScheduleServiceTestSuite) TestReconcileRejectsEmptyPlanString() {
	empty := ""
	req := entryReq("2026-04-01", "Cardiology", "Dr. Hart")
	req.HealthcarePlan = &empty

	result, err := suite.service.Reconcile(&ReconcileRequest{Entries: []StagedEntryRequest{req}})

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestReconcileRequiresPlanForPlanKeyedSpecialty tests plan enforcement
func (suite *ScheduleServiceTestSuite) TestReconcileRequiresPlanForPlanKeyedSpecialty() {
	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("2026-04-01", models.SpecialtyInternalMedicine, "Dr. Kim")},
	})

	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsPlanRequired(err))
}

// TestReconcileRejectsBadDate tests date parsing
func (suite *ScheduleServiceTestSuite) TestReconcileRejectsBadDate() {
	result, err := suite.service.Reconcile(&ReconcileRequest{
		Entries: []StagedEntryRequest{entryReq("04/01/2026", "Cardiology", "Dr. Hart")},
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateFormat)
}

// TestReconcileRejectsBadPref tests second phone preference validation
func (suite *ScheduleServiceTestSuite) TestReconcileRejectsBadPref() {
	req := entryReq("2026-04-01", "Cardiology", "Dr. Hart")
	req.SecondPhonePref = "primary"

	result, err := suite.service.Reconcile(&ReconcileRequest{Entries: []StagedEntryRequest{req}})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSecondPhonePref)
}

// TestListRejectsInvertedRange tests range validation
func (suite *ScheduleServiceTestSuite) TestListRejectsInvertedRange() {
	from := suite.day
	to := suite.day.AddDate(0, 0, -1)

	responses, err := suite.service.List(from, to, "Cardiology", nil)

	assert.Nil(suite.T(), responses)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidDateRange)
}

// TestList tests the happy-path listing
func (suite *ScheduleServiceTestSuite) TestList() {
	rows := []models.ScheduleAssignment{
		{Date: suite.day, Specialty: "Cardiology", ProviderName: "Dr. Hart", SecondPhonePref: models.SecondPhonePrefAuto},
	}
	suite.mockRepo.EXPECT().
		ListByRange(suite.day, suite.day.AddDate(0, 0, 6), "Cardiology", nil).
		Return(rows, nil)

	responses, err := suite.service.List(suite.day, suite.day.AddDate(0, 0, 6), "Cardiology", nil)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), "2026-04-01", responses[0].Date)
	assert.Equal(suite.T(), "Dr. Hart", responses[0].ProviderName)
}

// TestDelete tests the single-row delete path
func (suite *ScheduleServiceTestSuite) TestDelete() {
	suite.mockRepo.EXPECT().
		Delete(suite.day, "Cardiology", "Dr. Hart", nil).
		Return(nil)

	err := suite.service.Delete(suite.day, "Cardiology", "Dr. Hart", nil)

	assert.NoError(suite.T(), err)
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
