package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "oncall-directory-backend/internal/errors"
	mocks "oncall-directory-backend/internal/mocks/servicemocks"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite tests the ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockScheduleServiceInterface
	handler     *ScheduleHandler
}

// SetupSuite sets up the test suite
func (suite *ScheduleHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.handler = NewScheduleHandler(suite.mockService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		schedule := v1.Group("/schedule")
		{
			schedule.GET("", suite.handler.ListSchedule)
			schedule.DELETE("", suite.handler.DeleteAssignment)
			schedule.POST("/reconcile", suite.handler.Reconcile)
			schedule.GET("/export", suite.handler.ExportSchedule)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListSchedule tests the range listing
func (suite *ScheduleHandlerTestSuite) TestListSchedule() {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)
	suite.mockService.EXPECT().
		List(from, to, "Cardiology", nil).
		Return([]service.AssignmentResponse{
			{Date: "2026-04-01", Specialty: "Cardiology", ProviderName: "Dr. Hart"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?from=2026-04-01&to=2026-04-07&specialty=Cardiology", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var responses []service.AssignmentResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &responses))
	assert.Len(suite.T(), responses, 1)
}

// TestListScheduleMissingParams tests parameter validation
func (suite *ScheduleHandlerTestSuite) TestListScheduleMissingParams() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?from=2026-04-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestListScheduleInvertedRange tests the range check answer
func (suite *ScheduleHandlerTestSuite) TestListScheduleInvertedRange() {
	suite.mockService.EXPECT().
		List(gomock.Any(), gomock.Any(), "Cardiology", nil).
		Return(nil, apperrors.ErrInvalidDateRange)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?from=2026-04-07&to=2026-04-01&specialty=Cardiology", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestReconcileAllApplied tests the 200 answer
func (suite *ScheduleHandlerTestSuite) TestReconcileAllApplied() {
	request := service.ReconcileRequest{
		Entries: []service.StagedEntryRequest{
			{Date: "2026-04-01", Specialty: "Cardiology", ProviderName: "Dr. Hart"},
		},
	}
	suite.mockService.EXPECT().
		Reconcile(gomock.Any()).
		Return(&service.ReconcileResult{
			Applied: []service.OperationResult{{Kind: "insert", Date: "2026-04-01", Specialty: "Cardiology", ProviderName: "Dr. Hart"}},
		}, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/reconcile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var result service.ReconcileResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(suite.T(), result.Applied, 1)
	assert.Empty(suite.T(), result.Failed)
}

// TestReconcilePartialFailure tests the 207 answer with the split
func (suite *ScheduleHandlerTestSuite) TestReconcilePartialFailure() {
	suite.mockService.EXPECT().
		Reconcile(gomock.Any()).
		Return(&service.ReconcileResult{
			Applied: []service.OperationResult{{Kind: "insert", ProviderName: "Dr. Walsh"}},
			Failed:  []service.OperationResult{{Kind: "insert", ProviderName: "Dr. Hart", Conflict: true}},
		}, &apperrors.PartialBatchError{Applied: 1, Failed: 1})

	body, _ := json.Marshal(service.ReconcileRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/reconcile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusMultiStatus, w.Code)

	var result service.ReconcileResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(suite.T(), result.Applied, 1)
	assert.Len(suite.T(), result.Failed, 1)
	assert.True(suite.T(), result.Failed[0].Conflict)
}

// TestReconcileAllConflicts tests the 409 answer when every operation
// failed on a write conflict
func (suite *ScheduleHandlerTestSuite) TestReconcileAllConflicts() {
	suite.mockService.EXPECT().
		Reconcile(gomock.Any()).
		Return(&service.ReconcileResult{
			Failed: []service.OperationResult{
				{Kind: "insert", ProviderName: "Dr. Hart", Conflict: true},
				{Kind: "update", ProviderName: "Dr. Walsh", Conflict: true},
			},
		}, &apperrors.PartialBatchError{Applied: 0, Failed: 2})

	body, _ := json.Marshal(service.ReconcileRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/reconcile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)

	var result service.ReconcileResult
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(suite.T(), result.Failed, 2)
}

// TestReconcileValidationError tests the 400 answer for staged edits that
// fail conversion
func (suite *ScheduleHandlerTestSuite) TestReconcileValidationError() {
	suite.mockService.EXPECT().
		Reconcile(gomock.Any()).
		Return(nil, apperrors.NewValidationError("healthcare_plan", "must be omitted or non-empty"))

	body, _ := json.Marshal(service.ReconcileRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/reconcile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestReconcileMalformedBody tests JSON binding
func (suite *ScheduleHandlerTestSuite) TestReconcileMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/schedule/reconcile", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteAssignment tests the single-row delete
func (suite *ScheduleHandlerTestSuite) TestDeleteAssignment() {
	date := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	suite.mockService.EXPECT().
		Delete(date, "Cardiology", "Dr. Hart", nil).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedule?date=2026-04-01&specialty=Cardiology&provider=Dr.%20Hart", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestDeleteAssignmentMissingProvider tests parameter validation
func (suite *ScheduleHandlerTestSuite) TestDeleteAssignmentMissingProvider() {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedule?date=2026-04-01&specialty=Cardiology", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestExportSchedule tests the XLSX download headers
func (suite *ScheduleHandlerTestSuite) TestExportSchedule() {
	suite.mockService.EXPECT().
		ExportMonth(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), "").
		Return([]byte("workbook-bytes"), "oncall-schedule-2026-04.xlsx", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/export?month=2026-04", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Header().Get("Content-Disposition"), "oncall-schedule-2026-04.xlsx")
	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
}

// TestExportScheduleBadMonth tests month parsing
func (suite *ScheduleHandlerTestSuite) TestExportScheduleBadMonth() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule/export?month=April", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
