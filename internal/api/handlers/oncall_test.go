package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "oncall-directory-backend/internal/errors"
	mocks "oncall-directory-backend/internal/mocks/servicemocks"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OnCallHandlerTestSuite tests the OnCallHandler
type OnCallHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockOnCallServiceInterface
	handler     *OnCallHandler
}

// SetupSuite sets up the test suite
func (suite *OnCallHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *OnCallHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOnCallServiceInterface(suite.ctrl)
	suite.handler = NewOnCallHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/api/v1/oncall", suite.handler.GetOnCall)
}

// TearDownTest cleans up after each test
func (suite *OnCallHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OnCallHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestGetOnCallWithDate tests resolution for an explicit calendar day
func (suite *OnCallHandlerTestSuite) TestGetOnCallWithDate() {
	phone := "+1-555-0101"
	suite.mockService.EXPECT().
		Resolve("Cardiology", nil, gomock.Any()).
		Return(&service.ResolvedAssignmentResponse{
			Date:         "2026-04-01",
			Specialty:    "Cardiology",
			ProviderName: "Dr. Hart",
			PhoneNumber:  &phone,
		}, nil)

	w := suite.get("/api/v1/oncall?specialty=Cardiology&date=2026-04-01")

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response service.ResolvedAssignmentResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Dr. Hart", response.ProviderName)
	assert.Equal(suite.T(), "+1-555-0101", *response.PhoneNumber)
}

// TestGetOnCallWithoutDate tests the current-instant entry point
func (suite *OnCallHandlerTestSuite) TestGetOnCallWithoutDate() {
	suite.mockService.EXPECT().
		ResolveActive("Cardiology", nil, gomock.Any()).
		Return(&service.ResolvedAssignmentResponse{
			Date:         "2026-04-01",
			Specialty:    "Cardiology",
			ProviderName: "Dr. Hart",
		}, nil)

	w := suite.get("/api/v1/oncall?specialty=Cardiology")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetOnCallMissingSpecialty tests parameter validation
func (suite *OnCallHandlerTestSuite) TestGetOnCallMissingSpecialty() {
	w := suite.get("/api/v1/oncall")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetOnCallEmptyPlanRejected tests that plan= (empty) is a client error,
// not a no-plan filter
func (suite *OnCallHandlerTestSuite) TestGetOnCallEmptyPlanRejected() {
	w := suite.get("/api/v1/oncall?specialty=Cardiology&plan=")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetOnCallPlanRequired tests the 400 answer for plan-keyed specialties
func (suite *OnCallHandlerTestSuite) TestGetOnCallPlanRequired() {
	suite.mockService.EXPECT().
		ResolveActive("Internal Medicine", nil, gomock.Any()).
		Return(nil, apperrors.NewPlanRequiredError("Internal Medicine"))

	w := suite.get("/api/v1/oncall?specialty=Internal%20Medicine")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "plan-required", body["reason"])
}

// TestGetOnCallNoAssignment tests the typed 404 answer
func (suite *OnCallHandlerTestSuite) TestGetOnCallNoAssignment() {
	suite.mockService.EXPECT().
		ResolveActive("Cardiology", nil, gomock.Any()).
		Return(nil, apperrors.ErrAssignmentNotFound)

	w := suite.get("/api/v1/oncall?specialty=Cardiology")

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "no-assignment", body["reason"])
}

// TestGetOnCallBadDate tests date parsing
func (suite *OnCallHandlerTestSuite) TestGetOnCallBadDate() {
	w := suite.get("/api/v1/oncall?specialty=Cardiology&date=not-a-date")

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestGetOnCallPlanForwarded tests that a present plan reaches the service
func (suite *OnCallHandlerTestSuite) TestGetOnCallPlanForwarded() {
	plan := "HMO Gold"
	suite.mockService.EXPECT().
		ResolveActive("Internal Medicine", &plan, gomock.Any()).
		Return(&service.ResolvedAssignmentResponse{
			Date:           "2026-04-01",
			Specialty:      "Internal Medicine",
			HealthcarePlan: &plan,
			ProviderName:   "Dr. Kim",
		}, nil)

	w := suite.get("/api/v1/oncall?specialty=Internal%20Medicine&plan=HMO%20Gold")

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestOnCallHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OnCallHandlerTestSuite))
}
