package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "oncall-directory-backend/internal/errors"
	mocks "oncall-directory-backend/internal/mocks/servicemocks"
	"oncall-directory-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DirectoryHandlerTestSuite tests the DirectoryHandler
type DirectoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockDirectoryServiceInterface
	handler     *DirectoryHandler
}

// SetupSuite sets up the test suite
func (suite *DirectoryHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *DirectoryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDirectoryServiceInterface(suite.ctrl)
	suite.handler = NewDirectoryHandler(suite.mockService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1")
	{
		directory := v1.Group("/directory")
		{
			directory.GET("", suite.handler.GetDirectory)
			directory.POST("", suite.handler.CreateEntry)
			directory.PUT("/:id", suite.handler.UpdateEntry)
			directory.DELETE("/:id", suite.handler.DeleteEntry)
		}
	}
}

// TearDownTest cleans up after each test
func (suite *DirectoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDirectoryByNames tests the batch name lookup
func (suite *DirectoryHandlerTestSuite) TestGetDirectoryByNames() {
	suite.mockService.EXPECT().
		Lookup([]string{"Dr. Hart", "Dr. Osei"}).
		Return([]service.DirectoryEntryResponse{
			{ProviderName: "Dr. Hart", PhoneNumber: "+1-555-0101"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory?names=Dr.%20Hart,%20Dr.%20Osei", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string][]service.DirectoryEntryResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(suite.T(), body["entries"], 1)
}

// TestGetDirectoryPaginated tests the listing path
func (suite *DirectoryHandlerTestSuite) TestGetDirectoryPaginated() {
	suite.mockService.EXPECT().
		List(2, 10).
		Return(&service.DirectoryListResponse{Page: 2, PageSize: 10, Total: 25}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/directory?page=2&page_size=10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var list service.DirectoryListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(suite.T(), int64(25), list.Total)
}

// TestCreateEntry tests creating a directory entry
func (suite *DirectoryHandlerTestSuite) TestCreateEntry() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(&service.DirectoryEntryResponse{ID: id, ProviderName: "Dr. Hart"}, nil)

	body, _ := json.Marshal(service.CreateDirectoryEntryRequest{ProviderName: "Dr. Hart"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.DirectoryEntryResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), id, response.ID)
}

// TestCreateEntryDuplicate tests the conflict answer
func (suite *DirectoryHandlerTestSuite) TestCreateEntryDuplicate() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrDirectoryEntryExists)

	body, _ := json.Marshal(service.CreateDirectoryEntryRequest{ProviderName: "Dr. Hart"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/directory", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestUpdateEntryNotFound tests the 404 answer
func (suite *DirectoryHandlerTestSuite) TestUpdateEntryNotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(id, gomock.Any()).
		Return(nil, apperrors.ErrDirectoryEntryNotFound)

	body, _ := json.Marshal(service.UpdateDirectoryEntryRequest{})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/directory/"+id.String(), bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateEntryBadID tests UUID parsing
func (suite *DirectoryHandlerTestSuite) TestUpdateEntryBadID() {
	body, _ := json.Marshal(service.UpdateDirectoryEntryRequest{})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/directory/not-a-uuid", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteEntry tests deleting an entry
func (suite *DirectoryHandlerTestSuite) TestDeleteEntry() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/directory/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestDirectoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryHandlerTestSuite))
}
