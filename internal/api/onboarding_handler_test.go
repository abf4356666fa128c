package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/service"
)

type OnboardingHandlerTestSuite struct {
	suite.Suite
	mockService *MockOnboardingService
	handler     *OnboardingHandler
}

type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) ListClients(ctx context.Context) ([]dto.OnboardingClientResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.OnboardingClientResponse), args.Error(1)
}

func (m *MockOnboardingService) UpdateTask(ctx context.Context, req dto.UpdateOnboardingTaskRequest) (*dto.OnboardingRecordResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OnboardingRecordResponse), args.Error(1)
}

func (s *OnboardingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockOnboardingService)
	s.handler = NewOnboardingHandler(s.mockService)
}

func TestOnboardingHandler(t *testing.T) {
	suite.Run(t, new(OnboardingHandlerTestSuite))
}

func taskRequest(completed bool) dto.UpdateOnboardingTaskRequest {
	return dto.UpdateOnboardingTaskRequest{
		ClientID:  "client1",
		TaskID:    1,
		Completed: &completed,
	}
}

func (s *OnboardingHandlerTestSuite) TestListClients_Success() {
	// Arrange
	expected := []dto.OnboardingClientResponse{
		{
			ClientResponse: dto.ClientResponse{
				ID:     "client1",
				Name:   "Bluebird Cafe Ltd",
				Status: "onboarding",
			},
			Onboarding: &dto.OnboardingRecordResponse{
				ID:                 "ob1",
				ClientID:           "client1",
				Tasks:              []domain.ChecklistTask{{ID: 1, Name: "Collect PAYE reference", Required: true}},
				ProgressPercentage: 0,
			},
		},
	}
	s.mockService.On("ListClients", mock.Anything).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/onboarding/clients", nil)

	// Act
	s.handler.ListClients(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.OnboardingClientResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Require().Len(response, 1)
	s.Equal("Bluebird Cafe Ltd", response[0].Name)
	s.Require().NotNil(response[0].Onboarding)
	s.Len(response[0].Onboarding.Tasks, 1)
	s.mockService.AssertExpectations(s.T())
}

func (s *OnboardingHandlerTestSuite) TestUpdateTask_Success() {
	// Arrange
	req := taskRequest(true)
	expected := &dto.OnboardingRecordResponse{
		ID:                 "ob1",
		ClientID:           "client1",
		Tasks:              []domain.ChecklistTask{{ID: 1, Name: "Collect PAYE reference", Required: true, Completed: true}},
		ProgressPercentage: 100,
		Revision:           4,
	}
	s.mockService.On("UpdateTask", mock.Anything, req).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/onboarding/tasks", req)

	// Act
	s.handler.UpdateTask(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.OnboardingRecordResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(100, response.ProgressPercentage)
	s.Equal(4, response.Revision)
	s.mockService.AssertExpectations(s.T())
}

func (s *OnboardingHandlerTestSuite) TestUpdateTask_MissingCompleted() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/onboarding/tasks", map[string]any{
		"client_id": "client1",
		"task_id":   1,
	})

	// Act
	s.handler.UpdateTask(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNumberOfCalls(s.T(), "UpdateTask", 0)
}

func (s *OnboardingHandlerTestSuite) TestUpdateTask_ClientNotFound() {
	// Arrange
	req := taskRequest(true)
	s.mockService.On("UpdateTask", mock.Anything, req).Return(nil, service.ErrClientNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/onboarding/tasks", req)

	// Act
	s.handler.UpdateTask(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *OnboardingHandlerTestSuite) TestUpdateTask_RevisionConflict() {
	// Arrange
	req := taskRequest(true)
	s.mockService.On("UpdateTask", mock.Anything, req).Return(nil, service.ErrOnboardingConflict)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/onboarding/tasks", req)

	// Act
	s.handler.UpdateTask(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}
