package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/service"
	"github.com/payrollhq/bureau-api/internal/utils"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	mockService *MockDashboardService
	handler     *DashboardHandler
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetStats(ctx context.Context, p service.Principal) (*dto.DashboardStatsResponse, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardStatsResponse), args.Error(1)
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockService = new(MockDashboardService)
	s.handler = NewDashboardHandler(s.mockService)
}

func TestDashboardHandler(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

// authedContext mirrors what the JWT middleware sets for a verified token.
func authedContext(w *httptest.ResponseRecorder, claims jwt.MapClaims) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dashboard/stats", nil)
	c.Set(string(utils.ClaimsKey), claims)
	if v, ok := claims["user_id"]; ok {
		c.Set(string(utils.UserIDKey), v)
	}
	if v, ok := claims["email"]; ok {
		c.Set(string(utils.EmailKey), v)
	}
	return c
}

func (s *DashboardHandlerTestSuite) TestGetStats_Success() {
	// Arrange
	expected := &dto.DashboardStatsResponse{
		TotalClients:       5,
		DueThisWeek:        2,
		Overdue:            1,
		CompletedThisMonth: 3,
		UpcomingDeadlines:  []dto.UpcomingDeadline{},
	}
	principal := service.Principal{UserID: "user1", Email: "jane@acmepayroll.co.uk", Name: "Jane Doe"}
	s.mockService.On("GetStats", mock.Anything, principal).Return(expected, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, jwt.MapClaims{
		"user_id": "user1",
		"email":   "jane@acmepayroll.co.uk",
		"name":    "Jane Doe",
	})

	// Act
	s.handler.GetStats(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.DashboardStatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(int64(5), response.TotalClients)
	s.Equal(2, response.DueThisWeek)
	s.mockService.AssertExpectations(s.T())
}

func (s *DashboardHandlerTestSuite) TestGetStats_NoClaims() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/dashboard/stats", nil)

	// Act
	s.handler.GetStats(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNumberOfCalls(s.T(), "GetStats", 0)
}
