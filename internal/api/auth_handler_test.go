package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/service"
	"github.com/payrollhq/bureau-api/internal/validation"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockProvisioning *MockProvisioningService
	mockAuth         *MockAuthService
	handler          *AuthHandler
}

type MockProvisioningService struct {
	mock.Mock
}

func (m *MockProvisioningService) Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.RegisterResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockProvisioning = new(MockProvisioningService)
	s.mockAuth = new(MockAuthService)
	s.handler = NewAuthHandler(s.mockProvisioning, s.mockAuth)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func jsonRequest(method, target string, body any) *http.Request {
	buf, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, target, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	// Arrange
	req := dto.RegisterRequest{
		Email:       "jane@acmepayroll.co.uk",
		Password:    "Str0ngPass",
		CompanyName: "Acme Payroll Ltd",
		AdminName:   "Jane Doe",
	}
	expected := dto.RegisterResponse{
		UserID:      "user1",
		TenantID:    "tenant1",
		CompanyName: "Acme Payroll Ltd",
		Email:       "jane@acmepayroll.co.uk",
	}
	s.mockProvisioning.On("Register", mock.Anything, req).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", req)

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.RegisterResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expected, response)
	s.mockProvisioning.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationError() {
	// Arrange
	req := dto.RegisterRequest{
		Email:       "jane@gmail.com",
		Password:    "Str0ngPass",
		CompanyName: "Acme Payroll Ltd",
		AdminName:   "Jane Doe",
	}
	s.mockProvisioning.On("Register", mock.Anything, req).
		Return(dto.RegisterResponse{}, &validation.Error{Field: "email", Message: "please use your company email address"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", req)

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	var response dto.Error
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal("validation failed", response.Error)
	s.NotNil(response.Details)
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateAccount() {
	// Arrange
	req := dto.RegisterRequest{
		Email:       "jane@acmepayroll.co.uk",
		Password:    "Str0ngPass",
		CompanyName: "Acme Payroll Ltd",
		AdminName:   "Jane Doe",
	}
	s.mockProvisioning.On("Register", mock.Anything, req).
		Return(dto.RegisterResponse{}, service.ErrDuplicateAccount)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", req)

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_MissingFields() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/register", map[string]string{"email": "jane@acmepayroll.co.uk"})

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockProvisioning.AssertNumberOfCalls(s.T(), "Register", 0)
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	// Arrange
	req := dto.LoginRequest{Email: "jane@acmepayroll.co.uk", Password: "Str0ngPass"}
	expected := dto.LoginResponse{Token: "signed.jwt", UserID: "user1", TenantID: "tenant1", Role: "admin"}
	s.mockAuth.On("Login", mock.Anything, req).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/login", req)

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expected, response)
	s.mockAuth.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestLogin_InvalidCredentials() {
	// Arrange
	req := dto.LoginRequest{Email: "jane@acmepayroll.co.uk", Password: "wrong"}
	s.mockAuth.On("Login", mock.Anything, req).
		Return(dto.LoginResponse{}, service.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(http.MethodPost, "/auth/login", req)

	// Act
	s.handler.Login(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
}
