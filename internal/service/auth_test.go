package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/identity"
	"github.com/payrollhq/bureau-api/internal/mocks"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockUser   *mocks.UserRepository
	mockIDP    *mocks.Provider
	mockTokens *mocks.TokenIssuer
	service    *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockUser = new(mocks.UserRepository)
	s.mockIDP = new(mocks.Provider)
	s.mockTokens = new(mocks.TokenIssuer)

	s.mockRepo.On("User").Return(s.mockUser).Maybe()

	s.service = NewAuthService(s.mockRepo, s.mockIDP, s.mockTokens)
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	// Arrange
	ctx := context.Background()
	s.mockIDP.On("VerifyPassword", ctx, "jane@acmepayroll.co.uk", "Str0ngPass").Return("user1", nil)
	s.mockUser.On("GetByEmail", ctx, "jane@acmepayroll.co.uk").Return(&domain.User{
		ID:       "user1",
		TenantID: "tenant1",
		Email:    "jane@acmepayroll.co.uk",
		Role:     domain.RoleAdmin,
		IsActive: true,
	}, nil)
	s.mockTokens.On("GenerateToken", "user1", "tenant1", "jane@acmepayroll.co.uk", []string{"admin"}).
		Return("signed.jwt", nil)

	// Act
	resp, err := s.service.Login(ctx, dto.LoginRequest{Email: " Jane@AcmePayroll.co.uk ", Password: "Str0ngPass"})

	// Assert
	s.NoError(err)
	s.Equal("signed.jwt", resp.Token)
	s.Equal("user1", resp.UserID)
	s.Equal("tenant1", resp.TenantID)
	s.Equal("admin", resp.Role)
	s.mockTokens.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	// Arrange
	ctx := context.Background()
	s.mockIDP.On("VerifyPassword", ctx, "jane@acmepayroll.co.uk", "wrong").
		Return("", identity.ErrInvalidCredentials)

	// Act
	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "jane@acmepayroll.co.uk", Password: "wrong"})

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.mockUser.AssertNumberOfCalls(s.T(), "GetByEmail", 0)
}

func (s *AuthServiceTestSuite) TestLogin_MissingProfile() {
	// Arrange
	ctx := context.Background()
	s.mockIDP.On("VerifyPassword", ctx, "jane@acmepayroll.co.uk", "Str0ngPass").Return("user1", nil)
	s.mockUser.On("GetByEmail", ctx, "jane@acmepayroll.co.uk").Return(nil, gorm.ErrRecordNotFound)

	// Act
	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "jane@acmepayroll.co.uk", Password: "Str0ngPass"})

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.mockTokens.AssertNumberOfCalls(s.T(), "GenerateToken", 0)
}

func (s *AuthServiceTestSuite) TestLogin_InactiveUser() {
	// Arrange
	ctx := context.Background()
	s.mockIDP.On("VerifyPassword", ctx, "jane@acmepayroll.co.uk", "Str0ngPass").Return("user1", nil)
	s.mockUser.On("GetByEmail", ctx, "jane@acmepayroll.co.uk").Return(&domain.User{
		ID:       "user1",
		TenantID: "tenant1",
		Email:    "jane@acmepayroll.co.uk",
		Role:     domain.RoleAdmin,
		IsActive: false,
	}, nil)

	// Act
	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "jane@acmepayroll.co.uk", Password: "Str0ngPass"})

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.mockTokens.AssertNumberOfCalls(s.T(), "GenerateToken", 0)
}
