package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/mocks"
	"github.com/payrollhq/bureau-api/internal/validation"
	"github.com/payrollhq/bureau-api/pkg/logger"
)

type ProvisioningServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockTenant *mocks.TenantRepository
	mockUser   *mocks.UserRepository
	mockIDP    *mocks.Provider
	service    *ProvisioningService
}

func (s *ProvisioningServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockTenant = new(mocks.TenantRepository)
	s.mockUser = new(mocks.UserRepository)
	s.mockIDP = new(mocks.Provider)

	s.mockRepo.On("Tenant").Return(s.mockTenant).Maybe()
	s.mockRepo.On("User").Return(s.mockUser).Maybe()

	s.service = NewProvisioningService(s.mockRepo, s.mockIDP, logger.NewNop())
}

func TestProvisioningService(t *testing.T) {
	suite.Run(t, new(ProvisioningServiceTestSuite))
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "Jane@AcmePayroll.co.uk",
		Password:    "Str0ngPass",
		CompanyName: "Acme Payroll Ltd",
		AdminName:   "Jane Doe",
	}
}

func (s *ProvisioningServiceTestSuite) TestRegister_Success() {
	// Arrange
	ctx := context.Background()
	req := validRegisterRequest()

	s.mockUser.On("ExistsByEmail", ctx, "jane@acmepayroll.co.uk").Return(false, nil)
	s.mockIDP.On("CreateIdentity", ctx, "jane@acmepayroll.co.uk", req.Password, mock.AnythingOfType("identity.Metadata")).
		Return("identity1", nil)

	var createdTenant *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			createdTenant = args.Get(1).(*domain.Tenant)
		}).
		Return(&domain.Tenant{ID: "tenant1", Name: req.CompanyName}, nil)

	var createdUser *domain.User
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*domain.User)
		}).
		Return(&domain.User{ID: "identity1", TenantID: "tenant1"}, nil)

	// Act
	resp, err := s.service.Register(ctx, req)

	// Assert
	s.NoError(err)
	s.Equal("identity1", resp.UserID)
	s.Equal("tenant1", resp.TenantID)
	s.Equal("Acme Payroll Ltd", resp.CompanyName)
	s.Equal("jane@acmepayroll.co.uk", resp.Email)

	s.Require().NotNil(createdTenant)
	s.Equal(domain.TenantPlanTrial, createdTenant.Plan)
	s.Equal(domain.TenantModePlayground, createdTenant.Mode)
	s.Equal([]string{"acmepayroll.co.uk"}, []string(createdTenant.AllowedDomains))
	s.True(createdTenant.DemoDataActive)
	s.True(createdTenant.CanSwitchModes)
	s.Equal("acmepayroll.co.uk", createdTenant.Settings.CompanyDomain)
	s.False(createdTenant.Settings.SetupCompleted)
	s.Len(createdTenant.Settings.ChecklistTemplate, 7)

	s.Require().NotNil(createdUser)
	s.Equal("identity1", createdUser.ID)
	s.Equal("tenant1", createdUser.TenantID)
	s.Equal(domain.RoleAdmin, createdUser.Role)
	s.True(createdUser.IsActive)

	s.mockIDP.AssertNumberOfCalls(s.T(), "DeleteIdentity", 0)
	s.mockTenant.AssertExpectations(s.T())
	s.mockUser.AssertExpectations(s.T())
}

func (s *ProvisioningServiceTestSuite) TestRegister_ValidationError() {
	// Act
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{
		Email:       "jane@gmail.com",
		Password:    "Str0ngPass",
		CompanyName: "Acme Payroll Ltd",
		AdminName:   "Jane Doe",
	})

	// Assert
	var verr *validation.Error
	s.ErrorAs(err, &verr)
	s.Equal("email", verr.Field)
	s.mockIDP.AssertNumberOfCalls(s.T(), "CreateIdentity", 0)
}

func (s *ProvisioningServiceTestSuite) TestRegister_DuplicateAccount() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("ExistsByEmail", ctx, "jane@acmepayroll.co.uk").Return(true, nil)

	// Act
	_, err := s.service.Register(ctx, validRegisterRequest())

	// Assert
	s.ErrorIs(err, ErrDuplicateAccount)
	s.mockIDP.AssertNumberOfCalls(s.T(), "CreateIdentity", 0)
	s.mockTenant.AssertNumberOfCalls(s.T(), "Create", 0)
}

func (s *ProvisioningServiceTestSuite) TestRegister_IdentityProviderFailure() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("ExistsByEmail", ctx, "jane@acmepayroll.co.uk").Return(false, nil)
	s.mockIDP.On("CreateIdentity", ctx, "jane@acmepayroll.co.uk", "Str0ngPass", mock.AnythingOfType("identity.Metadata")).
		Return("", errors.New("provider down"))

	// Act
	_, err := s.service.Register(ctx, validRegisterRequest())

	// Assert
	s.ErrorIs(err, ErrAuthProvider)
	s.mockTenant.AssertNumberOfCalls(s.T(), "Create", 0)
}

func (s *ProvisioningServiceTestSuite) TestRegister_TenantFailureCompensatesIdentity() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("ExistsByEmail", ctx, "jane@acmepayroll.co.uk").Return(false, nil)
	s.mockIDP.On("CreateIdentity", ctx, "jane@acmepayroll.co.uk", "Str0ngPass", mock.AnythingOfType("identity.Metadata")).
		Return("identity1", nil)
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Return(nil, errors.New("db down"))
	s.mockIDP.On("DeleteIdentity", ctx, "identity1").Return(nil)

	// Act
	_, err := s.service.Register(ctx, validRegisterRequest())

	// Assert
	s.ErrorIs(err, ErrTenantSetupFailed)
	s.mockIDP.AssertCalled(s.T(), "DeleteIdentity", ctx, "identity1")
	s.mockUser.AssertNumberOfCalls(s.T(), "Create", 0)
}

func (s *ProvisioningServiceTestSuite) TestRegister_UserFailureCompensatesTenantAndIdentity() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("ExistsByEmail", ctx, "jane@acmepayroll.co.uk").Return(false, nil)
	s.mockIDP.On("CreateIdentity", ctx, "jane@acmepayroll.co.uk", "Str0ngPass", mock.AnythingOfType("identity.Metadata")).
		Return("identity1", nil)
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(nil, errors.New("unique violation"))
	s.mockTenant.On("Delete", ctx, "tenant1").Return(nil)
	s.mockIDP.On("DeleteIdentity", ctx, "identity1").Return(nil)

	// Act
	_, err := s.service.Register(ctx, validRegisterRequest())

	// Assert
	s.ErrorIs(err, ErrProfileSetupFailed)
	s.mockTenant.AssertCalled(s.T(), "Delete", ctx, "tenant1")
	s.mockIDP.AssertCalled(s.T(), "DeleteIdentity", ctx, "identity1")
}

func (s *ProvisioningServiceTestSuite) TestEnsureUser_ExistingUser() {
	// Arrange
	ctx := context.Background()
	existing := &domain.User{ID: "user1", TenantID: "tenant1", Email: "jane@acmepayroll.co.uk"}
	s.mockUser.On("GetByID", ctx, "user1").Return(existing, nil)

	// Act
	user, err := s.service.EnsureUser(ctx, Principal{UserID: "user1", Email: "jane@acmepayroll.co.uk"})

	// Assert
	s.NoError(err)
	s.Equal(existing, user)
	s.mockTenant.AssertNumberOfCalls(s.T(), "Create", 0)
}

func (s *ProvisioningServiceTestSuite) TestEnsureUser_ProvisionsLazily() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("GetByID", ctx, "user1").Return(nil, gorm.ErrRecordNotFound)

	var createdTenant *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			createdTenant = args.Get(1).(*domain.Tenant)
		}).
		Return(&domain.Tenant{ID: "tenant1", Name: "jane"}, nil)

	var createdUser *domain.User
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*domain.User)
		}).
		Return(&domain.User{ID: "user1", TenantID: "tenant1"}, nil)

	// Act
	user, err := s.service.EnsureUser(ctx, Principal{UserID: "user1", Email: "jane@acmepayroll.co.uk"})

	// Assert
	s.NoError(err)
	s.Equal("tenant1", user.TenantID)

	s.Require().NotNil(createdTenant)
	s.Equal("jane", createdTenant.Name)
	s.Equal(domain.TenantPlanStarter, createdTenant.Plan)
	s.Equal([]string{"acmepayroll.co.uk"}, []string(createdTenant.AllowedDomains))
	s.False(createdTenant.DemoDataActive)

	s.Require().NotNil(createdUser)
	s.Equal("user1", createdUser.ID)
	s.Equal(domain.RoleAdmin, createdUser.Role)
	s.Equal("jane", createdUser.Name)
}

func (s *ProvisioningServiceTestSuite) TestEnsureUser_FallbackNames() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("GetByID", ctx, "user1").Return(nil, gorm.ErrRecordNotFound)

	var createdTenant *domain.Tenant
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) {
			createdTenant = args.Get(1).(*domain.Tenant)
		}).
		Return(&domain.Tenant{ID: "tenant1"}, nil)

	var createdUser *domain.User
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*domain.User)
		}).
		Return(&domain.User{ID: "user1", TenantID: "tenant1"}, nil)

	// Act
	_, err := s.service.EnsureUser(ctx, Principal{UserID: "user1"})

	// Assert
	s.NoError(err)
	s.Require().NotNil(createdTenant)
	s.Equal("My Bureau", createdTenant.Name)
	s.Empty([]string(createdTenant.AllowedDomains))
	s.Require().NotNil(createdUser)
	s.Equal("User", createdUser.Name)
}

func (s *ProvisioningServiceTestSuite) TestEnsureUser_UserFailureCompensatesTenant() {
	// Arrange
	ctx := context.Background()
	s.mockUser.On("GetByID", ctx, "user1").Return(nil, gorm.ErrRecordNotFound)
	s.mockTenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Return(&domain.Tenant{ID: "tenant1"}, nil)
	s.mockUser.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Return(nil, errors.New("unique violation"))
	s.mockTenant.On("Delete", ctx, "tenant1").Return(nil)

	// Act
	_, err := s.service.EnsureUser(ctx, Principal{UserID: "user1", Email: "jane@acmepayroll.co.uk"})

	// Assert
	s.ErrorIs(err, ErrProfileSetupFailed)
	s.mockTenant.AssertCalled(s.T(), "Delete", ctx, "tenant1")
}
