package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/identity"
	"github.com/payrollhq/bureau-api/internal/repository"
	"github.com/payrollhq/bureau-api/internal/validation"
	"github.com/payrollhq/bureau-api/pkg/logger"
)

// Principal is a verified authentication subject, as extracted from a
// session token. It may not yet have a user row.
type Principal struct {
	UserID string
	Email  string
	Name   string
}

// ProvisioningService stands up identity, tenant and user profile from one
// registration, and lazily provisions principals that bypassed
// registration. The identity provider lives outside any store transaction,
// so failures after identity creation are unwound with explicit
// compensations rather than a rollback.
type ProvisioningService struct {
	repo   repository.Repository
	idp    identity.Provider
	logger *logger.Logger
}

func NewProvisioningService(repo repository.Repository, idp identity.Provider, logger *logger.Logger) *ProvisioningService {
	return &ProvisioningService{
		repo:   repo,
		idp:    idp,
		logger: logger,
	}
}

type compensation struct {
	step string
	run  func(context.Context) error
}

// compensate unwinds completed steps in reverse order. Failures are logged
// and never mask the original provisioning error.
func (s *ProvisioningService) compensate(ctx context.Context, comps []compensation) {
	for i := len(comps) - 1; i >= 0; i-- {
		if err := comps[i].run(ctx); err != nil {
			s.logger.Error("provisioning compensation failed", err,
				zap.String("step", comps[i].step))
		}
	}
}

// Register provisions a new bureau: validation, duplicate check, identity,
// tenant, founding admin user. Steps run in order and short-circuit on the
// first failure.
func (s *ProvisioningService) Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error) {
	if verr := validation.ValidateRegistration(req.Email, req.Password, req.CompanyName, req.AdminName); verr != nil {
		return dto.RegisterResponse{}, verr
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.User().ExistsByEmail(ctx, email)
	if err != nil {
		return dto.RegisterResponse{}, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if exists {
		return dto.RegisterResponse{}, ErrDuplicateAccount
	}

	identityID, err := s.idp.CreateIdentity(ctx, email, req.Password, identity.Metadata{
		Name:    req.AdminName,
		Company: req.CompanyName,
		Phone:   req.Phone,
	})
	if err != nil {
		return dto.RegisterResponse{}, fmt.Errorf("%w: %v", ErrAuthProvider, err)
	}

	comps := []compensation{
		{step: "delete identity", run: func(ctx context.Context) error {
			return s.idp.DeleteIdentity(ctx, identityID)
		}},
	}

	emailDomain := validation.EmailDomain(email)
	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		Name:           req.CompanyName,
		Plan:           domain.TenantPlanTrial,
		Mode:           domain.TenantModePlayground,
		AllowedDomains: pq.StringArray{emailDomain},
		DemoDataActive: true,
		CanSwitchModes: true,
		Settings: domain.TenantSettings{
			Industry:          "payroll_bureau",
			CompanyDomain:     emailDomain,
			SetupCompleted:    false,
			ChecklistTemplate: domain.DefaultChecklistTemplate(),
		},
	})
	if err != nil {
		s.compensate(ctx, comps)
		return dto.RegisterResponse{}, fmt.Errorf("%w: %v", ErrTenantSetupFailed, err)
	}
	comps = append(comps, compensation{step: "delete tenant", run: func(ctx context.Context) error {
		return s.repo.Tenant().Delete(ctx, tenant.ID)
	}})

	if _, err := s.repo.User().Create(ctx, &domain.User{
		ID:       identityID,
		TenantID: tenant.ID,
		Email:    email,
		Name:     req.AdminName,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}); err != nil {
		s.compensate(ctx, comps)
		return dto.RegisterResponse{}, fmt.Errorf("%w: %v", ErrProfileSetupFailed, err)
	}

	s.logger.Info("registered new bureau",
		zap.String("tenant_id", tenant.ID),
		zap.String("user_id", identityID))

	return dto.RegisterResponse{
		UserID:      identityID,
		TenantID:    tenant.ID,
		CompanyName: tenant.Name,
		Email:       email,
	}, nil
}

// EnsureUser resolves the principal's user row, creating a minimal tenant
// and profile on first access for principals that bypassed full
// registration. The principal is already authenticated, so there are no
// domain or password checks on this path.
func (s *ProvisioningService) EnsureUser(ctx context.Context, p Principal) (*domain.User, error) {
	user, err := s.repo.User().GetByID(ctx, p.UserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(p.Email))
	emailDomain := validation.EmailDomain(email)
	localPart := validation.EmailLocalPart(email)

	tenantName := localPart
	if tenantName == "" {
		tenantName = "My Bureau"
	}

	domains := pq.StringArray{}
	if emailDomain != "" {
		domains = append(domains, emailDomain)
	}

	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		Name:           tenantName,
		Plan:           domain.TenantPlanStarter,
		Mode:           domain.TenantModePlayground,
		AllowedDomains: domains,
		CanSwitchModes: true,
		Settings: domain.TenantSettings{
			Industry:          "payroll_bureau",
			CompanyDomain:     emailDomain,
			ChecklistTemplate: domain.DefaultChecklistTemplate(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTenantSetupFailed, err)
	}

	name := p.Name
	if name == "" {
		name = localPart
	}
	if name == "" {
		name = "User"
	}

	user, err = s.repo.User().Create(ctx, &domain.User{
		ID:       p.UserID,
		TenantID: tenant.ID,
		Email:    email,
		Name:     name,
		Role:     domain.RoleAdmin,
		IsActive: true,
	})
	if err != nil {
		s.compensate(ctx, []compensation{
			{step: "delete tenant", run: func(ctx context.Context) error {
				return s.repo.Tenant().Delete(ctx, tenant.ID)
			}},
		})
		return nil, fmt.Errorf("%w: %v", ErrProfileSetupFailed, err)
	}

	s.logger.Info("lazily provisioned tenant for principal",
		zap.String("tenant_id", tenant.ID),
		zap.String("user_id", p.UserID))

	return user, nil
}
