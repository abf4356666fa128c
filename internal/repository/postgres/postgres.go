package postgres

import (
	"github.com/payrollhq/bureau-api/internal/config"
	"github.com/payrollhq/bureau-api/internal/repository"
)

type postgresRepository struct {
	tenantRepo     repository.TenantRepository
	userRepo       repository.UserRepository
	clientRepo     repository.ClientRepository
	payrollRunRepo repository.PayrollRunRepository
	onboardingRepo repository.OnboardingRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		tenantRepo:     NewTenantRepository(dbConnections.Writer, dbConnections.Reader),
		userRepo:       NewUserRepository(dbConnections.Writer, dbConnections.Reader),
		clientRepo:     NewClientRepository(dbConnections.Writer, dbConnections.Reader),
		payrollRunRepo: NewPayrollRunRepository(dbConnections.Writer, dbConnections.Reader),
		onboardingRepo: NewOnboardingRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Client() repository.ClientRepository {
	return r.clientRepo
}

func (r *postgresRepository) PayrollRun() repository.PayrollRunRepository {
	return r.payrollRunRepo
}

func (r *postgresRepository) Onboarding() repository.OnboardingRepository {
	return r.onboardingRepo
}
