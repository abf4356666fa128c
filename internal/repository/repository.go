package repository

import (
	"context"
	"time"

	"github.com/payrollhq/bureau-api/internal/domain"
)

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

//go:generate mockery --name ClientRepository --output ../mocks
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, tenantID, id string) (*domain.Client, error)
	List(ctx context.Context, tenantID string) ([]domain.Client, error)
	ListByStatus(ctx context.Context, tenantID string, status domain.ClientStatus) ([]domain.Client, error)
	CountForTenant(ctx context.Context, tenantID string) (int64, error)
}

//go:generate mockery --name PayrollRunRepository --output ../mocks
type PayrollRunRepository interface {
	ListForTenant(ctx context.Context, tenantID string) ([]domain.PayrollRun, error)
}

//go:generate mockery --name OnboardingRepository --output ../mocks
type OnboardingRepository interface {
	Create(ctx context.Context, onboarding *domain.ClientOnboarding) (*domain.ClientOnboarding, error)
	GetByClientID(ctx context.Context, clientID string) (*domain.ClientOnboarding, error)

	// UpdateChecklist persists the full task list and derived fields in one
	// conditional write scoped by client id and the revision the caller
	// read. It returns the number of rows updated; zero means a concurrent
	// writer won.
	UpdateChecklist(ctx context.Context, clientID string, expectedRevision int, tasks domain.ChecklistTasks, progress int, completedAt *time.Time) (int64, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Tenant() TenantRepository
	User() UserRepository
	Client() ClientRepository
	PayrollRun() PayrollRunRepository
	Onboarding() OnboardingRepository
}
