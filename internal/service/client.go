package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/repository"
	"github.com/payrollhq/bureau-api/internal/utils"
)

// ClientService creates and lists a tenant's clients. New clients start in
// onboarding status with a checklist seeded from the tenant's template.
type ClientService struct {
	repo repository.Repository
}

func NewClientService(repo repository.Repository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	client, err := s.repo.Client().Create(ctx, &domain.Client{
		TenantID:      tenant.ID,
		Name:          req.Name,
		Status:        domain.ClientStatusOnboarding,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		PayeReference: req.PayeReference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if _, err := s.repo.Onboarding().Create(ctx, &domain.ClientOnboarding{
		ClientID: client.ID,
		Tasks:    checklistFromTemplate(tenant.Settings.ChecklistTemplate),
	}); err != nil {
		return nil, fmt.Errorf("failed to seed onboarding checklist: %w", err)
	}

	resp := dto.FromClient(client)
	return &resp, nil
}

func (s *ClientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.Client().List(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return dto.FromClients(clients), nil
}

// checklistFromTemplate instantiates a client checklist from the tenant's
// template. Tenants created before the template existed fall back to the
// default payroll cycle.
func checklistFromTemplate(template []domain.ChecklistTemplateItem) domain.ChecklistTasks {
	if len(template) == 0 {
		template = domain.DefaultChecklistTemplate()
	}
	tasks := make(domain.ChecklistTasks, len(template))
	for i, item := range template {
		tasks[i] = domain.ChecklistTask{
			ID:        i + 1,
			Name:      item.Name,
			SortOrder: item.SortOrder,
			Required:  true,
		}
	}
	return tasks
}
