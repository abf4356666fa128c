package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/domain"
	"github.com/payrollhq/bureau-api/internal/repository"
	"github.com/payrollhq/bureau-api/internal/utils"
)

// OnboardingService reads and mutates client onboarding checklists,
// keeping progress percentage and completion timestamp derived from the
// task list.
type OnboardingService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewOnboardingService(repo repository.Repository) *OnboardingService {
	return &OnboardingService{
		repo: repo,
		now:  time.Now,
	}
}

// ListClients returns the tenant's clients still in onboarding status,
// newest first, each with its checklist record.
func (s *OnboardingService) ListClients(ctx context.Context) ([]dto.OnboardingClientResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.Client().ListByStatus(ctx, tenantID, domain.ClientStatusOnboarding)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding clients: %w", err)
	}
	return dto.FromOnboardingClients(clients), nil
}

// UpdateTask sets one task's completed flag and recomputes the derived
// fields. An unknown task id leaves the list unchanged but still persists
// the recomputed record. The write is conditional on the revision read
// here; losing that race yields ErrOnboardingConflict.
func (s *OnboardingService) UpdateTask(ctx context.Context, req dto.UpdateOnboardingTaskRequest) (*dto.OnboardingRecordResponse, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.Client().GetByID(ctx, tenantID, req.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	onboarding, err := s.repo.Onboarding().GetByClientID(ctx, client.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOnboardingNotFound
		}
		return nil, fmt.Errorf("failed to load onboarding record: %w", err)
	}

	tasks := onboarding.Tasks.WithTaskCompleted(req.TaskID, *req.Completed)
	progress := tasks.Progress()

	var completedAt *time.Time
	if progress == 100 {
		t := s.now()
		completedAt = &t
	}

	rows, err := s.repo.Onboarding().UpdateChecklist(ctx, client.ID, onboarding.Revision, tasks, progress, completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist: %w", err)
	}
	if rows == 0 {
		return nil, ErrOnboardingConflict
	}

	onboarding.Tasks = tasks
	onboarding.ProgressPercentage = progress
	onboarding.CompletedAt = completedAt
	onboarding.Revision++

	return dto.FromOnboarding(onboarding), nil
}
