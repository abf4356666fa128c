package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/domain"
)

type OnboardingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOnboardingRepository(writerDB, readerDB *gorm.DB) *OnboardingRepository {
	return &OnboardingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *OnboardingRepository) Create(ctx context.Context, onboarding *domain.ClientOnboarding) (*domain.ClientOnboarding, error) {
	if onboarding.ID == "" {
		onboarding.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(onboarding).Error; err != nil {
		return nil, err
	}
	return onboarding, nil
}

func (r *OnboardingRepository) GetByClientID(ctx context.Context, clientID string) (*domain.ClientOnboarding, error) {
	var onboarding domain.ClientOnboarding
	if err := r.readerDB.WithContext(ctx).First(&onboarding, "client_id = ?", clientID).Error; err != nil {
		return nil, err
	}
	return &onboarding, nil
}

// UpdateChecklist writes the task list and derived fields conditionally on
// the revision the caller read. RowsAffected 0 means a concurrent writer
// bumped the revision first.
func (r *OnboardingRepository) UpdateChecklist(ctx context.Context, clientID string, expectedRevision int, tasks domain.ChecklistTasks, progress int, completedAt *time.Time) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.ClientOnboarding{}).
		Where("client_id = ? AND revision = ?", clientID, expectedRevision).
		Updates(map[string]any{
			"tasks":               tasks,
			"progress_percentage": progress,
			"completed_at":        completedAt,
			"revision":            expectedRevision + 1,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
