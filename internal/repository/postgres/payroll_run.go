package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/domain"
)

type PayrollRunRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPayrollRunRepository(writerDB, readerDB *gorm.DB) *PayrollRunRepository {
	return &PayrollRunRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// ListForTenant returns every run for the tenant with its client preloaded
// for display names. The dashboard classifies in memory, so there is no
// pagination here.
func (r *PayrollRunRepository) ListForTenant(ctx context.Context, tenantID string) ([]domain.PayrollRun, error) {
	var runs []domain.PayrollRun
	db := tenantScope(r.readerDB.WithContext(ctx), tenantID)
	if err := db.Preload("Client").Order("created_at ASC").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
