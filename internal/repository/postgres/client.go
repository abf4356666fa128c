package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/domain"
)

type ClientRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewClientRepository(writerDB, readerDB *gorm.DB) *ClientRepository {
	return &ClientRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Client, error) {
	var client domain.Client
	db := tenantScope(r.readerDB.WithContext(ctx), tenantID)
	if err := db.First(&client, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, tenantID string) ([]domain.Client, error) {
	var clients []domain.Client
	db := tenantScope(r.readerDB.WithContext(ctx), tenantID)
	if err := db.Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) ListByStatus(ctx context.Context, tenantID string, status domain.ClientStatus) ([]domain.Client, error) {
	var clients []domain.Client
	db := tenantScope(r.readerDB.WithContext(ctx), tenantID)
	err := db.Where("status = ?", status).
		Preload("Onboarding").
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) CountForTenant(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	db := tenantScope(r.readerDB.WithContext(ctx), tenantID)
	if err := db.Model(&domain.Client{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
