package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/pkg/cryptox"
)

// GormProvider stores identities in the relational store with Argon2id
// credential hashing.
type GormProvider struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewGormProvider(writerDB, readerDB *gorm.DB) *GormProvider {
	return &GormProvider{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (p *GormProvider) CreateIdentity(ctx context.Context, email, password string, meta Metadata) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := p.readerDB.WithContext(ctx).Model(&Identity{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", ErrIdentityExists
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", err
	}

	id := Identity{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		Metadata:     meta,
	}
	if err := p.writerDB.WithContext(ctx).Create(&id).Error; err != nil {
		return "", err
	}
	return id.ID, nil
}

func (p *GormProvider) DeleteIdentity(ctx context.Context, id string) error {
	return p.writerDB.WithContext(ctx).Delete(&Identity{}, "id = ?", id).Error
}

func (p *GormProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var id Identity
	if err := p.readerDB.WithContext(ctx).First(&id, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyPassword(password, id.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return id.ID, nil
}
