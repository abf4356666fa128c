package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/identity"
	"github.com/payrollhq/bureau-api/internal/repository"
)

//go:generate mockery --name TokenIssuer --output ../mocks
type TokenIssuer interface {
	GenerateToken(userID, tenantID, email string, roles []string) (string, error)
}

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	repo   repository.Repository
	idp    identity.Provider
	tokens TokenIssuer
}

func NewAuthService(repo repository.Repository, idp identity.Provider, tokens TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		idp:    idp,
		tokens: tokens,
	}
}

// Login checks the credential with the identity provider, loads the user
// profile and mints a JWT. A missing profile or inactive user reports the
// same ErrInvalidCredentials as a bad password.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.idp.VerifyPassword(ctx, email, req.Password); err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, fmt.Errorf("failed to verify credentials: %w", err)
	}

	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.TenantID, user.Email, []string{string(user.Role)})
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     string(user.Role),
	}, nil
}
