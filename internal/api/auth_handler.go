package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/api/dto"
)

//go:generate mockery --name ProvisioningService --output ../mocks
type ProvisioningService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
}

//go:generate mockery --name AuthService --output ../mocks
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	provisioning ProvisioningService
	auth         AuthService
}

func NewAuthHandler(provisioning ProvisioningService, auth AuthService) *AuthHandler {
	return &AuthHandler{provisioning: provisioning, auth: auth}
}

// Register godoc
// @Summary Register a new bureau
// @Description Create an identity, tenant and admin profile from one registration request
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration details"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.provisioning.Register(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.auth.Login(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
