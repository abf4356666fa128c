package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/api/dto"
)

//go:generate mockery --name OnboardingService --output ../mocks
type OnboardingService interface {
	ListClients(ctx context.Context) ([]dto.OnboardingClientResponse, error)
	UpdateTask(ctx context.Context, req dto.UpdateOnboardingTaskRequest) (*dto.OnboardingRecordResponse, error)
}

type OnboardingHandler struct {
	*BaseHandler
	service OnboardingService
}

func NewOnboardingHandler(service OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

// ListClients godoc
// @Summary List onboarding clients
// @Description Clients still in onboarding status with their checklist records, newest first
// @Tags onboarding
// @Produce json
// @Success 200 {array} dto.OnboardingClientResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /onboarding/clients [get]
func (h *OnboardingHandler) ListClients(c *gin.Context) {
	clients, err := h.service.ListClients(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// UpdateTask godoc
// @Summary Update a checklist task
// @Description Set one onboarding task's completed flag and recompute progress
// @Tags onboarding
// @Accept json
// @Produce json
// @Param body body dto.UpdateOnboardingTaskRequest true "Task update"
// @Success 200 {object} dto.OnboardingRecordResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /onboarding/tasks [post]
func (h *OnboardingHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateOnboardingTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	record, err := h.service.UpdateTask(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
