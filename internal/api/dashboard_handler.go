package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/service"
	"github.com/payrollhq/bureau-api/internal/utils"
)

//go:generate mockery --name DashboardService --output ../mocks
type DashboardService interface {
	GetStats(ctx context.Context, p service.Principal) (*dto.DashboardStatsResponse, error)
}

type DashboardHandler struct {
	*BaseHandler
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats godoc
// @Summary Dashboard statistics
// @Description Payroll run counters and the upcoming deadline feed for the principal's tenant
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ctx := h.RequestCtx(c)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}
	email, err := utils.GetEmailFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	stats, err := h.service.GetStats(ctx, service.Principal{
		UserID: userID,
		Email:  email,
		Name:   utils.GetNameFromContext(ctx),
	})
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
