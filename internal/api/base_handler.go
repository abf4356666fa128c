package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/api/dto"
	"github.com/payrollhq/bureau-api/internal/service"
	"github.com/payrollhq/bureau-api/internal/utils"
	"github.com/payrollhq/bureau-api/internal/validation"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// RespondError maps service errors onto HTTP statuses. Anything unmapped
// is an internal error.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.Error{Error: "validation failed", Details: verr})
	case errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, utils.ErrNoClaimsInContext):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrClientNotFound),
		errors.Is(err, service.ErrOnboardingNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrOnboardingConflict):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
