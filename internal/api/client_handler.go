package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrollhq/bureau-api/internal/api/dto"
)

//go:generate mockery --name ClientService --output ../mocks
type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
}

type ClientHandler struct {
	*BaseHandler
	service ClientService
}

func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// CreateClient godoc
// @Summary Create a client
// @Description Create a client company in onboarding status with a seeded checklist
// @Tags clients
// @Accept json
// @Produce json
// @Param body body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	client, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ListClients godoc
// @Summary List clients
// @Description All of the tenant's clients, newest first
// @Tags clients
// @Produce json
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}
