package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

// ServiceHandler serves the hospital-service endpoints.
type ServiceHandler struct {
	svcArea service.ServiceAreaService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svcArea service.ServiceAreaService) *ServiceHandler {
	return &ServiceHandler{svcArea: svcArea}
}

// ListServices handles GET /api/v1/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	var req dto.ServiceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	svcs, err := h.svcArea.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": svcs})
}

// GetService handles GET /api/v1/services/:id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "service id is required")
		return
	}

	svc, err := h.svcArea.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, svc)
}

// CreateService handles POST /api/v1/services.
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	svc, err := h.svcArea.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.Created(c, svc)
}

// UpdateService handles PUT /api/v1/services/:id.
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "service id is required")
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	svc, err := h.svcArea.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, svc)
}

// DeleteService handles DELETE /api/v1/services/:id.
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "service id is required")
		return
	}

	if err := h.svcArea.Deactivate(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ServiceHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrServiceNotFound):
		response.NotFound(c, 14001, "service not found")
	case errors.Is(err, service.ErrServiceNameExists):
		response.BadRequest(c, 14002, "service name already exists")
	case errors.Is(err, service.ErrServiceHasPorters):
		response.BadRequest(c, 14003, "service has porters assigned and cannot be deactivated")
	default:
		response.InternalError(c)
	}
}
