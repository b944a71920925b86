package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

// PorterHandler serves the porter endpoints.
type PorterHandler struct {
	porterSvc service.PorterService
}

// NewPorterHandler creates a PorterHandler.
func NewPorterHandler(porterSvc service.PorterService) *PorterHandler {
	return &PorterHandler{porterSvc: porterSvc}
}

// ListPorters handles GET /api/v1/porters.
func (h *PorterHandler) ListPorters(c *gin.Context) {
	var req dto.PorterListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	porters, err := h.porterSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": porters})
}

// GetPorter handles GET /api/v1/porters/:id.
func (h *PorterHandler) GetPorter(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	porter, err := h.porterSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, porter)
}

// CreatePorter handles POST /api/v1/porters.
func (h *PorterHandler) CreatePorter(c *gin.Context) {
	var req dto.CreatePorterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	porter, err := h.porterSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.Created(c, porter)
}

// UpdatePorter handles PUT /api/v1/porters/:id.
func (h *PorterHandler) UpdatePorter(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	var req dto.UpdatePorterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	porter, err := h.porterSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, porter)
}

// DeletePorter handles DELETE /api/v1/porters/:id.
func (h *PorterHandler) DeletePorter(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	if err := h.porterSvc.Deactivate(c.Request.Context(), id); err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetTempAssignment handles PUT /api/v1/porters/:id/temp-assignment.
func (h *PorterHandler) SetTempAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	var req dto.SetTempAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	porter, err := h.porterSvc.SetTempAssignment(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, porter)
}

// ClearTempAssignment handles DELETE /api/v1/porters/:id/temp-assignment.
func (h *PorterHandler) ClearTempAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	porter, err := h.porterSvc.ClearTempAssignment(c.Request.Context(), id)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, porter)
}

// ReplaceHours handles PUT /api/v1/porters/:id/hours.
func (h *PorterHandler) ReplaceHours(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	var req dto.ReplacePorterHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	porter, err := h.porterSvc.ReplaceHours(c.Request.Context(), id, &req)
	if err != nil {
		h.handlePorterError(c, err)
		return
	}
	response.OK(c, porter)
}

func (h *PorterHandler) handlePorterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPorterNotFound):
		response.NotFound(c, 16001, "porter not found")
	case errors.Is(err, service.ErrPorterPostingConflict):
		response.BadRequest(c, 16002, "porter cannot hold a department and a service posting at once")
	case errors.Is(err, service.ErrTempWindowInvalid):
		response.BadRequest(c, 16003, "temporary assignment end date is before its start date")
	case errors.Is(err, service.ErrTempLocationRequired):
		response.BadRequest(c, 16004, "temporary assignment needs exactly one of department or service")
	case errors.Is(err, service.ErrDuplicateCustomHoursDay):
		response.BadRequest(c, 16005, "custom hours contain more than one entry for the same weekday")
	case errors.Is(err, service.ErrShiftNotFound):
		response.BadRequest(c, 16006, "referenced shift does not exist")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.BadRequest(c, 16007, "referenced department does not exist")
	case errors.Is(err, service.ErrServiceNotFound):
		response.BadRequest(c, 16008, "referenced service does not exist")
	default:
		response.InternalError(c)
	}
}
