package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

// DepartmentHandler serves the department endpoints.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments handles GET /api/v1/departments.
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	depts, err := h.deptSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": depts})
}

// GetDepartment handles GET /api/v1/departments/:id.
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "department id is required")
		return
	}

	dept, err := h.deptSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, dept)
}

// CreateDepartment handles POST /api/v1/departments.
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.Created(c, dept)
}

// UpdateDepartment handles PUT /api/v1/departments/:id.
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "department id is required")
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	dept, err := h.deptSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, dept)
}

// DeleteDepartment handles DELETE /api/v1/departments/:id.
// Departments are deactivated, never removed, so history stays intact.
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "department id is required")
		return
	}

	if err := h.deptSvc.Deactivate(c.Request.Context(), id); err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 13001, "department not found")
	case errors.Is(err, service.ErrDepartmentNameExists):
		response.BadRequest(c, 13002, "department name already exists")
	case errors.Is(err, service.ErrDepartmentHasPorters):
		response.BadRequest(c, 13003, "department has porters assigned and cannot be deactivated")
	default:
		response.InternalError(c)
	}
}
