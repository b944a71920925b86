package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

// ShiftHandler serves the shift-type and shift endpoints.
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler creates a ShiftHandler.
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ── shift types ──

// ListShiftTypes handles GET /api/v1/shift-types.
func (h *ShiftHandler) ListShiftTypes(c *gin.Context) {
	types, err := h.shiftSvc.ListTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": types})
}

// CreateShiftType handles POST /api/v1/shift-types.
func (h *ShiftHandler) CreateShiftType(c *gin.Context) {
	var req dto.CreateShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	st, err := h.shiftSvc.CreateType(c.Request.Context(), &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.Created(c, st)
}

// GetShiftType handles GET /api/v1/shift-types/:id.
func (h *ShiftHandler) GetShiftType(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift type id is required")
		return
	}

	st, err := h.shiftSvc.GetType(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, st)
}

// UpdateShiftType handles PUT /api/v1/shift-types/:id.
func (h *ShiftHandler) UpdateShiftType(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift type id is required")
		return
	}

	var req dto.UpdateShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	st, err := h.shiftSvc.UpdateType(c.Request.Context(), id, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, st)
}

// DeleteShiftType handles DELETE /api/v1/shift-types/:id. Deactivates
// rather than removing so historic shifts keep their categorisation.
func (h *ShiftHandler) DeleteShiftType(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift type id is required")
		return
	}

	if err := h.shiftSvc.DeactivateType(c.Request.Context(), id); err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, nil)
}

// ── shifts ──

// ListActiveShifts handles GET /api/v1/shifts/active. The date query
// parameter defaults to today.
func (h *ShiftHandler) ListActiveShifts(c *gin.Context) {
	date, ok := parseDateOrToday(c.Query("date"))
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as 2006-01-02")
		return
	}

	shifts, err := h.shiftSvc.ListActive(c.Request.Context(), date)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"date": date.Format("2006-01-02"), "list": shifts})
}

// ListShifts handles GET /api/v1/shifts.
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	var req dto.ShiftListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}

	shifts, err := h.shiftSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": shifts})
}

// GetShift handles GET /api/v1/shifts/:id.
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift id is required")
		return
	}

	shift, err := h.shiftSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// CreateShift handles POST /api/v1/shifts.
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.Created(c, shift)
}

// UpdateShift handles PUT /api/v1/shifts/:id.
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift id is required")
		return
	}

	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, shift)
}

// DeleteShift handles DELETE /api/v1/shifts/:id.
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "shift id is required")
		return
	}

	if err := h.shiftSvc.Deactivate(c.Request.Context(), id); err != nil {
		h.handleShiftError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 15001, "shift not found")
	case errors.Is(err, service.ErrShiftTypeNotFound):
		response.NotFound(c, 15002, "shift type not found")
	case errors.Is(err, service.ErrShiftHasPorters):
		response.BadRequest(c, 15003, "shift has porters assigned and cannot be deactivated")
	case errors.Is(err, service.ErrInvalidCycleLength):
		response.BadRequest(c, 15004, "days_on and days_off must both be at least 1")
	case errors.Is(err, service.ErrShiftTypeInUse):
		response.BadRequest(c, 15005, "shift type is referenced by shifts and cannot be deactivated")
	default:
		response.InternalError(c)
	}
}
