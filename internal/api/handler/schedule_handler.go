package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

// ScheduleHandler serves the computed schedule, availability and freeze
// endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
	freezeSvc   service.FreezeService
	scheduler   *service.FreezeScheduler
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService, freezeSvc service.FreezeService, scheduler *service.FreezeScheduler) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc, freezeSvc: freezeSvc, scheduler: scheduler}
}

// parseDateOrToday interprets an optional "2006-01-02" date parameter.
func parseDateOrToday(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Now(), true
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// GetSchedule handles GET /api/v1/schedule?date=.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	var req dto.ScheduleQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	schedule, err := h.scheduleSvc.GetSchedule(c.Request.Context(), date)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, schedule)
}

// ListAvailability handles GET /api/v1/availability?date=.
func (h *ScheduleHandler) ListAvailability(c *gin.Context) {
	var req dto.AvailabilityQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	records, err := h.scheduleSvc.ListAvailability(c.Request.Context(), date)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": records})
}

// GetPorterAvailability handles GET /api/v1/porters/:id/availability?date=.
func (h *ScheduleHandler) GetPorterAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	var req dto.AvailabilityQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	record, err := h.scheduleSvc.GetPorterAvailability(c.Request.Context(), id, date)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	// A nil record is a legitimate answer: the porter is off that day.
	response.OK(c, gin.H{"available": record != nil, "record": record})
}

// FreezeSchedule handles POST /api/v1/schedule/freeze. This is the
// manual trigger; errors surface to the caller unlike the timer path.
func (h *ScheduleHandler) FreezeSchedule(c *gin.Context) {
	// A body-less trigger freezes today; only a present-but-broken body
	// is a client error.
	var req dto.FreezeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, 10001, "invalid request body")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	result, err := h.scheduler.RunManually(c.Request.Context(), date)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	if result.AlreadyFrozen {
		response.OK(c, result)
		return
	}
	response.Created(c, result)
}

// GetFrozenSchedule handles GET /api/v1/schedule/frozen?date=.
func (h *ScheduleHandler) GetFrozenSchedule(c *gin.Context) {
	var req dto.ScheduleQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	snapshot, err := h.freezeSvc.GetFrozen(c.Request.Context(), date)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, snapshot)
}

// GetFrozenAssignments handles GET /api/v1/schedule/frozen/assignments?date=.
func (h *ScheduleHandler) GetFrozenAssignments(c *gin.Context) {
	var req dto.ScheduleQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	rows, err := h.freezeSvc.GetFrozenAssignments(c.Request.Context(), date)
	if err != nil {
		h.handleScheduleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": rows})
}

// GetFreezeStatus handles GET /api/v1/schedule/freeze-status.
func (h *ScheduleHandler) GetFreezeStatus(c *gin.Context) {
	response.OK(c, h.scheduler.Status())
}

func (h *ScheduleHandler) handleScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPorterNotFound):
		response.NotFound(c, 16001, "porter not found")
	case errors.Is(err, service.ErrFrozenScheduleNotFound):
		response.NotFound(c, 17001, "no frozen schedule exists for that date")
	case errors.Is(err, service.ErrFrozenSchemaVersion):
		response.Error(c, 500, 17002, "frozen schedule payload has an unsupported schema version")
	default:
		response.InternalError(c)
	}
}
