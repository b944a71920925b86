package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/service"
	"github.com/Hypha-Media-UK/rotascope2/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler serves file downloads of the computed schedule.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportDaySheet handles GET /api/v1/export/day-sheet?date=.
func (h *ExportHandler) ExportDaySheet(c *gin.Context) {
	var req dto.ExportScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	date, ok := parseDateOrToday(req.Date)
	if !ok {
		response.BadRequest(c, 10001, "date must be formatted as YYYY-MM-DD")
		return
	}

	buf, filename, err := h.exportSvc.ExportDaySheet(c.Request.Context(), date)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportPorterRota handles GET /api/v1/export/porters/:id/rota?from=&days=.
func (h *ExportHandler) ExportPorterRota(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "porter id is required")
		return
	}

	var req dto.ExportRotaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters")
		return
	}
	from, ok := parseDateOrToday(req.From)
	if !ok {
		response.BadRequest(c, 10001, "from must be formatted as YYYY-MM-DD")
		return
	}

	buf, filename, err := h.exportSvc.ExportPorterRota(c.Request.Context(), id, from, req.Days)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPorterNotFound):
		response.NotFound(c, 16001, "porter not found")
	case errors.Is(err, service.ErrExportEmptySchedule):
		response.NotFound(c, 18001, "no active shifts on that date, nothing to export")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.Error(c, http.StatusInternalServerError, 18002, "generating the export file failed")
	default:
		response.InternalError(c)
	}
}
