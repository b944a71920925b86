package handler

import "github.com/Hypha-Media-UK/rotascope2/internal/service"

// Handler is the aggregate entry point for all HTTP handlers.
type Handler struct {
	Department *DepartmentHandler
	Service    *ServiceHandler
	Shift      *ShiftHandler
	Porter     *PorterHandler
	Schedule   *ScheduleHandler
	Export     *ExportHandler
}

// NewHandler wires every handler. The freeze scheduler is passed
// alongside the services so the schedule handler can expose its status
// and manual trigger.
func NewHandler(svc *service.Service, scheduler *service.FreezeScheduler) *Handler {
	return &Handler{
		Department: NewDepartmentHandler(svc.Department),
		Service:    NewServiceHandler(svc.ServiceArea),
		Shift:      NewShiftHandler(svc.Shift),
		Porter:     NewPorterHandler(svc.Porter),
		Schedule:   NewScheduleHandler(svc.Schedule, svc.Freeze, scheduler),
		Export:     NewExportHandler(svc.Export),
	}
}
