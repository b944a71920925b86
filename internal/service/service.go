package service

import (
	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
	"github.com/Hypha-Media-UK/rotascope2/pkg/redis"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Department  DepartmentService
	ServiceArea ServiceAreaService
	Shift       ShiftService
	Porter      PorterService
	Schedule    ScheduleService
	Freeze      FreezeService
	Export      ExportService
}

// NewService wires every service. cache may be nil when Redis is
// unavailable; the schedule service then recomputes on every request.
func NewService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) *Service {
	schedule := NewScheduleService(repo, cache, logger)
	return &Service{
		Department:  NewDepartmentService(repo, logger),
		ServiceArea: NewServiceAreaService(repo, logger),
		Shift:       NewShiftService(repo, logger),
		Porter:      NewPorterService(repo, logger),
		Schedule:    schedule,
		Freeze:      NewFreezeService(repo, schedule, logger),
		Export:      NewExportService(repo, schedule, logger),
	}
}
