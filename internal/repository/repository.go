package repository

import "gorm.io/gorm"

// Repository is the aggregate entry point for all data access.
type Repository struct {
	Department     DepartmentRepository
	Service        ServiceRepository
	ShiftType      ShiftTypeRepository
	Shift          ShiftRepository
	Porter         PorterRepository
	FrozenSchedule FrozenScheduleRepository
}

// NewRepository wires every repository onto one gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Department:     NewDepartmentRepo(db),
		Service:        NewServiceRepo(db),
		ShiftType:      NewShiftTypeRepo(db),
		Shift:          NewShiftRepo(db),
		Porter:         NewPorterRepo(db),
		FrozenSchedule: NewFrozenScheduleRepo(db),
	}
}
