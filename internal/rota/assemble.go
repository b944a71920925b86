package rota

import (
	"time"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// AssignedPorter is one porter on an active shift's roster, with raw
// activity and temp-override flags. Unlike the resolver this reports
// every porter nominally on the shift, on duty or not; downstream
// consumers need the whole roster, not just today's available subset.
type AssignedPorter struct {
	Porter                 *model.Porter `json:"porter"`
	IsActiveToday          bool          `json:"is_active_today"`
	IsTemporarilyAssigned  bool          `json:"is_temporarily_assigned"`
	TempAssignmentLocation string        `json:"temp_assignment_location,omitempty"`
}

// ShiftRoster is one active shift with its full assigned-porter roster.
type ShiftRoster struct {
	Shift           *model.Shift     `json:"shift"`
	AssignedPorters []AssignedPorter `json:"assigned_porters"`
	IsActiveToday   bool             `json:"is_active_today"`
}

// Schedule is the composite per-date view consumed by the schedule
// endpoint and the freeze job.
type Schedule struct {
	Date         time.Time          `json:"date"`
	Departments  []model.Department `json:"departments"`
	Services     []model.Service    `json:"services"`
	ActiveShifts []ShiftRoster      `json:"active_shifts"`
}

// AssembleSchedule builds the composite schedule view for a date: the
// shifts whose cycle is active, each with all porters assigned to it and
// their per-porter activity/temp-override flags, alongside the full
// department and service lists.
func AssembleSchedule(date time.Time, departments []model.Department, services []model.Service, shifts []model.Shift, porters []model.Porter) *Schedule {
	day := TruncateToDay(date)

	rosters := make([]ShiftRoster, 0, len(shifts))
	for i := range shifts {
		shift := &shifts[i]
		if !IsShiftActive(day, shift) {
			continue
		}

		var assigned []AssignedPorter
		for j := range porters {
			porter := &porters[j]
			if porter.ShiftID == nil || *porter.ShiftID != shift.ShiftID {
				continue
			}
			assigned = append(assigned, AssignedPorter{
				Porter:                 porter,
				IsActiveToday:          IsPorterActiveOnShift(day, porter, shift),
				IsTemporarilyAssigned:  InTempAssignmentWindow(day, porter),
				TempAssignmentLocation: tempLocationName(porter, day),
			})
		}

		rosters = append(rosters, ShiftRoster{
			Shift:           shift,
			AssignedPorters: assigned,
			IsActiveToday:   true,
		})
	}

	return &Schedule{
		Date:         day,
		Departments:  departments,
		Services:     services,
		ActiveShifts: rosters,
	}
}

// tempLocationName names the in-effect temporary posting, department
// before service, or "" when the porter is not temporarily assigned.
func tempLocationName(p *model.Porter, day time.Time) string {
	if !InTempAssignmentWindow(day, p) {
		return ""
	}
	if name := departmentName(p.TempDepartment); name != "" {
		return name
	}
	return serviceName(p.TempService)
}
