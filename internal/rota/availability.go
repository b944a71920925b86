package rota

import (
	"time"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// Availability types carried on a resolved record. Open string sets;
// consumers must not assume a fixed cardinality.
const (
	AvailabilityShift             = "SHIFT"
	AvailabilityCustomHours       = "CUSTOM_HOURS"
	AvailabilityRegularAssignment = "REGULAR_ASSIGNMENT"

	AssignmentRegular   = "REGULAR"
	AssignmentTemporary = "TEMPORARY"

	LocationDepartment = "DEPARTMENT"
	LocationService    = "SERVICE"
)

// WorkingHours is a start/end time-of-day pair ("HH:MM" or "HH:MM:SS").
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AssignmentLocation identifies where a porter is posted for the day.
type AssignmentLocation struct {
	Type           string `json:"type"` // DEPARTMENT | SERVICE
	ID             string `json:"id"`
	Name           string `json:"name"`
	AssignmentType string `json:"assignment_type"` // REGULAR | TEMPORARY
}

// AvailabilityRecord is the single best-priority posting for a porter on
// one date.
type AvailabilityRecord struct {
	Porter           *model.Porter      `json:"porter"`
	AvailabilityType string             `json:"availability_type"`
	IsWorkingToday   bool               `json:"is_working_today"`
	WorkingHours     *WorkingHours      `json:"working_hours,omitempty"`
	Location         AssignmentLocation `json:"assignment_location"`
	Shift            *model.Shift       `json:"shift,omitempty"`
}

// resolveInput bundles everything a candidate rule may inspect.
type resolveInput struct {
	porter      *model.Porter
	date        time.Time
	customHours *model.PorterHours // this porter's entry for the date's weekday, or nil
}

// availabilityRule inspects one priority level and either claims the
// porter (non-nil record) or passes.
type availabilityRule func(in resolveInput) *AvailabilityRecord

// availabilityRules is the priority chain, evaluated top to bottom;
// first match wins. Order is the contract: a porter inside a temporary
// assignment window must never surface a shift record.
var availabilityRules = []availabilityRule{
	temporaryAssignmentRule,
	shiftAssignmentRule,
	customHoursRule,
	regularAssignmentRule,
}

// ResolveAvailability returns the porter's highest-priority availability
// record for the date, or nil when the porter is simply not available;
// that is not an error. customHours is the porter's custom-hours row for
// the date's weekday, nil when none exists.
func ResolveAvailability(porter *model.Porter, date time.Time, customHours *model.PorterHours) *AvailabilityRecord {
	if porter == nil {
		return nil
	}
	in := resolveInput{porter: porter, date: date, customHours: customHours}
	for _, rule := range availabilityRules {
		if rec := rule(in); rec != nil {
			return rec
		}
	}
	return nil
}

// temporaryAssignmentRule: an in-window temporary posting overrides
// everything else. Department before service.
func temporaryAssignmentRule(in resolveInput) *AvailabilityRecord {
	p := in.porter
	if !InTempAssignmentWindow(in.date, p) {
		return nil
	}
	if p.TempDepartmentID != nil {
		return newRecord(p, AvailabilityRegularAssignment, AssignmentTemporary,
			LocationDepartment, *p.TempDepartmentID, departmentName(p.TempDepartment), nil, nil)
	}
	if p.TempServiceID != nil {
		return newRecord(p, AvailabilityRegularAssignment, AssignmentTemporary,
			LocationService, *p.TempServiceID, serviceName(p.TempService), nil, nil)
	}
	// Window set but no location: fall through to lower priorities.
	return nil
}

// shiftAssignmentRule: porter belongs to a shift pattern and the pattern
// has them on duty today. Working hours come from the shift.
func shiftAssignmentRule(in resolveInput) *AvailabilityRecord {
	p := in.porter
	if p.ShiftID == nil || p.Shift == nil {
		return nil
	}
	if !IsPorterActiveOnShift(in.date, p, p.Shift) {
		return nil
	}
	hours := &WorkingHours{Start: p.Shift.StartsAt, End: p.Shift.EndsAt}
	if p.RegularDepartmentID != nil {
		return newRecord(p, AvailabilityShift, AssignmentRegular,
			LocationDepartment, *p.RegularDepartmentID, departmentName(p.RegularDepartment), hours, p.Shift)
	}
	if p.RegularServiceID != nil {
		return newRecord(p, AvailabilityShift, AssignmentRegular,
			LocationService, *p.RegularServiceID, serviceName(p.RegularService), hours, p.Shift)
	}
	return nil
}

// customHoursRule: porters on custom contracted hours with an entry for
// this weekday work those hours at their regular posting.
func customHoursRule(in resolveInput) *AvailabilityRecord {
	p := in.porter
	if p.ContractedHoursType != model.ContractedHoursCustom || in.customHours == nil {
		return nil
	}
	hours := &WorkingHours{Start: in.customHours.StartsAt, End: in.customHours.EndsAt}
	if p.RegularDepartmentID != nil {
		return newRecord(p, AvailabilityCustomHours, AssignmentRegular,
			LocationDepartment, *p.RegularDepartmentID, departmentName(p.RegularDepartment), hours, nil)
	}
	if p.RegularServiceID != nil {
		return newRecord(p, AvailabilityCustomHours, AssignmentRegular,
			LocationService, *p.RegularServiceID, serviceName(p.RegularService), hours, nil)
	}
	return nil
}

// regularAssignmentRule: any permanent posting at all (e.g. a 24/7
// department with no shift pattern) makes the porter available with no
// explicit working hours.
func regularAssignmentRule(in resolveInput) *AvailabilityRecord {
	p := in.porter
	if p.RegularDepartmentID != nil {
		return newRecord(p, AvailabilityRegularAssignment, AssignmentRegular,
			LocationDepartment, *p.RegularDepartmentID, departmentName(p.RegularDepartment), nil, nil)
	}
	if p.RegularServiceID != nil {
		return newRecord(p, AvailabilityRegularAssignment, AssignmentRegular,
			LocationService, *p.RegularServiceID, serviceName(p.RegularService), nil, nil)
	}
	return nil
}

func newRecord(p *model.Porter, availabilityType, assignmentType, locType, locID, locName string, hours *WorkingHours, shift *model.Shift) *AvailabilityRecord {
	return &AvailabilityRecord{
		Porter:           p,
		AvailabilityType: availabilityType,
		IsWorkingToday:   true,
		WorkingHours:     hours,
		Location: AssignmentLocation{
			Type:           locType,
			ID:             locID,
			Name:           locName,
			AssignmentType: assignmentType,
		},
		Shift: shift,
	}
}

func departmentName(d *model.Department) string {
	if d == nil {
		return ""
	}
	return d.Name
}

func serviceName(s *model.Service) string {
	if s == nil {
		return ""
	}
	return s.Name
}
