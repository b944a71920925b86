package dto

// ── porter DTOs ──

// CreatePorterRequest creates a porter.
type CreatePorterRequest struct {
	Name                  string  `json:"name"                    binding:"required,min=2,max=100"`
	Email                 string  `json:"email"                   binding:"omitempty,email"`
	PorterType            string  `json:"porter_type"             binding:"required,max=30"`
	ContractedHoursType   string  `json:"contracted_hours_type"   binding:"required,max=30"`
	WeeklyContractedHours float64 `json:"weekly_contracted_hours" binding:"omitempty,min=0"`
	ShiftID               *string `json:"shift_id"                binding:"omitempty,uuid"`
	PorterOffset          int     `json:"porter_offset"`
	RegularDepartmentID   *string `json:"regular_department_id"   binding:"omitempty,uuid"`
	RegularServiceID      *string `json:"regular_service_id"      binding:"omitempty,uuid"`
}

// UpdatePorterRequest partially updates a porter.
type UpdatePorterRequest struct {
	Name                  *string  `json:"name"                    binding:"omitempty,min=2,max=100"`
	Email                 *string  `json:"email"                   binding:"omitempty,email"`
	PorterType            *string  `json:"porter_type"             binding:"omitempty,max=30"`
	ContractedHoursType   *string  `json:"contracted_hours_type"   binding:"omitempty,max=30"`
	WeeklyContractedHours *float64 `json:"weekly_contracted_hours" binding:"omitempty,min=0"`
	ShiftID               *string  `json:"shift_id"                binding:"omitempty,uuid"`
	PorterOffset          *int     `json:"porter_offset"`
	RegularDepartmentID   *string  `json:"regular_department_id"   binding:"omitempty,uuid"`
	RegularServiceID      *string  `json:"regular_service_id"      binding:"omitempty,uuid"`
	IsActive              *bool    `json:"is_active"`
}

// PorterListRequest filters the porter list.
type PorterListRequest struct {
	IncludeInactive bool   `form:"include_inactive"`
	ShiftID         string `form:"shift_id" binding:"omitempty,uuid"`
}

// SetTempAssignmentRequest places a porter on a temporary posting for an
// inclusive date window. Exactly one of department_id / service_id must
// be set; the service layer enforces the exclusivity.
type SetTempAssignmentRequest struct {
	DepartmentID *string `json:"department_id" binding:"omitempty,uuid"`
	ServiceID    *string `json:"service_id"    binding:"omitempty,uuid"`
	StartDate    string  `json:"start_date"    binding:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date"      binding:"required,datetime=2006-01-02"`
}

// PorterHoursEntry is one weekday's custom working window.
type PorterHoursEntry struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartsAt  string `json:"starts_at"   binding:"required"`
	EndsAt    string `json:"ends_at"     binding:"required"`
}

// ReplacePorterHoursRequest replaces a porter's custom hours wholesale.
// An empty list clears them.
type ReplacePorterHoursRequest struct {
	Hours []PorterHoursEntry `json:"hours" binding:"dive"`
}

// PorterResponse is the full porter view.
type PorterResponse struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	Email                 string             `json:"email,omitempty"`
	PorterType            string             `json:"porter_type"`
	ContractedHoursType   string             `json:"contracted_hours_type"`
	WeeklyContractedHours float64            `json:"weekly_contracted_hours"`
	Shift                 *ShiftBrief        `json:"shift,omitempty"`
	PorterOffset          int                `json:"porter_offset"`
	RegularDepartment     *DepartmentBrief   `json:"regular_department,omitempty"`
	RegularService        *ServiceBrief      `json:"regular_service,omitempty"`
	TempDepartment        *DepartmentBrief   `json:"temp_department,omitempty"`
	TempService           *ServiceBrief      `json:"temp_service,omitempty"`
	TempAssignmentStart   string             `json:"temp_assignment_start,omitempty"`
	TempAssignmentEnd     string             `json:"temp_assignment_end,omitempty"`
	CustomHours           []PorterHoursEntry `json:"custom_hours,omitempty"`
	IsActive              bool               `json:"is_active"`
	CreatedAt             string             `json:"created_at"`
	UpdatedAt             string             `json:"updated_at"`
}
