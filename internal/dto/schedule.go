package dto

import "encoding/json"

// ── schedule / availability DTOs ──

// ScheduleQueryRequest selects the date for a computed schedule view.
// An empty date means today.
type ScheduleQueryRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// AvailabilityQueryRequest selects the date for a porter availability
// lookup.
type AvailabilityQueryRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ── freeze DTOs ──

// FreezeRequest triggers a manual freeze for a date. An empty date means
// today.
type FreezeRequest struct {
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// FreezeResponse reports the outcome of a freeze operation.
type FreezeResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	FrozenAt       string `json:"frozen_at"`
	AlreadyFrozen  bool   `json:"already_frozen"`
	AssignmentRows int    `json:"assignment_rows"`
}

// FrozenScheduleResponse returns a stored snapshot. ScheduleData is the
// versioned payload exactly as frozen.
type FrozenScheduleResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	FrozenAt     string          `json:"frozen_at"`
	ScheduleData json.RawMessage `json:"schedule_data"`
}

// FrozenAssignmentResponse is one denormalized (shift, porter) row from
// a snapshot.
type FrozenAssignmentResponse struct {
	PorterID               string `json:"porter_id"`
	ShiftID                string `json:"shift_id"`
	IsActiveToday          bool   `json:"is_active_today"`
	IsTemporarilyAssigned  bool   `json:"is_temporarily_assigned"`
	TempAssignmentLocation string `json:"temp_assignment_location,omitempty"`
}

// FreezeSchedulerStatusResponse describes the daily freeze job.
type FreezeSchedulerStatusResponse struct {
	Running   bool   `json:"running"`
	NextRunAt string `json:"next_run_at,omitempty"`
}

// ── export DTOs ──

// ExportScheduleRequest selects the date for an XLSX day-sheet export.
type ExportScheduleRequest struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ExportRotaRequest selects the window for a porter's iCalendar rota
// export. Days defaults to a sensible horizon when omitted.
type ExportRotaRequest struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	Days int    `form:"days" binding:"omitempty,min=1,max=366"`
}
