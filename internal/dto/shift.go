package dto

// ── shift type DTOs ──

// CreateShiftTypeRequest creates a shift type.
type CreateShiftTypeRequest struct {
	Name        string `json:"name"         binding:"required,min=2,max=50"`
	StartsAt    string `json:"starts_at"    binding:"required"`
	EndsAt      string `json:"ends_at"      binding:"required"`
	DisplayType string `json:"display_type" binding:"required,max=20"`
	Color       string `json:"color"        binding:"omitempty,max=20"`
}

// UpdateShiftTypeRequest partially updates a shift type.
type UpdateShiftTypeRequest struct {
	Name        *string `json:"name"         binding:"omitempty,min=2,max=50"`
	StartsAt    *string `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
	DisplayType *string `json:"display_type" binding:"omitempty,max=20"`
	Color       *string `json:"color"        binding:"omitempty,max=20"`
	IsActive    *bool   `json:"is_active"`
}

// ShiftTypeResponse is the full shift-type view.
type ShiftTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	DisplayType string `json:"display_type"`
	Color       string `json:"color,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ── shift DTOs ──

// CreateShiftRequest creates a repeating shift pattern. GroundZeroDate
// is a calendar date ("2006-01-02").
type CreateShiftRequest struct {
	Name            string `json:"name"             binding:"required,min=2,max=100"`
	ShiftTypeID     string `json:"shift_type_id"    binding:"omitempty,uuid"`
	ShiftIdentifier string `json:"shift_identifier" binding:"omitempty,max=10"`
	StartsAt        string `json:"starts_at"        binding:"required"`
	EndsAt          string `json:"ends_at"          binding:"required"`
	DaysOn          int    `json:"days_on"          binding:"required,min=1"`
	DaysOff         int    `json:"days_off"         binding:"required,min=1"`
	ShiftOffset     int    `json:"shift_offset"`
	GroundZeroDate  string `json:"ground_zero_date" binding:"required,datetime=2006-01-02"`
}

// UpdateShiftRequest partially updates a shift pattern.
type UpdateShiftRequest struct {
	Name            *string `json:"name"             binding:"omitempty,min=2,max=100"`
	ShiftTypeID     *string `json:"shift_type_id"    binding:"omitempty,uuid"`
	ShiftIdentifier *string `json:"shift_identifier" binding:"omitempty,max=10"`
	StartsAt        *string `json:"starts_at"`
	EndsAt          *string `json:"ends_at"`
	DaysOn          *int    `json:"days_on"          binding:"omitempty,min=1"`
	DaysOff         *int    `json:"days_off"         binding:"omitempty,min=1"`
	ShiftOffset     *int    `json:"shift_offset"`
	GroundZeroDate  *string `json:"ground_zero_date" binding:"omitempty,datetime=2006-01-02"`
	IsActive        *bool   `json:"is_active"`
}

// ShiftListRequest filters the shift list.
type ShiftListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// ShiftResponse is the full shift view.
type ShiftResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	ShiftType       *ShiftTypeResponse `json:"shift_type,omitempty"`
	ShiftIdentifier string             `json:"shift_identifier,omitempty"`
	StartsAt        string             `json:"starts_at"`
	EndsAt          string             `json:"ends_at"`
	DaysOn          int                `json:"days_on"`
	DaysOff         int                `json:"days_off"`
	ShiftOffset     int                `json:"shift_offset"`
	GroundZeroDate  string             `json:"ground_zero_date"`
	IsActive        bool               `json:"is_active"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

// ShiftBrief is the minimal shift reference embedded in other responses.
type ShiftBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}
