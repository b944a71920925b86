package dto

// ── department DTOs ──

// CreateDepartmentRequest creates a department.
type CreateDepartmentRequest struct {
	Name                 string `json:"name"                   binding:"required,min=2,max=100"`
	Is247                bool   `json:"is_24_7"`
	PortersRequiredDay   int    `json:"porters_required_day"   binding:"omitempty,min=0"`
	PortersRequiredNight int    `json:"porters_required_night" binding:"omitempty,min=0"`
}

// UpdateDepartmentRequest partially updates a department.
type UpdateDepartmentRequest struct {
	Name                 *string `json:"name"                   binding:"omitempty,min=2,max=100"`
	Is247                *bool   `json:"is_24_7"`
	PortersRequiredDay   *int    `json:"porters_required_day"   binding:"omitempty,min=0"`
	PortersRequiredNight *int    `json:"porters_required_night" binding:"omitempty,min=0"`
	IsActive             *bool   `json:"is_active"`
}

// DepartmentListRequest filters the department list.
type DepartmentListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// DepartmentResponse is the full department view.
type DepartmentResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Is247                bool   `json:"is_24_7"`
	PortersRequiredDay   int    `json:"porters_required_day"`
	PortersRequiredNight int    `json:"porters_required_night"`
	IsActive             bool   `json:"is_active"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// DepartmentBrief is the minimal department reference embedded in other
// responses.
type DepartmentBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
