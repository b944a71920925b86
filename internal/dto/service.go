package dto

// ── service DTOs ──

// CreateServiceRequest creates a hospital-wide porter service.
type CreateServiceRequest struct {
	Name                 string `json:"name"                   binding:"required,min=2,max=100"`
	Code                 string `json:"code"                   binding:"omitempty,max=20"`
	Is247                bool   `json:"is_24_7"`
	PortersRequiredDay   int    `json:"porters_required_day"   binding:"omitempty,min=0"`
	PortersRequiredNight int    `json:"porters_required_night" binding:"omitempty,min=0"`
}

// UpdateServiceRequest partially updates a service.
type UpdateServiceRequest struct {
	Name                 *string `json:"name"                   binding:"omitempty,min=2,max=100"`
	Code                 *string `json:"code"                   binding:"omitempty,max=20"`
	Is247                *bool   `json:"is_24_7"`
	PortersRequiredDay   *int    `json:"porters_required_day"   binding:"omitempty,min=0"`
	PortersRequiredNight *int    `json:"porters_required_night" binding:"omitempty,min=0"`
	IsActive             *bool   `json:"is_active"`
}

// ServiceListRequest filters the service list.
type ServiceListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// ServiceResponse is the full service view.
type ServiceResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Code                 string `json:"code,omitempty"`
	Is247                bool   `json:"is_24_7"`
	PortersRequiredDay   int    `json:"porters_required_day"`
	PortersRequiredNight int    `json:"porters_required_night"`
	IsActive             bool   `json:"is_active"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

// ServiceBrief is the minimal service reference embedded in other
// responses.
type ServiceBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
