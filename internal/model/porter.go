package model

import "time"

// ContractedHoursCustom is the contracted-hours type that makes the
// availability resolver consult per-day custom hours. The overall set of
// contracted-hours types (SHIFT, CUSTOM, RELIEF, ...) is configuration
// data and may grow; only this literal is significant to the core.
const ContractedHoursCustom = "CUSTOM"

// Porter is a member of the portering staff.
//
// A porter may belong to a shift pattern (ShiftID + PorterOffset), hold a
// permanent posting (RegularDepartmentID xor RegularServiceID), and carry
// a temporary override posting for an inclusive date window
// (TempDepartmentID xor TempServiceID + TempAssignmentStart/End).
type Porter struct {
	PorterID              string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"porter_id"`
	Name                  string     `gorm:"type:varchar(100);not null"                     json:"name"`
	Email                 string     `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	PorterType            string     `gorm:"type:varchar(30);not null"                      json:"porter_type"`
	ContractedHoursType   string     `gorm:"type:varchar(30);not null"                      json:"contracted_hours_type"`
	WeeklyContractedHours float64    `gorm:"type:numeric(5,2);not null;default:37.50"       json:"weekly_contracted_hours"`
	ShiftID               *string    `gorm:"type:uuid"                                      json:"shift_id,omitempty"`
	PorterOffset          int        `gorm:"not null;default:0"                             json:"porter_offset"`
	RegularDepartmentID   *string    `gorm:"type:uuid"                                      json:"regular_department_id,omitempty"`
	RegularServiceID      *string    `gorm:"type:uuid"                                      json:"regular_service_id,omitempty"`
	TempDepartmentID      *string    `gorm:"type:uuid"                                      json:"temp_department_id,omitempty"`
	TempServiceID         *string    `gorm:"type:uuid"                                      json:"temp_service_id,omitempty"`
	TempAssignmentStart   *time.Time `gorm:"type:date"                                      json:"temp_assignment_start,omitempty"`
	TempAssignmentEnd     *time.Time `gorm:"type:date"                                      json:"temp_assignment_end,omitempty"`
	IsActive              bool       `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	Shift             *Shift      `gorm:"foreignKey:ShiftID;references:ShiftID"                       json:"shift,omitempty"`
	RegularDepartment *Department `gorm:"foreignKey:RegularDepartmentID;references:DepartmentID"     json:"regular_department,omitempty"`
	RegularService    *Service    `gorm:"foreignKey:RegularServiceID;references:ServiceID"           json:"regular_service,omitempty"`
	TempDepartment    *Department `gorm:"foreignKey:TempDepartmentID;references:DepartmentID"        json:"temp_department,omitempty"`
	TempService       *Service    `gorm:"foreignKey:TempServiceID;references:ServiceID"              json:"temp_service,omitempty"`
	CustomHours       []PorterHours `gorm:"foreignKey:PorterID;references:PorterID"                  json:"custom_hours,omitempty"`
}

// TableName sets the table name.
func (Porter) TableName() string { return "porters" }

// PorterHours is a per-day custom working window for one porter.
// At most one row per (porter, day of week); replaced wholesale.
type PorterHours struct {
	PorterHoursID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"porter_hours_id"`
	PorterID      string `gorm:"type:uuid;not null"                             json:"porter_id"`
	DayOfWeek     int    `gorm:"type:smallint;not null"                         json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartsAt      string `gorm:"type:varchar(8);not null"                       json:"starts_at"`
	EndsAt        string `gorm:"type:varchar(8);not null"                       json:"ends_at"`
	BaseModel
}

// TableName sets the table name.
func (PorterHours) TableName() string { return "porter_hours" }
