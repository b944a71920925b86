package model

// Department is a hospital department needing porter coverage.
type Department struct {
	DepartmentID         string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"department_id"`
	Name                 string `gorm:"type:varchar(100);not null"                     json:"name"`
	Is247                bool   `gorm:"column:is_24_7;not null;default:false"          json:"is_24_7"`
	PortersRequiredDay   int    `gorm:"not null;default:1"                             json:"porters_required_day"`
	PortersRequiredNight int    `gorm:"not null;default:1"                             json:"porters_required_night"`
	IsActive             bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Department) TableName() string { return "departments" }
