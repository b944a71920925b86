package model

// Service is a hospital-wide porter service (e.g. post round, waste
// collection) that needs coverage independently of any department.
type Service struct {
	ServiceID            string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"service_id"`
	Name                 string `gorm:"type:varchar(100);not null"                     json:"name"`
	Code                 string `gorm:"type:varchar(20)"                               json:"code,omitempty"`
	Is247                bool   `gorm:"column:is_24_7;not null;default:false"          json:"is_24_7"`
	PortersRequiredDay   int    `gorm:"not null;default:1"                             json:"porters_required_day"`
	PortersRequiredNight int    `gorm:"not null;default:1"                             json:"porters_required_night"`
	IsActive             bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Service) TableName() string { return "services" }
