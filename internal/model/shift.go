package model

import "time"

// ShiftType categorizes shifts for display purposes (e.g. "Day", "Night").
// The set is data, not a closed enumeration.
type ShiftType struct {
	ShiftTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_type_id"`
	Name        string `gorm:"type:varchar(50);not null"                      json:"name"`
	StartsAt    string `gorm:"type:varchar(8);not null"                       json:"starts_at"`
	EndsAt      string `gorm:"type:varchar(8);not null"                       json:"ends_at"`
	DisplayType string `gorm:"type:varchar(20);not null"                      json:"display_type"`
	Color       string `gorm:"type:varchar(20)"                               json:"color,omitempty"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (ShiftType) TableName() string { return "shift_types" }

// Shift is a named repeating work pattern. The on/off cycle is measured
// from GroundZeroDate: cycle position 0 falls on that date (before the
// offset adjustment), and the pattern repeats every DaysOn+DaysOff days.
//
// DaysOn and DaysOff are both >= 1, enforced at create/update and by a
// database CHECK constraint; the cycle calculator relies on it.
type Shift struct {
	ShiftID         string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"shift_id"`
	Name            string    `gorm:"type:varchar(100);not null"                     json:"name"`
	ShiftTypeID     *string   `gorm:"type:uuid"                                      json:"shift_type_id,omitempty"`
	ShiftIdentifier string    `gorm:"type:varchar(10)"                               json:"shift_identifier,omitempty"`
	StartsAt        string    `gorm:"type:varchar(8);not null"                       json:"starts_at"`
	EndsAt          string    `gorm:"type:varchar(8);not null"                       json:"ends_at"`
	DaysOn          int       `gorm:"not null"                                       json:"days_on"`
	DaysOff         int       `gorm:"not null"                                       json:"days_off"`
	ShiftOffset     int       `gorm:"not null;default:0"                             json:"shift_offset"`
	GroundZeroDate  time.Time `gorm:"type:date;not null"                             json:"ground_zero_date"`
	IsActive        bool      `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel

	ShiftType *ShiftType `gorm:"foreignKey:ShiftTypeID;references:ShiftTypeID" json:"shift_type,omitempty"`
}

// TableName sets the table name.
func (Shift) TableName() string { return "shifts" }

// CycleLength returns the full on+off period in days.
func (s *Shift) CycleLength() int { return s.DaysOn + s.DaysOff }
