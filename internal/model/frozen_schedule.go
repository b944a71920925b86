package model

import (
	"time"

	"gorm.io/datatypes"
)

// FrozenSchedule is an immutable point-in-time snapshot of a day's
// computed schedule, taken once daily before the day shift begins.
// At most one row per date; rows are never updated or deleted.
type FrozenSchedule struct {
	FrozenScheduleID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"frozen_schedule_id"`
	Date             time.Time      `gorm:"type:date;not null;uniqueIndex"                 json:"date"`
	ScheduleData     datatypes.JSON `gorm:"type:jsonb;not null"                            json:"schedule_data"`
	FrozenAt         time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"frozen_at"`
}

// TableName sets the table name.
func (FrozenSchedule) TableName() string { return "frozen_schedules" }

// FrozenPorterAssignment is one (shift, porter) pair denormalized from a
// frozen snapshot for direct querying.
type FrozenPorterAssignment struct {
	FrozenPorterAssignmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"frozen_porter_assignment_id"`
	FrozenScheduleID         string `gorm:"type:uuid;not null;index"                       json:"frozen_schedule_id"`
	PorterID                 string `gorm:"type:uuid;not null"                             json:"porter_id"`
	ShiftID                  string `gorm:"type:uuid;not null"                             json:"shift_id"`
	IsActiveToday            bool   `gorm:"not null;default:false"                         json:"is_active_today"`
	IsTemporarilyAssigned    bool   `gorm:"not null;default:false"                         json:"is_temporarily_assigned"`
	TempAssignmentLocation   string `gorm:"type:varchar(100)"                              json:"temp_assignment_location,omitempty"`
}

// TableName sets the table name.
func (FrozenPorterAssignment) TableName() string { return "frozen_porter_assignments" }
