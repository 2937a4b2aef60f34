package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceRecord represents one soldier's presence status on one date
type AttendanceRecord struct {
	BaseModel
	SoldierID  uuid.UUID        `json:"soldier_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_soldier_date" validate:"required"`
	Date       time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_soldier_date" validate:"required"`
	Status     AttendanceStatus `json:"status" gorm:"type:varchar(50);not null" validate:"required"`
	Notes      string           `json:"notes" gorm:"type:text"`
	ReportedBy string           `json:"reported_by" gorm:"size:100"`

	// Relationships
	Soldier Soldier `json:"soldier,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AttendanceRecord
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
