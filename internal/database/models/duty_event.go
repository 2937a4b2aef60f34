package models

import (
	"time"

	"github.com/google/uuid"
)

// DutyEvent represents one calendar occurrence of a duty type
type DutyEvent struct {
	BaseModel
	DutyTypeID uuid.UUID   `json:"duty_type_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartAt    time.Time   `json:"start_at" gorm:"not null;index" validate:"required"`
	EndAt      *time.Time  `json:"end_at,omitempty"`
	Status     EventStatus `json:"status" gorm:"type:varchar(50);not null;default:'planned'" validate:"required"`
	CreatedBy  string      `json:"created_by" gorm:"size:100"`
	Notes      string      `json:"notes" gorm:"type:text"`

	// Relationships
	DutyType    DutyType         `json:"duty_type,omitempty" gorm:"foreignKey:DutyTypeID;constraint:OnDelete:CASCADE"`
	Assignments []DutyAssignment `json:"assignments,omitempty" gorm:"foreignKey:DutyEventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DutyEvent
func (DutyEvent) TableName() string {
	return "duty_events"
}
