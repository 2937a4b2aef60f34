package models

import (
	"time"

	"github.com/google/uuid"
)

// DutyAssignment binds one duty event to one soldier. Slot windows are set
// only for hourly events; a whole-day event's assignments have none.
type DutyAssignment struct {
	BaseModel
	DutyEventID uuid.UUID  `json:"duty_event_id" gorm:"type:uuid;not null;index" validate:"required"`
	SoldierID   uuid.UUID  `json:"soldier_id" gorm:"type:uuid;not null;index" validate:"required"`
	SlotStartAt *time.Time `json:"slot_start_at,omitempty"`
	SlotEndAt   *time.Time `json:"slot_end_at,omitempty"`
	RoleLabel   string     `json:"role_label" gorm:"size:100"`
	IsConfirmed bool       `json:"is_confirmed" gorm:"default:false"`
	DoneAt      *time.Time `json:"done_at,omitempty"`

	// Relationships
	DutyEvent DutyEvent `json:"duty_event,omitempty" gorm:"foreignKey:DutyEventID;constraint:OnDelete:CASCADE"`
	Soldier   Soldier   `json:"soldier,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DutyAssignment
func (DutyAssignment) TableName() string {
	return "duty_assignments"
}
