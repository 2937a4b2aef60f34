package models

import "github.com/google/uuid"

// PointsLedgerEntry is an append-only record of fairness points. A
// soldier's current load is the sum of deltas within the trailing window.
// Entries are never updated or deleted.
type PointsLedgerEntry struct {
	BaseModel
	SoldierID   uuid.UUID  `json:"soldier_id" gorm:"type:uuid;not null;index" validate:"required"`
	DutyEventID *uuid.UUID `json:"duty_event_id,omitempty" gorm:"type:uuid;index"`
	PointsDelta float64    `json:"points_delta" gorm:"not null" validate:"required"`
	Reason      string     `json:"reason" gorm:"type:text"`

	// Relationships
	Soldier   Soldier    `json:"soldier,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
	DutyEvent *DutyEvent `json:"duty_event,omitempty" gorm:"foreignKey:DutyEventID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for PointsLedgerEntry
func (PointsLedgerEntry) TableName() string {
	return "points_ledger"
}
