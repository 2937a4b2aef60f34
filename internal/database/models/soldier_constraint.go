package models

import (
	"time"

	"github.com/google/uuid"
)

// SoldierConstraint represents a hard scheduling exclusion for a soldier:
// either a recurring day of week (0 = Sunday) or an inclusive date range.
type SoldierConstraint struct {
	BaseModel
	SoldierID      uuid.UUID      `json:"soldier_id" gorm:"type:uuid;not null;index" validate:"required"`
	DayOfWeek      *int           `json:"day_of_week,omitempty" gorm:"type:smallint" validate:"omitempty,min=0,max=6"`
	DateFrom       *time.Time     `json:"date_from,omitempty" gorm:"type:date"`
	DateTo         *time.Time     `json:"date_to,omitempty" gorm:"type:date"`
	ConstraintType ConstraintType `json:"constraint_type" gorm:"type:varchar(50);not null" validate:"required"`
	Details        string         `json:"details" gorm:"type:text"`

	// Relationships
	Soldier Soldier `json:"soldier,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SoldierConstraint
func (SoldierConstraint) TableName() string {
	return "soldier_constraints"
}

// AppliesTo reports whether the constraint blocks the given calendar date.
// Only no_assign constraints participate in scheduling; other types are
// recorded but not interpreted here.
func (c *SoldierConstraint) AppliesTo(date time.Time) bool {
	if c.ConstraintType != ConstraintTypeNoAssign {
		return false
	}
	if c.DayOfWeek != nil && int(date.Weekday()) == *c.DayOfWeek {
		return true
	}
	if c.DateFrom != nil && c.DateTo != nil {
		day := dateOnly(date)
		if !day.Before(dateOnly(*c.DateFrom)) && !day.After(dateOnly(*c.DateTo)) {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
