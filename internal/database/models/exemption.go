package models

import (
	"strings"

	"github.com/google/uuid"
)

// ExemptionCode is a closed vocabulary of duty exemptions a soldier can carry
type ExemptionCode string

const (
	ExemptionNight    ExemptionCode = "night"
	ExemptionGuards   ExemptionCode = "guards"
	ExemptionCleaning ExemptionCode = "cleaning"
)

// IsValid checks if the ExemptionCode is valid
func (c ExemptionCode) IsValid() bool {
	switch c {
	case ExemptionNight, ExemptionGuards, ExemptionCleaning:
		return true
	}
	return false
}

// Duty type categories the exemption matcher anchors on.
const (
	CategoryGuards   = "guards"
	CategoryCleaning = "cleaning"
	CategoryNight    = "night"
)

// Matches reports whether this exemption excludes the given duty type.
// Guard and cleaning exemptions match the duty type's category exactly.
// The night exemption additionally matches any duty type whose name
// contains "night" (case-sensitive), even outside the night category.
// Unknown codes match nothing.
func (c ExemptionCode) Matches(dutyType *DutyType) bool {
	switch c {
	case ExemptionGuards:
		return dutyType.Category == CategoryGuards
	case ExemptionCleaning:
		return dutyType.Category == CategoryCleaning
	case ExemptionNight:
		return dutyType.Category == CategoryNight || strings.Contains(dutyType.Name, CategoryNight)
	}
	return false
}

// SoldierExemption attaches an exemption code to a soldier
type SoldierExemption struct {
	BaseModel
	SoldierID     uuid.UUID     `json:"soldier_id" gorm:"type:uuid;not null;index" validate:"required"`
	ExemptionCode ExemptionCode `json:"exemption_code" gorm:"type:varchar(50);not null" validate:"required"`

	// Relationships
	Soldier Soldier `json:"soldier,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SoldierExemption
func (SoldierExemption) TableName() string {
	return "soldier_exemptions"
}
