package models

import "github.com/google/uuid"

// Soldier represents a person eligible for duty assignment
type Soldier struct {
	BaseModel
	FullName     string        `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PhoneE164    string        `json:"phone_e164" gorm:"size:20"`
	DepartmentID uuid.UUID     `json:"department_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status       SoldierStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'" validate:"required"`
	// ExcludeFromAutoSchedule marks commanders and leads the planner may be
	// asked to skip.
	ExcludeFromAutoSchedule bool   `json:"exclude_from_auto_schedule" gorm:"default:false"`
	Notes                   string `json:"notes" gorm:"type:text"`

	// Relationships
	Department  Department         `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
	Constraints []SoldierConstraint `json:"constraints,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
	Exemptions  []SoldierExemption  `json:"exemptions,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
	Assignments []DutyAssignment    `json:"assignments,omitempty" gorm:"foreignKey:SoldierID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Soldier
func (Soldier) TableName() string {
	return "soldiers"
}
