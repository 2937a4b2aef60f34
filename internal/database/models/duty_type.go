package models

// DutyType represents a catalog entry describing one kind of recurring duty
type DutyType struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:100" validate:"required,max=100"`
	Category string `json:"category" gorm:"not null;size:100" validate:"required,max=100"`
	// WeightPoints is the fairness cost awarded per completed slot.
	WeightPoints          float64       `json:"weight_points" gorm:"not null;default:1" validate:"required,gt=0"`
	DefaultRequiredPeople int           `json:"default_required_people" gorm:"not null;default:1" validate:"required,min=1"`
	DefaultFrequency      DutyFrequency `json:"default_frequency" gorm:"type:varchar(50);not null;default:'daily'" validate:"required"`
	ScheduleKind          ScheduleKind  `json:"schedule_kind" gorm:"type:varchar(50);not null;default:'daily'" validate:"required"`
	// Hour window and rotation interval, meaningful only for hourly duty types.
	DefaultStartHour      int  `json:"default_start_hour" gorm:"not null;default:8" validate:"min=0,max=23"`
	DefaultEndHour        int  `json:"default_end_hour" gorm:"not null;default:20" validate:"min=1,max=24"`
	RotationIntervalHours int  `json:"rotation_interval_hours" gorm:"not null;default:2" validate:"min=1"`
	IsActive              bool `json:"is_active" gorm:"default:true"`

	// Relationships
	Events []DutyEvent `json:"events,omitempty" gorm:"foreignKey:DutyTypeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for DutyType
func (DutyType) TableName() string {
	return "duty_types"
}

// IsHourly reports whether the day is partitioned into rotation slots
func (t *DutyType) IsHourly() bool {
	return t.ScheduleKind == ScheduleKindHourly
}
