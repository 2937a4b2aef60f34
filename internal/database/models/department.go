package models

// Department represents an organizational unit soldiers belong to
type Department struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,max=100"`

	// Relationships
	Soldiers []Soldier `json:"soldiers,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}
