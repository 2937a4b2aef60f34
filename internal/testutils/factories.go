package testutils

import (
	"fmt"
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create() *models.Department {
	id := uuid.New()
	return &models.Department{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix avoids collisions with the department name index
		Name: "Platoon " + id.String()[:8],
	}
}

// WithName sets a custom name for the department
func (f *DepartmentFactory) WithName(name string) *models.Department {
	dept := f.Create()
	dept.Name = name
	return dept
}

// SoldierFactory provides methods to create test Soldier data
type SoldierFactory struct {
	counter int
}

// NewSoldierFactory creates a new SoldierFactory
func NewSoldierFactory() *SoldierFactory {
	return &SoldierFactory{}
}

// Create creates a test Soldier with default values
func (f *SoldierFactory) Create(departmentID uuid.UUID) *models.Soldier {
	f.counter++
	id := uuid.New()
	return &models.Soldier{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:     fmt.Sprintf("Soldier %d", f.counter),
		PhoneE164:    fmt.Sprintf("+97250%07d", f.counter),
		DepartmentID: departmentID,
		Status:       models.SoldierStatusActive,
	}
}

// WithStatus creates a soldier with a custom status
func (f *SoldierFactory) WithStatus(departmentID uuid.UUID, status models.SoldierStatus) *models.Soldier {
	soldier := f.Create(departmentID)
	soldier.Status = status
	return soldier
}

// OptedOut creates a soldier excluded from auto scheduling
func (f *SoldierFactory) OptedOut(departmentID uuid.UUID) *models.Soldier {
	soldier := f.Create(departmentID)
	soldier.ExcludeFromAutoSchedule = true
	return soldier
}

// DutyTypeFactory provides methods to create test DutyType data
type DutyTypeFactory struct {
	counter int
}

// NewDutyTypeFactory creates a new DutyTypeFactory
func NewDutyTypeFactory() *DutyTypeFactory {
	return &DutyTypeFactory{}
}

// Create creates a whole-day daily duty type with default values
func (f *DutyTypeFactory) Create() *models.DutyType {
	f.counter++
	return &models.DutyType{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                  fmt.Sprintf("Kitchen Duty %d", f.counter),
		Category:              "kitchen",
		WeightPoints:          2,
		DefaultRequiredPeople: 2,
		DefaultFrequency:      models.DutyFrequencyDaily,
		ScheduleKind:          models.ScheduleKindDaily,
		DefaultStartHour:      8,
		DefaultEndHour:        20,
		RotationIntervalHours: 2,
		IsActive:              true,
	}
}

// Hourly creates an hourly duty type rotating over the given window
func (f *DutyTypeFactory) Hourly(startHour, endHour, intervalHours int) *models.DutyType {
	dutyType := f.Create()
	dutyType.Name = fmt.Sprintf("Guard Rotation %d", f.counter)
	dutyType.Category = "guards"
	dutyType.ScheduleKind = models.ScheduleKindHourly
	dutyType.DefaultStartHour = startHour
	dutyType.DefaultEndHour = endHour
	dutyType.RotationIntervalHours = intervalHours
	dutyType.DefaultRequiredPeople = 1
	return dutyType
}

// WithCategory creates a duty type in a custom category
func (f *DutyTypeFactory) WithCategory(category string) *models.DutyType {
	dutyType := f.Create()
	dutyType.Category = category
	dutyType.Name = fmt.Sprintf("%s duty %d", category, f.counter)
	return dutyType
}

// DutyEventFactory provides methods to create test DutyEvent data
type DutyEventFactory struct{}

// NewDutyEventFactory creates a new DutyEventFactory
func NewDutyEventFactory() *DutyEventFactory {
	return &DutyEventFactory{}
}

// Create creates a planned duty event starting at the given time
func (f *DutyEventFactory) Create(dutyTypeID uuid.UUID, startAt time.Time) *models.DutyEvent {
	return &models.DutyEvent{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DutyTypeID: dutyTypeID,
		StartAt:    startAt,
		Status:     models.EventStatusPlanned,
		CreatedBy:  "test",
	}
}

// AssignmentFactory provides methods to create test DutyAssignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an assignment binding a soldier to an event
func (f *AssignmentFactory) Create(eventID, soldierID uuid.UUID) *models.DutyAssignment {
	return &models.DutyAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DutyEventID: eventID,
		SoldierID:   soldierID,
	}
}

// WithSlot creates an assignment covering an hourly slot window
func (f *AssignmentFactory) WithSlot(eventID, soldierID uuid.UUID, slotStart, slotEnd time.Time) *models.DutyAssignment {
	assignment := f.Create(eventID, soldierID)
	assignment.SlotStartAt = &slotStart
	assignment.SlotEndAt = &slotEnd
	return assignment
}

// ConstraintFactory provides methods to create test SoldierConstraint data
type ConstraintFactory struct{}

// NewConstraintFactory creates a new ConstraintFactory
func NewConstraintFactory() *ConstraintFactory {
	return &ConstraintFactory{}
}

// Weekday creates a recurring no-assign constraint for a day of week (0 = Sunday)
func (f *ConstraintFactory) Weekday(soldierID uuid.UUID, dayOfWeek int) *models.SoldierConstraint {
	return &models.SoldierConstraint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SoldierID:      soldierID,
		DayOfWeek:      &dayOfWeek,
		ConstraintType: models.ConstraintTypeNoAssign,
	}
}

// DateRange creates a no-assign constraint over an inclusive date range
func (f *ConstraintFactory) DateRange(soldierID uuid.UUID, from, to time.Time) *models.SoldierConstraint {
	return &models.SoldierConstraint{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SoldierID:      soldierID,
		DateFrom:       &from,
		DateTo:         &to,
		ConstraintType: models.ConstraintTypeNoAssign,
	}
}

// ExemptionFactory provides methods to create test SoldierExemption data
type ExemptionFactory struct{}

// NewExemptionFactory creates a new ExemptionFactory
func NewExemptionFactory() *ExemptionFactory {
	return &ExemptionFactory{}
}

// Create attaches an exemption code to a soldier
func (f *ExemptionFactory) Create(soldierID uuid.UUID, code models.ExemptionCode) *models.SoldierExemption {
	return &models.SoldierExemption{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SoldierID:     soldierID,
		ExemptionCode: code,
	}
}

// AttendanceFactory provides methods to create test AttendanceRecord data
type AttendanceFactory struct{}

// NewAttendanceFactory creates a new AttendanceFactory
func NewAttendanceFactory() *AttendanceFactory {
	return &AttendanceFactory{}
}

// Create records a soldier present on the given date
func (f *AttendanceFactory) Create(soldierID uuid.UUID, date time.Time) *models.AttendanceRecord {
	return &models.AttendanceRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SoldierID:  soldierID,
		Date:       date,
		Status:     models.AttendanceStatusPresent,
		ReportedBy: "test",
	}
}
