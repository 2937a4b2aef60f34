package service

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SchedulerServiceInterface defines the interface for the planning engine
type SchedulerServiceInterface interface {
	AutoSchedule(req *AutoScheduleRequest, createdBy string) (*AutoScheduleResponse, error)
	AutoAssign(eventID uuid.UUID, req *AutoAssignRequest) (*AutoAssignResponse, error)
}

// DutyEventServiceInterface defines the interface for duty event operations
type DutyEventServiceInterface interface {
	Create(req *CreateDutyEventRequest, createdBy string) (*DutyEventResponse, error)
	GetByID(id uuid.UUID) (*DutyEventResponse, error)
	GetByRange(from, to *time.Time) ([]DutyEventResponse, error)
	UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) error
	AssignSoldier(eventID uuid.UUID, req *AssignSoldierRequest) (*AssignmentResponse, error)
	RemoveAssignment(eventID, assignmentID uuid.UUID) error
	Delete(id uuid.UUID) error
}

// SoldierServiceInterface defines the interface for soldier operations
type SoldierServiceInterface interface {
	Create(req *CreateSoldierRequest) (*SoldierResponse, error)
	GetByID(id uuid.UUID) (*SoldierResponse, error)
	GetAll(page, pageSize int) (*SoldierListResponse, error)
	Update(id uuid.UUID, req *UpdateSoldierRequest) (*SoldierResponse, error)
	Delete(id uuid.UUID) error
	AddConstraint(soldierID uuid.UUID, req *AddConstraintRequest) (*models.SoldierConstraint, error)
	RemoveConstraint(soldierID, constraintID uuid.UUID) error
	AddExemption(soldierID uuid.UUID, req *AddExemptionRequest) (*models.SoldierExemption, error)
	RemoveExemption(soldierID, exemptionID uuid.UUID) error
}

// DutyTypeServiceInterface defines the interface for duty type operations
type DutyTypeServiceInterface interface {
	Create(req *CreateDutyTypeRequest) (*DutyTypeResponse, error)
	GetByID(id uuid.UUID) (*DutyTypeResponse, error)
	GetAll(page, pageSize int) (*DutyTypeListResponse, error)
	Update(id uuid.UUID, req *UpdateDutyTypeRequest) (*DutyTypeResponse, error)
	Delete(id uuid.UUID) error
}

// DepartmentServiceInterface defines the interface for department operations
type DepartmentServiceInterface interface {
	Create(req *CreateDepartmentRequest) (*DepartmentResponse, error)
	GetByID(id uuid.UUID) (*DepartmentResponse, error)
	GetAll(page, pageSize int) (*DepartmentListResponse, error)
	Delete(id uuid.UUID) error
}

// FairnessServiceInterface defines the interface for the fairness report
type FairnessServiceInterface interface {
	Report(rangeDays int) ([]FairnessEntry, error)
}

// AttendanceServiceInterface defines the interface for attendance operations
type AttendanceServiceInterface interface {
	Report(req *ReportAttendanceRequest, reportedBy string) (*AttendanceResponse, error)
	WeeklyGrid(startDate string) (*WeeklyGridResponse, error)
}
