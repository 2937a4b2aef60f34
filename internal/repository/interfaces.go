package repository

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SoldierRepositoryInterface defines the interface for soldier repository operations
type SoldierRepositoryInterface interface {
	Create(soldier *models.Soldier) error
	GetByID(id uuid.UUID) (*models.Soldier, error)
	GetWithDetails(id uuid.UUID) (*models.Soldier, error)
	GetAll(limit, offset int) ([]models.Soldier, int64, error)
	GetActive() ([]models.Soldier, error)
	GetByPhone(phone string) (*models.Soldier, error)
	GetByDepartmentID(departmentID uuid.UUID, limit, offset int) ([]models.Soldier, int64, error)
	Update(soldier *models.Soldier) error
	Delete(id uuid.UUID) error
}

// DutyTypeRepositoryInterface defines the interface for duty type repository operations
type DutyTypeRepositoryInterface interface {
	Create(dutyType *models.DutyType) error
	GetByID(id uuid.UUID) (*models.DutyType, error)
	GetAll(limit, offset int) ([]models.DutyType, int64, error)
	GetActive() ([]models.DutyType, error)
	Update(dutyType *models.DutyType) error
	Delete(id uuid.UUID) error
}

// DutyEventRepositoryInterface defines the interface for duty event repository operations
type DutyEventRepositoryInterface interface {
	Create(event *models.DutyEvent) error
	GetByID(id uuid.UUID) (*models.DutyEvent, error)
	GetWithDetails(id uuid.UUID) (*models.DutyEvent, error)
	GetByRange(from, to *time.Time) ([]models.DutyEvent, error)
	UpdateStatus(id uuid.UUID, status models.EventStatus) error
	Update(event *models.DutyEvent) error
	Delete(id uuid.UUID) error
}

// DutyAssignmentRepositoryInterface defines the interface for assignment repository operations
type DutyAssignmentRepositoryInterface interface {
	Create(assignment *models.DutyAssignment) error
	GetByID(id uuid.UUID) (*models.DutyAssignment, error)
	GetByEventID(eventID uuid.UUID) ([]models.DutyAssignment, error)
	GetBySoldierSince(soldierID uuid.UUID, since time.Time) ([]models.DutyAssignment, error)
	MarkDone(id uuid.UUID, doneAt time.Time) error
	Update(assignment *models.DutyAssignment) error
	Delete(id uuid.UUID) error
}

// PointsLedgerRepositoryInterface defines the interface for ledger repository operations
type PointsLedgerRepositoryInterface interface {
	Create(entry *models.PointsLedgerEntry) error
	SumDeltasSince(soldierID uuid.UUID, since time.Time) (float64, error)
	GetBySoldierID(soldierID uuid.UUID, limit, offset int) ([]models.PointsLedgerEntry, int64, error)
	CountByEventID(eventID uuid.UUID) (int64, error)
}

// SoldierConstraintRepositoryInterface defines the interface for constraint repository operations
type SoldierConstraintRepositoryInterface interface {
	Create(constraint *models.SoldierConstraint) error
	GetByID(id uuid.UUID) (*models.SoldierConstraint, error)
	GetBySoldierID(soldierID uuid.UUID) ([]models.SoldierConstraint, error)
	GetAll() ([]models.SoldierConstraint, error)
	Delete(id uuid.UUID) error
}

// SoldierExemptionRepositoryInterface defines the interface for exemption repository operations
type SoldierExemptionRepositoryInterface interface {
	Create(exemption *models.SoldierExemption) error
	GetBySoldierID(soldierID uuid.UUID) ([]models.SoldierExemption, error)
	GetAll() ([]models.SoldierExemption, error)
	Exists(soldierID uuid.UUID, code models.ExemptionCode) (bool, error)
	Delete(id uuid.UUID) error
}
