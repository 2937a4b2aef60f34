package service

import (
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/repository"

	"github.com/google/uuid"
)

// schedulerStore adapts the gorm repositories to the SchedulerStore
// interface the engine plans against.
type schedulerStore struct {
	soldiers    *repository.SoldierRepository
	dutyTypes   *repository.DutyTypeRepository
	events      *repository.DutyEventRepository
	assignments *repository.DutyAssignmentRepository
	ledger      *repository.PointsLedgerRepository
	constraints *repository.SoldierConstraintRepository
	exemptions  *repository.SoldierExemptionRepository
}

// NewSchedulerStore builds a SchedulerStore backed by the gorm repositories
func NewSchedulerStore(
	soldiers *repository.SoldierRepository,
	dutyTypes *repository.DutyTypeRepository,
	events *repository.DutyEventRepository,
	assignments *repository.DutyAssignmentRepository,
	ledger *repository.PointsLedgerRepository,
	constraints *repository.SoldierConstraintRepository,
	exemptions *repository.SoldierExemptionRepository,
) SchedulerStore {
	return &schedulerStore{
		soldiers:    soldiers,
		dutyTypes:   dutyTypes,
		events:      events,
		assignments: assignments,
		ledger:      ledger,
		constraints: constraints,
		exemptions:  exemptions,
	}
}

func (s *schedulerStore) GetActiveSoldiers() ([]models.Soldier, error) {
	return s.soldiers.GetActive()
}

func (s *schedulerStore) GetActiveDutyTypes() ([]models.DutyType, error) {
	return s.dutyTypes.GetActive()
}

func (s *schedulerStore) GetDutyType(id uuid.UUID) (*models.DutyType, error) {
	return s.dutyTypes.GetByID(id)
}

func (s *schedulerStore) GetDutyEvent(id uuid.UUID) (*models.DutyEvent, error) {
	return s.events.GetByID(id)
}

func (s *schedulerStore) GetAssignmentsByEvent(eventID uuid.UUID) ([]models.DutyAssignment, error) {
	return s.assignments.GetByEventID(eventID)
}

func (s *schedulerStore) GetAllConstraints() ([]models.SoldierConstraint, error) {
	return s.constraints.GetAll()
}

func (s *schedulerStore) GetAllExemptions() ([]models.SoldierExemption, error) {
	return s.exemptions.GetAll()
}

func (s *schedulerStore) SumPointsSince(soldierID uuid.UUID, since time.Time) (float64, error) {
	return s.ledger.SumDeltasSince(soldierID, since)
}

func (s *schedulerStore) CreateEvent(event *models.DutyEvent) error {
	return s.events.Create(event)
}

func (s *schedulerStore) CreateAssignment(assignment *models.DutyAssignment) error {
	return s.assignments.Create(assignment)
}
