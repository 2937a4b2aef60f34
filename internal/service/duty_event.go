package service

import (
	"errors"
	"fmt"
	"time"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyEventService handles business logic for duty events: plumbing CRUD,
// manual assignment edits, and the status state machine. Marking an event
// done is the only transition with a side effect: it stamps every current
// assignment and posts one ledger entry per assignment. Planning alone
// never moves points.
type DutyEventService struct {
	repo           repository.DutyEventRepositoryInterface
	dutyTypeRepo   repository.DutyTypeRepositoryInterface
	assignmentRepo repository.DutyAssignmentRepositoryInterface
	soldierRepo    repository.SoldierRepositoryInterface
	ledgerRepo     repository.PointsLedgerRepositoryInterface
	validator      *validator.Validate
	now            func() time.Time
}

// NewDutyEventService creates a new duty event service
func NewDutyEventService(
	repo repository.DutyEventRepositoryInterface,
	dutyTypeRepo repository.DutyTypeRepositoryInterface,
	assignmentRepo repository.DutyAssignmentRepositoryInterface,
	soldierRepo repository.SoldierRepositoryInterface,
	ledgerRepo repository.PointsLedgerRepositoryInterface,
	validator *validator.Validate,
) *DutyEventService {
	return &DutyEventService{
		repo:           repo,
		dutyTypeRepo:   dutyTypeRepo,
		assignmentRepo: assignmentRepo,
		soldierRepo:    soldierRepo,
		ledgerRepo:     ledgerRepo,
		validator:      validator,
		now:            time.Now,
	}
}

// CreateDutyEventRequest represents the request to create a duty event manually
type CreateDutyEventRequest struct {
	DutyTypeID uuid.UUID  `json:"duty_type_id" validate:"required"`
	StartAt    time.Time  `json:"start_at" validate:"required"`
	EndAt      *time.Time `json:"end_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

// UpdateStatusRequest represents the request to transition an event's status
type UpdateStatusRequest struct {
	Status models.EventStatus `json:"status" validate:"required"`
}

// AssignSoldierRequest represents the request to manually assign a soldier
type AssignSoldierRequest struct {
	SoldierID   uuid.UUID  `json:"soldier_id" validate:"required"`
	SlotStartAt *time.Time `json:"slot_start_at,omitempty"`
	SlotEndAt   *time.Time `json:"slot_end_at,omitempty"`
	RoleLabel   string     `json:"role_label,omitempty"`
}

// AssignmentResponse represents one assignment on an event
type AssignmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	SoldierID   uuid.UUID  `json:"soldier_id"`
	SoldierName string     `json:"soldier_name,omitempty"`
	SlotStartAt *time.Time `json:"slot_start_at,omitempty"`
	SlotEndAt   *time.Time `json:"slot_end_at,omitempty"`
	RoleLabel   string     `json:"role_label,omitempty"`
	IsConfirmed bool       `json:"is_confirmed"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
}

// DutyEventResponse represents the response for duty event operations
type DutyEventResponse struct {
	ID           uuid.UUID            `json:"id"`
	DutyTypeID   uuid.UUID            `json:"duty_type_id"`
	DutyTypeName string               `json:"duty_type_name,omitempty"`
	Category     string               `json:"category,omitempty"`
	WeightPoints float64              `json:"weight_points,omitempty"`
	StartAt      time.Time            `json:"start_at"`
	EndAt        *time.Time           `json:"end_at,omitempty"`
	Status       models.EventStatus   `json:"status"`
	Notes        string               `json:"notes"`
	CreatedBy    string               `json:"created_by,omitempty"`
	Assignments  []AssignmentResponse `json:"assignments"`
	CreatedAt    string               `json:"created_at"`
}

// Create creates a duty event manually
func (s *DutyEventService) Create(req *CreateDutyEventRequest, createdBy string) (*DutyEventResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.dutyTypeRepo.GetByID(req.DutyTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyTypeNotFound
		}
		return nil, fmt.Errorf("failed to verify duty type: %w", err)
	}

	if req.EndAt != nil && !req.EndAt.After(req.StartAt) {
		return nil, apperrors.ErrInvalidDateRange
	}

	event := &models.DutyEvent{
		DutyTypeID: req.DutyTypeID,
		StartAt:    req.StartAt,
		EndAt:      req.EndAt,
		Status:     models.EventStatusPlanned,
		CreatedBy:  createdBy,
		Notes:      req.Notes,
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create duty event: %w", err)
	}

	return s.toResponse(event), nil
}

// GetByID retrieves a duty event with its assignments
func (s *DutyEventService) GetByID(id uuid.UUID) (*DutyEventResponse, error) {
	event, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyEventNotFound
		}
		return nil, fmt.Errorf("failed to get duty event: %w", err)
	}
	return s.toResponse(event), nil
}

// GetByRange retrieves duty events within a date range
func (s *DutyEventService) GetByRange(from, to *time.Time) ([]DutyEventResponse, error) {
	events, err := s.repo.GetByRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty events: %w", err)
	}

	responses := make([]DutyEventResponse, len(events))
	for i := range events {
		responses[i] = *s.toResponse(&events[i])
	}
	return responses, nil
}

// UpdateStatus transitions an event's status. The done transition stamps
// every current assignment with a completion time and posts one ledger
// entry per assignment with the duty type's weight; re-marking an already
// done event is rejected so points cannot be double-posted.
func (s *DutyEventService) UpdateStatus(id uuid.UUID, req *UpdateStatusRequest) error {
	if !req.Status.IsValid() {
		return apperrors.ErrInvalidStatus
	}

	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDutyEventNotFound
		}
		return fmt.Errorf("failed to get duty event: %w", err)
	}

	if req.Status == models.EventStatusDone && event.Status == models.EventStatusDone {
		return apperrors.ErrEventAlreadyDone
	}

	if err := s.repo.UpdateStatus(id, req.Status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if req.Status != models.EventStatusDone {
		return nil
	}

	dutyType, err := s.dutyTypeRepo.GetByID(event.DutyTypeID)
	if err != nil {
		return fmt.Errorf("failed to get duty type: %w", err)
	}

	assignments, err := s.assignmentRepo.GetByEventID(id)
	if err != nil {
		return fmt.Errorf("failed to get assignments: %w", err)
	}

	doneAt := s.now()
	for i := range assignments {
		if err := s.assignmentRepo.MarkDone(assignments[i].ID, doneAt); err != nil {
			return fmt.Errorf("failed to mark assignment done: %w", err)
		}

		eventID := id
		entry := &models.PointsLedgerEntry{
			SoldierID:   assignments[i].SoldierID,
			DutyEventID: &eventID,
			PointsDelta: dutyType.WeightPoints,
			Reason:      fmt.Sprintf("duty completed: %s", dutyType.Name),
		}
		if err := s.ledgerRepo.Create(entry); err != nil {
			return fmt.Errorf("failed to post ledger entry: %w", err)
		}
	}

	return nil
}

// AssignSoldier manually binds a soldier to an event
func (s *DutyEventService) AssignSoldier(eventID uuid.UUID, req *AssignSoldierRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyEventNotFound
		}
		return nil, fmt.Errorf("failed to get duty event: %w", err)
	}

	if _, err := s.soldierRepo.GetByID(req.SoldierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to verify soldier: %w", err)
	}

	existing, err := s.assignmentRepo.GetByEventID(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	for i := range existing {
		if existing[i].SoldierID == req.SoldierID {
			return nil, apperrors.ErrSoldierAssigned
		}
	}

	assignment := &models.DutyAssignment{
		DutyEventID: eventID,
		SoldierID:   req.SoldierID,
		SlotStartAt: req.SlotStartAt,
		SlotEndAt:   req.SlotEndAt,
		RoleLabel:   req.RoleLabel,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return toAssignmentResponse(assignment), nil
}

// RemoveAssignment deletes a single assignment from an event
func (s *DutyEventService) RemoveAssignment(eventID, assignmentID uuid.UUID) error {
	assignment, err := s.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}
	if assignment.DutyEventID != eventID {
		return apperrors.ErrAssignmentNotFound
	}

	if err := s.assignmentRepo.Delete(assignmentID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// Delete deletes a duty event and cascades its assignments. Planned events
// carry no point impact, so deletion fully reverses a planning run.
func (s *DutyEventService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDutyEventNotFound
		}
		return fmt.Errorf("failed to get duty event: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete duty event: %w", err)
	}
	return nil
}

// toResponse converts a duty event model to response
func (s *DutyEventService) toResponse(event *models.DutyEvent) *DutyEventResponse {
	response := &DutyEventResponse{
		ID:          event.ID,
		DutyTypeID:  event.DutyTypeID,
		StartAt:     event.StartAt,
		EndAt:       event.EndAt,
		Status:      event.Status,
		Notes:       event.Notes,
		CreatedBy:   event.CreatedBy,
		Assignments: make([]AssignmentResponse, 0, len(event.Assignments)),
		CreatedAt:   event.CreatedAt.Format(time.RFC3339),
	}

	if event.DutyType.ID != uuid.Nil {
		response.DutyTypeName = event.DutyType.Name
		response.Category = event.DutyType.Category
		response.WeightPoints = event.DutyType.WeightPoints
	}

	for i := range event.Assignments {
		response.Assignments = append(response.Assignments, *toAssignmentResponse(&event.Assignments[i]))
	}
	return response
}

func toAssignmentResponse(assignment *models.DutyAssignment) *AssignmentResponse {
	response := &AssignmentResponse{
		ID:          assignment.ID,
		SoldierID:   assignment.SoldierID,
		SlotStartAt: assignment.SlotStartAt,
		SlotEndAt:   assignment.SlotEndAt,
		RoleLabel:   assignment.RoleLabel,
		IsConfirmed: assignment.IsConfirmed,
		DoneAt:      assignment.DoneAt,
	}
	if assignment.Soldier.ID != uuid.Nil {
		response.SoldierName = assignment.Soldier.FullName
	}
	return response
}
