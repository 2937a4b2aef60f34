package repository

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyAssignmentRepository handles database operations for duty assignments
type DutyAssignmentRepository struct {
	db *gorm.DB
}

// NewDutyAssignmentRepository creates a new duty assignment repository
func NewDutyAssignmentRepository(db *gorm.DB) *DutyAssignmentRepository {
	return &DutyAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *DutyAssignmentRepository) Create(assignment *models.DutyAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *DutyAssignmentRepository) GetByID(id uuid.UUID) (*models.DutyAssignment, error) {
	var assignment models.DutyAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByEventID retrieves all assignments on an event
func (r *DutyAssignmentRepository) GetByEventID(eventID uuid.UUID) ([]models.DutyAssignment, error) {
	var assignments []models.DutyAssignment
	err := r.db.Where("duty_event_id = ?", eventID).Order("slot_start_at ASC NULLS FIRST").Find(&assignments).Error
	return assignments, err
}

// GetBySoldierSince retrieves a soldier's assignments on events starting after the cutoff
func (r *DutyAssignmentRepository) GetBySoldierSince(soldierID uuid.UUID, since time.Time) ([]models.DutyAssignment, error) {
	var assignments []models.DutyAssignment
	err := r.db.Joins("JOIN duty_events ON duty_events.id = duty_assignments.duty_event_id").
		Where("duty_assignments.soldier_id = ? AND duty_events.start_at >= ?", soldierID, since).
		Preload("DutyEvent").Preload("DutyEvent.DutyType").
		Find(&assignments).Error
	return assignments, err
}

// MarkDone stamps the completion time on an assignment
func (r *DutyAssignmentRepository) MarkDone(id uuid.UUID, doneAt time.Time) error {
	return r.db.Model(&models.DutyAssignment{}).Where("id = ?", id).Update("done_at", doneAt).Error
}

// Update updates an assignment
func (r *DutyAssignmentRepository) Update(assignment *models.DutyAssignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes an assignment
func (r *DutyAssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DutyAssignment{}, "id = ?", id).Error
}
