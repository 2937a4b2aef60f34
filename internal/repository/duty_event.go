package repository

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyEventRepository handles database operations for duty events
type DutyEventRepository struct {
	db *gorm.DB
}

// NewDutyEventRepository creates a new duty event repository
func NewDutyEventRepository(db *gorm.DB) *DutyEventRepository {
	return &DutyEventRepository{db: db}
}

// Create creates a new duty event
func (r *DutyEventRepository) Create(event *models.DutyEvent) error {
	return r.db.Create(event).Error
}

// GetByID retrieves a duty event by ID
func (r *DutyEventRepository) GetByID(id uuid.UUID) (*models.DutyEvent, error) {
	var event models.DutyEvent
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetWithDetails retrieves a duty event with its duty type and assignments
func (r *DutyEventRepository) GetWithDetails(id uuid.UUID) (*models.DutyEvent, error) {
	var event models.DutyEvent
	err := r.db.Preload("DutyType").Preload("Assignments").Preload("Assignments.Soldier").
		First(&event, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetByRange retrieves events whose start falls within [from, to],
// ordered by start time, with duty type and assignments preloaded
func (r *DutyEventRepository) GetByRange(from, to *time.Time) ([]models.DutyEvent, error) {
	query := r.db.Preload("DutyType").Preload("Assignments").Preload("Assignments.Soldier")
	if from != nil {
		query = query.Where("start_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("start_at <= ?", *to)
	}

	var events []models.DutyEvent
	err := query.Order("start_at ASC").Find(&events).Error
	return events, err
}

// UpdateStatus sets the status of a duty event
func (r *DutyEventRepository) UpdateStatus(id uuid.UUID, status models.EventStatus) error {
	return r.db.Model(&models.DutyEvent{}).Where("id = ?", id).Update("status", status).Error
}

// Update updates a duty event
func (r *DutyEventRepository) Update(event *models.DutyEvent) error {
	return r.db.Save(event).Error
}

// Delete deletes a duty event and cascades its assignments
func (r *DutyEventRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DutyEvent{}, "id = ?", id).Error
}
