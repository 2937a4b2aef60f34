package repository

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PointsLedgerRepository handles database operations for the points ledger.
// The ledger is append-only; there are no update or delete operations.
type PointsLedgerRepository struct {
	db *gorm.DB
}

// NewPointsLedgerRepository creates a new points ledger repository
func NewPointsLedgerRepository(db *gorm.DB) *PointsLedgerRepository {
	return &PointsLedgerRepository{db: db}
}

// Create appends a ledger entry
func (r *PointsLedgerRepository) Create(entry *models.PointsLedgerEntry) error {
	return r.db.Create(entry).Error
}

// SumDeltasSince returns the sum of a soldier's point deltas created at or
// after the cutoff. Soldiers with no entries yield 0.
func (r *PointsLedgerRepository) SumDeltasSince(soldierID uuid.UUID, since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.PointsLedgerEntry{}).
		Where("soldier_id = ? AND created_at >= ?", soldierID, since).
		Select("COALESCE(SUM(points_delta), 0)").Scan(&total).Error
	return total, err
}

// GetBySoldierID retrieves a soldier's ledger entries, newest first
func (r *PointsLedgerRepository) GetBySoldierID(soldierID uuid.UUID, limit, offset int) ([]models.PointsLedgerEntry, int64, error) {
	var entries []models.PointsLedgerEntry
	var total int64

	if err := r.db.Model(&models.PointsLedgerEntry{}).Where("soldier_id = ?", soldierID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("soldier_id = ?", soldierID).Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}

// CountByEventID counts ledger entries originating from an event
func (r *PointsLedgerRepository) CountByEventID(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.PointsLedgerEntry{}).Where("duty_event_id = ?", eventID).Count(&count).Error
	return count, err
}
