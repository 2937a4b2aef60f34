package repository

import (
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert creates or replaces the record for (soldier, date)
func (r *AttendanceRepository) Upsert(record *models.AttendanceRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "soldier_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "reported_by", "updated_at"}),
	}).Create(record).Error
}

// GetByDate retrieves all records for a date
func (r *AttendanceRepository) GetByDate(date time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Preload("Soldier").Where("date = ?", date).Find(&records).Error
	return records, err
}

// GetByRange retrieves records for dates in [from, to]
func (r *AttendanceRepository) GetByRange(from, to time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := r.db.Where("date >= ? AND date <= ?", from, to).Order("date ASC").Find(&records).Error
	return records, err
}

// GetBySoldierAndDate retrieves one soldier's record for a date
func (r *AttendanceRepository) GetBySoldierAndDate(soldierID uuid.UUID, date time.Time) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	err := r.db.Where("soldier_id = ? AND date = ?", soldierID, date).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
