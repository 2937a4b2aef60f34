package repository

import (
	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyTypeRepository handles database operations for duty types
type DutyTypeRepository struct {
	db *gorm.DB
}

// NewDutyTypeRepository creates a new duty type repository
func NewDutyTypeRepository(db *gorm.DB) *DutyTypeRepository {
	return &DutyTypeRepository{db: db}
}

// Create creates a new duty type
func (r *DutyTypeRepository) Create(dutyType *models.DutyType) error {
	return r.db.Create(dutyType).Error
}

// GetByID retrieves a duty type by ID
func (r *DutyTypeRepository) GetByID(id uuid.UUID) (*models.DutyType, error) {
	var dutyType models.DutyType
	err := r.db.First(&dutyType, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dutyType, nil
}

// GetAll retrieves all duty types with pagination
func (r *DutyTypeRepository) GetAll(limit, offset int) ([]models.DutyType, int64, error) {
	var dutyTypes []models.DutyType
	var total int64

	if err := r.db.Model(&models.DutyType{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&dutyTypes).Error
	return dutyTypes, total, err
}

// GetActive retrieves all active duty types in stable id order
func (r *DutyTypeRepository) GetActive() ([]models.DutyType, error) {
	var dutyTypes []models.DutyType
	err := r.db.Where("is_active = ?", true).Order("id ASC").Find(&dutyTypes).Error
	return dutyTypes, err
}

// Update updates a duty type
func (r *DutyTypeRepository) Update(dutyType *models.DutyType) error {
	return r.db.Save(dutyType).Error
}

// Delete deletes a duty type and cascades its events
func (r *DutyTypeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.DutyType{}, "id = ?", id).Error
}
