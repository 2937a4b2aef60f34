package repository

import (
	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoldierExemptionRepository handles database operations for soldier exemptions
type SoldierExemptionRepository struct {
	db *gorm.DB
}

// NewSoldierExemptionRepository creates a new soldier exemption repository
func NewSoldierExemptionRepository(db *gorm.DB) *SoldierExemptionRepository {
	return &SoldierExemptionRepository{db: db}
}

// Create creates a new exemption
func (r *SoldierExemptionRepository) Create(exemption *models.SoldierExemption) error {
	return r.db.Create(exemption).Error
}

// GetBySoldierID retrieves all exemptions for a soldier
func (r *SoldierExemptionRepository) GetBySoldierID(soldierID uuid.UUID) ([]models.SoldierExemption, error) {
	var exemptions []models.SoldierExemption
	err := r.db.Where("soldier_id = ?", soldierID).Find(&exemptions).Error
	return exemptions, err
}

// GetAll retrieves every exemption, for bulk planning runs
func (r *SoldierExemptionRepository) GetAll() ([]models.SoldierExemption, error) {
	var exemptions []models.SoldierExemption
	err := r.db.Find(&exemptions).Error
	return exemptions, err
}

// Exists checks whether a soldier already carries an exemption code
func (r *SoldierExemptionRepository) Exists(soldierID uuid.UUID, code models.ExemptionCode) (bool, error) {
	var count int64
	err := r.db.Model(&models.SoldierExemption{}).
		Where("soldier_id = ? AND exemption_code = ?", soldierID, code).Count(&count).Error
	return count > 0, err
}

// Delete deletes an exemption
func (r *SoldierExemptionRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SoldierExemption{}, "id = ?", id).Error
}
