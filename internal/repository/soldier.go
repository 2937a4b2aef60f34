package repository

import (
	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoldierRepository handles database operations for soldiers
type SoldierRepository struct {
	db *gorm.DB
}

// NewSoldierRepository creates a new soldier repository
func NewSoldierRepository(db *gorm.DB) *SoldierRepository {
	return &SoldierRepository{db: db}
}

// Create creates a new soldier
func (r *SoldierRepository) Create(soldier *models.Soldier) error {
	return r.db.Create(soldier).Error
}

// GetByID retrieves a soldier by ID
func (r *SoldierRepository) GetByID(id uuid.UUID) (*models.Soldier, error) {
	var soldier models.Soldier
	err := r.db.First(&soldier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &soldier, nil
}

// GetWithDetails retrieves a soldier with department, constraints and exemptions
func (r *SoldierRepository) GetWithDetails(id uuid.UUID) (*models.Soldier, error) {
	var soldier models.Soldier
	err := r.db.Preload("Department").Preload("Constraints").Preload("Exemptions").
		First(&soldier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &soldier, nil
}

// GetAll retrieves all soldiers with pagination
func (r *SoldierRepository) GetAll(limit, offset int) ([]models.Soldier, int64, error) {
	var soldiers []models.Soldier
	var total int64

	if err := r.db.Model(&models.Soldier{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Department").Order("full_name ASC").Limit(limit).Offset(offset).Find(&soldiers).Error
	return soldiers, total, err
}

// GetActive retrieves all active soldiers in stable id order. The order is
// the planner's tie-break key, so it must be deterministic.
func (r *SoldierRepository) GetActive() ([]models.Soldier, error) {
	var soldiers []models.Soldier
	err := r.db.Where("status = ?", models.SoldierStatusActive).Order("id ASC").Find(&soldiers).Error
	return soldiers, err
}

// GetByPhone retrieves a soldier by normalized phone number
func (r *SoldierRepository) GetByPhone(phone string) (*models.Soldier, error) {
	var soldier models.Soldier
	err := r.db.First(&soldier, "phone_e164 = ?", phone).Error
	if err != nil {
		return nil, err
	}
	return &soldier, nil
}

// GetByDepartmentID retrieves soldiers for a department
func (r *SoldierRepository) GetByDepartmentID(departmentID uuid.UUID, limit, offset int) ([]models.Soldier, int64, error) {
	var soldiers []models.Soldier
	var total int64

	if err := r.db.Model(&models.Soldier{}).Where("department_id = ?", departmentID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("department_id = ?", departmentID).Order("full_name ASC").Limit(limit).Offset(offset).Find(&soldiers).Error
	return soldiers, total, err
}

// Update updates a soldier
func (r *SoldierRepository) Update(soldier *models.Soldier) error {
	return r.db.Save(soldier).Error
}

// Delete deletes a soldier and cascades assignments, constraints and exemptions
func (r *SoldierRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Soldier{}, "id = ?", id).Error
}
