package repository

import (
	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoldierConstraintRepository handles database operations for soldier constraints
type SoldierConstraintRepository struct {
	db *gorm.DB
}

// NewSoldierConstraintRepository creates a new soldier constraint repository
func NewSoldierConstraintRepository(db *gorm.DB) *SoldierConstraintRepository {
	return &SoldierConstraintRepository{db: db}
}

// Create creates a new constraint
func (r *SoldierConstraintRepository) Create(constraint *models.SoldierConstraint) error {
	return r.db.Create(constraint).Error
}

// GetByID retrieves a constraint by ID
func (r *SoldierConstraintRepository) GetByID(id uuid.UUID) (*models.SoldierConstraint, error) {
	var constraint models.SoldierConstraint
	err := r.db.First(&constraint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &constraint, nil
}

// GetBySoldierID retrieves all constraints for a soldier
func (r *SoldierConstraintRepository) GetBySoldierID(soldierID uuid.UUID) ([]models.SoldierConstraint, error) {
	var constraints []models.SoldierConstraint
	err := r.db.Where("soldier_id = ?", soldierID).Order("created_at ASC").Find(&constraints).Error
	return constraints, err
}

// GetAll retrieves every constraint, for bulk planning runs
func (r *SoldierConstraintRepository) GetAll() ([]models.SoldierConstraint, error) {
	var constraints []models.SoldierConstraint
	err := r.db.Find(&constraints).Error
	return constraints, err
}

// Delete deletes a constraint
func (r *SoldierConstraintRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SoldierConstraint{}, "id = ?", id).Error
}
