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

// SoldierService handles business logic for soldiers, including their
// constraints and exemptions
type SoldierService struct {
	repo           repository.SoldierRepositoryInterface
	departmentRepo *repository.DepartmentRepository
	constraintRepo repository.SoldierConstraintRepositoryInterface
	exemptionRepo  repository.SoldierExemptionRepositoryInterface
	validator      *validator.Validate
}

// NewSoldierService creates a new soldier service
func NewSoldierService(
	repo repository.SoldierRepositoryInterface,
	departmentRepo *repository.DepartmentRepository,
	constraintRepo repository.SoldierConstraintRepositoryInterface,
	exemptionRepo repository.SoldierExemptionRepositoryInterface,
	validator *validator.Validate,
) *SoldierService {
	return &SoldierService{
		repo:           repo,
		departmentRepo: departmentRepo,
		constraintRepo: constraintRepo,
		exemptionRepo:  exemptionRepo,
		validator:      validator,
	}
}

// CreateSoldierRequest represents the request to create a soldier
type CreateSoldierRequest struct {
	FullName                string               `json:"full_name" validate:"required,max=200"`
	PhoneE164               string               `json:"phone_e164,omitempty" validate:"omitempty,e164"`
	DepartmentID            uuid.UUID            `json:"department_id" validate:"required"`
	Status                  models.SoldierStatus `json:"status,omitempty"`
	ExcludeFromAutoSchedule *bool                `json:"exclude_from_auto_schedule,omitempty"`
	Notes                   string               `json:"notes,omitempty"`
}

// UpdateSoldierRequest represents the request to update a soldier
type UpdateSoldierRequest struct {
	FullName                *string               `json:"full_name,omitempty" validate:"omitempty,max=200"`
	PhoneE164               *string               `json:"phone_e164,omitempty" validate:"omitempty,e164"`
	DepartmentID            *uuid.UUID            `json:"department_id,omitempty"`
	Status                  *models.SoldierStatus `json:"status,omitempty"`
	ExcludeFromAutoSchedule *bool                 `json:"exclude_from_auto_schedule,omitempty"`
	Notes                   *string               `json:"notes,omitempty"`
}

// AddConstraintRequest represents the request to add a scheduling constraint
type AddConstraintRequest struct {
	DayOfWeek      *int                  `json:"day_of_week,omitempty" validate:"omitempty,min=0,max=6"`
	DateFrom       *time.Time            `json:"date_from,omitempty"`
	DateTo         *time.Time            `json:"date_to,omitempty"`
	ConstraintType models.ConstraintType `json:"constraint_type" validate:"required"`
	Details        string                `json:"details,omitempty"`
}

// AddExemptionRequest represents the request to add an exemption code
type AddExemptionRequest struct {
	ExemptionCode models.ExemptionCode `json:"exemption_code" validate:"required"`
}

// SoldierResponse represents the response for soldier operations
type SoldierResponse struct {
	ID                      uuid.UUID                  `json:"id"`
	FullName                string                     `json:"full_name"`
	PhoneE164               string                     `json:"phone_e164"`
	DepartmentID            uuid.UUID                  `json:"department_id"`
	DepartmentName          string                     `json:"department_name,omitempty"`
	Status                  models.SoldierStatus       `json:"status"`
	ExcludeFromAutoSchedule bool                       `json:"exclude_from_auto_schedule"`
	Notes                   string                     `json:"notes"`
	Constraints             []models.SoldierConstraint `json:"constraints,omitempty"`
	Exemptions              []models.ExemptionCode     `json:"exemptions,omitempty"`
	CreatedAt               string                     `json:"created_at"`
}

// SoldierListResponse represents a paginated list of soldiers
type SoldierListResponse struct {
	Soldiers []SoldierResponse `json:"soldiers"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new soldier
func (s *SoldierService) Create(req *CreateSoldierRequest) (*SoldierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := req.Status
	if status == "" {
		status = models.SoldierStatusActive
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.departmentRepo.GetByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to verify department: %w", err)
	}

	exclude := false
	if req.ExcludeFromAutoSchedule != nil {
		exclude = *req.ExcludeFromAutoSchedule
	}

	soldier := &models.Soldier{
		FullName:                req.FullName,
		PhoneE164:               req.PhoneE164,
		DepartmentID:            req.DepartmentID,
		Status:                  status,
		ExcludeFromAutoSchedule: exclude,
		Notes:                   req.Notes,
	}

	if err := s.repo.Create(soldier); err != nil {
		return nil, fmt.Errorf("failed to create soldier: %w", err)
	}

	return s.toResponse(soldier), nil
}

// GetByID retrieves a soldier with constraints and exemptions
func (s *SoldierService) GetByID(id uuid.UUID) (*SoldierResponse, error) {
	soldier, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to get soldier: %w", err)
	}
	return s.toResponse(soldier), nil
}

// GetAll retrieves soldiers with pagination
func (s *SoldierService) GetAll(page, pageSize int) (*SoldierListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	soldiers, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get soldiers: %w", err)
	}

	responses := make([]SoldierResponse, len(soldiers))
	for i := range soldiers {
		responses[i] = *s.toResponse(&soldiers[i])
	}

	return &SoldierListResponse{
		Soldiers: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a soldier
func (s *SoldierService) Update(id uuid.UUID, req *UpdateSoldierRequest) (*SoldierResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	soldier, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to get soldier: %w", err)
	}

	if req.FullName != nil {
		soldier.FullName = *req.FullName
	}
	if req.PhoneE164 != nil {
		soldier.PhoneE164 = *req.PhoneE164
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(*req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDepartmentNotFound
			}
			return nil, fmt.Errorf("failed to verify department: %w", err)
		}
		soldier.DepartmentID = *req.DepartmentID
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		soldier.Status = *req.Status
	}
	if req.ExcludeFromAutoSchedule != nil {
		soldier.ExcludeFromAutoSchedule = *req.ExcludeFromAutoSchedule
	}
	if req.Notes != nil {
		soldier.Notes = *req.Notes
	}

	if err := s.repo.Update(soldier); err != nil {
		return nil, fmt.Errorf("failed to update soldier: %w", err)
	}

	return s.toResponse(soldier), nil
}

// Delete deletes a soldier; assignments, constraints and exemptions cascade
func (s *SoldierService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSoldierNotFound
		}
		return fmt.Errorf("failed to get soldier: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete soldier: %w", err)
	}
	return nil
}

// AddConstraint attaches a scheduling constraint to a soldier
func (s *SoldierService) AddConstraint(soldierID uuid.UUID, req *AddConstraintRequest) (*models.SoldierConstraint, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ConstraintType.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	// A constraint must name a weekday or a complete date range.
	if req.DayOfWeek == nil && (req.DateFrom == nil || req.DateTo == nil) {
		return nil, apperrors.ErrInvalidConstraint
	}
	if req.DateFrom != nil && req.DateTo != nil && req.DateTo.Before(*req.DateFrom) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.repo.GetByID(soldierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to get soldier: %w", err)
	}

	constraint := &models.SoldierConstraint{
		SoldierID:      soldierID,
		DayOfWeek:      req.DayOfWeek,
		DateFrom:       req.DateFrom,
		DateTo:         req.DateTo,
		ConstraintType: req.ConstraintType,
		Details:        req.Details,
	}
	if err := s.constraintRepo.Create(constraint); err != nil {
		return nil, fmt.Errorf("failed to create constraint: %w", err)
	}
	return constraint, nil
}

// RemoveConstraint deletes a constraint from a soldier
func (s *SoldierService) RemoveConstraint(soldierID, constraintID uuid.UUID) error {
	constraint, err := s.constraintRepo.GetByID(constraintID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrConstraintNotFound
		}
		return fmt.Errorf("failed to get constraint: %w", err)
	}
	if constraint.SoldierID != soldierID {
		return apperrors.ErrConstraintNotFound
	}
	if err := s.constraintRepo.Delete(constraintID); err != nil {
		return fmt.Errorf("failed to delete constraint: %w", err)
	}
	return nil
}

// AddExemption attaches an exemption code to a soldier
func (s *SoldierService) AddExemption(soldierID uuid.UUID, req *AddExemptionRequest) (*models.SoldierExemption, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ExemptionCode.IsValid() {
		return nil, apperrors.ErrInvalidExemptionCode
	}

	if _, err := s.repo.GetByID(soldierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to get soldier: %w", err)
	}

	exists, err := s.exemptionRepo.Exists(soldierID, req.ExemptionCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check exemption: %w", err)
	}
	if exists {
		return nil, apperrors.ErrExemptionExists
	}

	exemption := &models.SoldierExemption{
		SoldierID:     soldierID,
		ExemptionCode: req.ExemptionCode,
	}
	if err := s.exemptionRepo.Create(exemption); err != nil {
		return nil, fmt.Errorf("failed to create exemption: %w", err)
	}
	return exemption, nil
}

// RemoveExemption deletes an exemption from a soldier
func (s *SoldierService) RemoveExemption(soldierID, exemptionID uuid.UUID) error {
	exemptions, err := s.exemptionRepo.GetBySoldierID(soldierID)
	if err != nil {
		return fmt.Errorf("failed to get exemptions: %w", err)
	}
	for i := range exemptions {
		if exemptions[i].ID == exemptionID {
			if err := s.exemptionRepo.Delete(exemptionID); err != nil {
				return fmt.Errorf("failed to delete exemption: %w", err)
			}
			return nil
		}
	}
	return apperrors.ErrExemptionNotFound
}

// toResponse converts a soldier model to response
func (s *SoldierService) toResponse(soldier *models.Soldier) *SoldierResponse {
	response := &SoldierResponse{
		ID:                      soldier.ID,
		FullName:                soldier.FullName,
		PhoneE164:               soldier.PhoneE164,
		DepartmentID:            soldier.DepartmentID,
		Status:                  soldier.Status,
		ExcludeFromAutoSchedule: soldier.ExcludeFromAutoSchedule,
		Notes:                   soldier.Notes,
		CreatedAt:               soldier.CreatedAt.Format(time.RFC3339),
	}
	if soldier.Department.ID != uuid.Nil {
		response.DepartmentName = soldier.Department.Name
	}
	if len(soldier.Constraints) > 0 {
		response.Constraints = soldier.Constraints
	}
	for i := range soldier.Exemptions {
		response.Exemptions = append(response.Exemptions, soldier.Exemptions[i].ExemptionCode)
	}
	return response
}
