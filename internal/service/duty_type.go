package service

import (
	"errors"
	"fmt"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DutyTypeService handles business logic for the duty type catalog
type DutyTypeService struct {
	repo      repository.DutyTypeRepositoryInterface
	validator *validator.Validate
}

// NewDutyTypeService creates a new duty type service
func NewDutyTypeService(repo repository.DutyTypeRepositoryInterface, validator *validator.Validate) *DutyTypeService {
	return &DutyTypeService{repo: repo, validator: validator}
}

// CreateDutyTypeRequest represents the request to create a duty type
type CreateDutyTypeRequest struct {
	Name                  string               `json:"name" validate:"required,max=100"`
	Category              string               `json:"category" validate:"required,max=100"`
	WeightPoints          float64              `json:"weight_points" validate:"required,gt=0"`
	DefaultRequiredPeople int                  `json:"default_required_people" validate:"required,min=1"`
	DefaultFrequency      models.DutyFrequency `json:"default_frequency" validate:"required"`
	ScheduleKind          models.ScheduleKind  `json:"schedule_kind" validate:"required"`
	DefaultStartHour      *int                 `json:"default_start_hour,omitempty" validate:"omitempty,min=0,max=23"`
	DefaultEndHour        *int                 `json:"default_end_hour,omitempty" validate:"omitempty,min=1,max=24"`
	RotationIntervalHours *int                 `json:"rotation_interval_hours,omitempty" validate:"omitempty,min=1"`
	IsActive              *bool                `json:"is_active,omitempty"`
}

// UpdateDutyTypeRequest represents the request to update a duty type
type UpdateDutyTypeRequest struct {
	Name                  *string               `json:"name,omitempty" validate:"omitempty,max=100"`
	Category              *string               `json:"category,omitempty" validate:"omitempty,max=100"`
	WeightPoints          *float64              `json:"weight_points,omitempty" validate:"omitempty,gt=0"`
	DefaultRequiredPeople *int                  `json:"default_required_people,omitempty" validate:"omitempty,min=1"`
	DefaultFrequency      *models.DutyFrequency `json:"default_frequency,omitempty"`
	ScheduleKind          *models.ScheduleKind  `json:"schedule_kind,omitempty"`
	DefaultStartHour      *int                  `json:"default_start_hour,omitempty" validate:"omitempty,min=0,max=23"`
	DefaultEndHour        *int                  `json:"default_end_hour,omitempty" validate:"omitempty,min=1,max=24"`
	RotationIntervalHours *int                  `json:"rotation_interval_hours,omitempty" validate:"omitempty,min=1"`
	IsActive              *bool                 `json:"is_active,omitempty"`
}

// DutyTypeResponse represents the response for duty type operations
type DutyTypeResponse struct {
	ID                    uuid.UUID            `json:"id"`
	Name                  string               `json:"name"`
	Category              string               `json:"category"`
	WeightPoints          float64              `json:"weight_points"`
	DefaultRequiredPeople int                  `json:"default_required_people"`
	DefaultFrequency      models.DutyFrequency `json:"default_frequency"`
	ScheduleKind          models.ScheduleKind  `json:"schedule_kind"`
	DefaultStartHour      int                  `json:"default_start_hour"`
	DefaultEndHour        int                  `json:"default_end_hour"`
	RotationIntervalHours int                  `json:"rotation_interval_hours"`
	IsActive              bool                 `json:"is_active"`
	CreatedAt             string               `json:"created_at"`
}

// DutyTypeListResponse represents a paginated list of duty types
type DutyTypeListResponse struct {
	DutyTypes []DutyTypeResponse `json:"duty_types"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new duty type
func (s *DutyTypeService) Create(req *CreateDutyTypeRequest) (*DutyTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.DefaultFrequency.IsValid() {
		return nil, errors.New("invalid frequency")
	}
	if !req.ScheduleKind.IsValid() {
		return nil, errors.New("invalid schedule kind")
	}

	dutyType := &models.DutyType{
		Name:                  req.Name,
		Category:              req.Category,
		WeightPoints:          req.WeightPoints,
		DefaultRequiredPeople: req.DefaultRequiredPeople,
		DefaultFrequency:      req.DefaultFrequency,
		ScheduleKind:          req.ScheduleKind,
		DefaultStartHour:      8,
		DefaultEndHour:        20,
		RotationIntervalHours: 2,
		IsActive:              true,
	}
	if req.DefaultStartHour != nil {
		dutyType.DefaultStartHour = *req.DefaultStartHour
	}
	if req.DefaultEndHour != nil {
		dutyType.DefaultEndHour = *req.DefaultEndHour
	}
	if req.RotationIntervalHours != nil {
		dutyType.RotationIntervalHours = *req.RotationIntervalHours
	}
	if req.IsActive != nil {
		dutyType.IsActive = *req.IsActive
	}

	if err := validateRotation(dutyType); err != nil {
		return nil, err
	}

	if err := s.repo.Create(dutyType); err != nil {
		return nil, fmt.Errorf("failed to create duty type: %w", err)
	}

	return s.toResponse(dutyType), nil
}

// GetByID retrieves a duty type by ID
func (s *DutyTypeService) GetByID(id uuid.UUID) (*DutyTypeResponse, error) {
	dutyType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyTypeNotFound
		}
		return nil, fmt.Errorf("failed to get duty type: %w", err)
	}
	return s.toResponse(dutyType), nil
}

// GetAll retrieves duty types with pagination
func (s *DutyTypeService) GetAll(page, pageSize int) (*DutyTypeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	dutyTypes, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get duty types: %w", err)
	}

	responses := make([]DutyTypeResponse, len(dutyTypes))
	for i := range dutyTypes {
		responses[i] = *s.toResponse(&dutyTypes[i])
	}

	return &DutyTypeListResponse{
		DutyTypes: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a duty type
func (s *DutyTypeService) Update(id uuid.UUID, req *UpdateDutyTypeRequest) (*DutyTypeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	dutyType, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyTypeNotFound
		}
		return nil, fmt.Errorf("failed to get duty type: %w", err)
	}

	if req.Name != nil {
		dutyType.Name = *req.Name
	}
	if req.Category != nil {
		dutyType.Category = *req.Category
	}
	if req.WeightPoints != nil {
		dutyType.WeightPoints = *req.WeightPoints
	}
	if req.DefaultRequiredPeople != nil {
		dutyType.DefaultRequiredPeople = *req.DefaultRequiredPeople
	}
	if req.DefaultFrequency != nil {
		if !req.DefaultFrequency.IsValid() {
			return nil, errors.New("invalid frequency")
		}
		dutyType.DefaultFrequency = *req.DefaultFrequency
	}
	if req.ScheduleKind != nil {
		if !req.ScheduleKind.IsValid() {
			return nil, errors.New("invalid schedule kind")
		}
		dutyType.ScheduleKind = *req.ScheduleKind
	}
	if req.DefaultStartHour != nil {
		dutyType.DefaultStartHour = *req.DefaultStartHour
	}
	if req.DefaultEndHour != nil {
		dutyType.DefaultEndHour = *req.DefaultEndHour
	}
	if req.RotationIntervalHours != nil {
		dutyType.RotationIntervalHours = *req.RotationIntervalHours
	}
	if req.IsActive != nil {
		dutyType.IsActive = *req.IsActive
	}

	if err := validateRotation(dutyType); err != nil {
		return nil, err
	}

	if err := s.repo.Update(dutyType); err != nil {
		return nil, fmt.Errorf("failed to update duty type: %w", err)
	}

	return s.toResponse(dutyType), nil
}

// Delete deletes a duty type and cascades its events
func (s *DutyTypeService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDutyTypeNotFound
		}
		return fmt.Errorf("failed to get duty type: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete duty type: %w", err)
	}
	return nil
}

// validateRotation enforces the hourly invariant: start hour before end
// hour and an interval that yields at least one slot.
func validateRotation(dutyType *models.DutyType) error {
	if !dutyType.IsHourly() {
		return nil
	}
	if dutyType.DefaultStartHour >= dutyType.DefaultEndHour {
		return apperrors.ErrInvalidRotation
	}
	if dutyType.RotationIntervalHours < 1 {
		return apperrors.ErrInvalidRotation
	}
	return nil
}

// toResponse converts a duty type model to response
func (s *DutyTypeService) toResponse(dutyType *models.DutyType) *DutyTypeResponse {
	return &DutyTypeResponse{
		ID:                    dutyType.ID,
		Name:                  dutyType.Name,
		Category:              dutyType.Category,
		WeightPoints:          dutyType.WeightPoints,
		DefaultRequiredPeople: dutyType.DefaultRequiredPeople,
		DefaultFrequency:      dutyType.DefaultFrequency,
		ScheduleKind:          dutyType.ScheduleKind,
		DefaultStartHour:      dutyType.DefaultStartHour,
		DefaultEndHour:        dutyType.DefaultEndHour,
		RotationIntervalHours: dutyType.RotationIntervalHours,
		IsActive:              dutyType.IsActive,
		CreatedAt:             dutyType.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
