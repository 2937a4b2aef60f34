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

// DepartmentService handles business logic for departments
type DepartmentService struct {
	repo      *repository.DepartmentRepository
	validator *validator.Validate
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo *repository.DepartmentRepository, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{repo: repo, validator: validator}
}

// CreateDepartmentRequest represents the request to create a department
type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// DepartmentResponse represents the response for department operations
type DepartmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
}

// DepartmentListResponse represents a paginated list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new department
func (s *DepartmentService) Create(req *CreateDepartmentRequest) (*DepartmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.repo.GetByName(req.Name); err == nil {
		return nil, apperrors.ErrDepartmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check department name: %w", err)
	}

	department := &models.Department{Name: req.Name}
	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}

	return s.toResponse(department), nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return s.toResponse(department), nil
}

// GetAll retrieves departments with pagination
func (s *DepartmentService) GetAll(page, pageSize int) (*DepartmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	departments, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get departments: %w", err)
	}

	responses := make([]DepartmentResponse, len(departments))
	for i := range departments {
		responses[i] = *s.toResponse(&departments[i])
	}

	return &DepartmentListResponse{
		Departments: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Delete deletes a department and cascades its soldiers
func (s *DepartmentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to get department: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// toResponse converts a department model to response
func (s *DepartmentService) toResponse(department *models.Department) *DepartmentResponse {
	return &DepartmentResponse{
		ID:        department.ID,
		Name:      department.Name,
		CreatedAt: department.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
