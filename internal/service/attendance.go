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

// AttendanceService handles business logic for attendance records
type AttendanceService struct {
	repo        *repository.AttendanceRepository
	soldierRepo repository.SoldierRepositoryInterface
	validator   *validator.Validate
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(repo *repository.AttendanceRepository, soldierRepo repository.SoldierRepositoryInterface, validator *validator.Validate) *AttendanceService {
	return &AttendanceService{repo: repo, soldierRepo: soldierRepo, validator: validator}
}

// ReportAttendanceRequest represents the request to report attendance for one soldier and date
type ReportAttendanceRequest struct {
	SoldierID uuid.UUID               `json:"soldier_id" validate:"required"`
	Date      string                  `json:"date" validate:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" validate:"required"`
	Notes     string                  `json:"notes,omitempty"`
}

// AttendanceResponse represents one attendance record
type AttendanceResponse struct {
	ID          uuid.UUID               `json:"id"`
	SoldierID   uuid.UUID               `json:"soldier_id"`
	SoldierName string                  `json:"soldier_name,omitempty"`
	Date        string                  `json:"date"`
	Status      models.AttendanceStatus `json:"status"`
	Notes       string                  `json:"notes"`
	ReportedBy  string                  `json:"reported_by"`
}

// WeeklyGridResponse represents a 7-day attendance grid starting at a given date
type WeeklyGridResponse struct {
	StartDate string                          `json:"start_date"`
	Days      []string                        `json:"days"`
	Records   map[string][]AttendanceResponse `json:"records"`
}

// Report upserts the attendance record for (soldier, date)
func (s *AttendanceService) Report(req *ReportAttendanceRequest, reportedBy string) (*AttendanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.soldierRepo.GetByID(req.SoldierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSoldierNotFound
		}
		return nil, fmt.Errorf("failed to verify soldier: %w", err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.ErrInvalidDateRange
	}

	record := &models.AttendanceRecord{
		SoldierID:  req.SoldierID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
		ReportedBy: reportedBy,
	}
	if err := s.repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return s.toResponse(record), nil
}

// WeeklyGrid returns attendance records for the 7 days starting at startDate
func (s *AttendanceService) WeeklyGrid(startDate string) (*WeeklyGridResponse, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, apperrors.ErrInvalidDateRange
	}
	end := start.AddDate(0, 0, 6)

	records, err := s.repo.GetByRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}

	grid := &WeeklyGridResponse{
		StartDate: startDate,
		Records:   make(map[string][]AttendanceResponse),
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		grid.Days = append(grid.Days, day)
		grid.Records[day] = []AttendanceResponse{}
	}
	for i := range records {
		day := records[i].Date.Format("2006-01-02")
		grid.Records[day] = append(grid.Records[day], *s.toResponse(&records[i]))
	}
	return grid, nil
}

// toResponse converts an attendance record model to response
func (s *AttendanceService) toResponse(record *models.AttendanceRecord) *AttendanceResponse {
	response := &AttendanceResponse{
		ID:         record.ID,
		SoldierID:  record.SoldierID,
		Date:       record.Date.Format("2006-01-02"),
		Status:     record.Status,
		Notes:      record.Notes,
		ReportedBy: record.ReportedBy,
	}
	if record.Soldier.ID != uuid.Nil {
		response.SoldierName = record.Soldier.FullName
	}
	return response
}
