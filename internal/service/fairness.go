package service

import (
	"fmt"
	"sort"
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/repository"

	"github.com/google/uuid"
)

// FairnessService builds the per-soldier load report used to audit the
// scheduler's distribution
type FairnessService struct {
	soldierRepo    repository.SoldierRepositoryInterface
	assignmentRepo repository.DutyAssignmentRepositoryInterface
	ledgerRepo     repository.PointsLedgerRepositoryInterface
	now            func() time.Time
}

// NewFairnessService creates a new fairness service
func NewFairnessService(
	soldierRepo repository.SoldierRepositoryInterface,
	assignmentRepo repository.DutyAssignmentRepositoryInterface,
	ledgerRepo repository.PointsLedgerRepositoryInterface,
) *FairnessService {
	return &FairnessService{
		soldierRepo:    soldierRepo,
		assignmentRepo: assignmentRepo,
		ledgerRepo:     ledgerRepo,
		now:            time.Now,
	}
}

// CategoryBreakdown aggregates a soldier's duties within one category
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Points   float64 `json:"points"`
}

// FairnessEntry represents one soldier's row in the fairness report
type FairnessEntry struct {
	SoldierID      uuid.UUID            `json:"soldier_id"`
	FullName       string               `json:"full_name"`
	DepartmentName string               `json:"department_name,omitempty"`
	Status         models.SoldierStatus `json:"status"`
	TotalPoints    float64              `json:"total_points"`
	TotalDuties    int                  `json:"total_duties"`
	Breakdown      []CategoryBreakdown  `json:"breakdown"`
}

// Report computes per-soldier accrued points and duty counts over the
// trailing window, most loaded first
func (s *FairnessService) Report(rangeDays int) ([]FairnessEntry, error) {
	if rangeDays <= 0 {
		rangeDays = 60
	}
	cutoff := s.now().AddDate(0, 0, -rangeDays)

	soldiers, err := s.allSoldiers()
	if err != nil {
		return nil, err
	}

	report := make([]FairnessEntry, 0, len(soldiers))
	for i := range soldiers {
		soldier := &soldiers[i]

		total, err := s.ledgerRepo.SumDeltasSince(soldier.ID, cutoff)
		if err != nil {
			return nil, fmt.Errorf("failed to sum points for soldier %s: %w", soldier.ID, err)
		}

		assignments, err := s.assignmentRepo.GetBySoldierSince(soldier.ID, cutoff)
		if err != nil {
			return nil, fmt.Errorf("failed to get assignments for soldier %s: %w", soldier.ID, err)
		}

		byCategory := make(map[string]*CategoryBreakdown)
		for j := range assignments {
			dutyType := assignments[j].DutyEvent.DutyType
			if dutyType.ID == uuid.Nil {
				continue
			}
			entry, ok := byCategory[dutyType.Category]
			if !ok {
				entry = &CategoryBreakdown{Category: dutyType.Category}
				byCategory[dutyType.Category] = entry
			}
			entry.Count++
			entry.Points += dutyType.WeightPoints
		}

		breakdown := make([]CategoryBreakdown, 0, len(byCategory))
		for _, entry := range byCategory {
			breakdown = append(breakdown, *entry)
		}
		sort.Slice(breakdown, func(a, b int) bool {
			return breakdown[a].Category < breakdown[b].Category
		})

		row := FairnessEntry{
			SoldierID:   soldier.ID,
			FullName:    soldier.FullName,
			Status:      soldier.Status,
			TotalPoints: total,
			TotalDuties: len(assignments),
			Breakdown:   breakdown,
		}
		if soldier.Department.ID != uuid.Nil {
			row.DepartmentName = soldier.Department.Name
		}
		report = append(report, row)
	}

	sort.SliceStable(report, func(a, b int) bool {
		return report[a].TotalPoints > report[b].TotalPoints
	})
	return report, nil
}

const soldierPageSize = 500

// allSoldiers pages through the roster so the report covers every soldier.
func (s *FairnessService) allSoldiers() ([]models.Soldier, error) {
	var soldiers []models.Soldier
	for offset := 0; ; offset += soldierPageSize {
		page, total, err := s.soldierRepo.GetAll(soldierPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to get soldiers: %w", err)
		}
		soldiers = append(soldiers, page...)
		if len(page) < soldierPageSize || int64(len(soldiers)) >= total {
			return soldiers, nil
		}
	}
}
