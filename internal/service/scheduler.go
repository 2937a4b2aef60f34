package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchedulerStore defines the persistence operations the planning engine
// needs. Reads are lookups; writes are single-row inserts, each one an
// opaque, synchronous, fallible call. There is no transaction spanning a
// bulk run: a mid-run failure leaves earlier days committed.
type SchedulerStore interface {
	GetActiveSoldiers() ([]models.Soldier, error)
	GetActiveDutyTypes() ([]models.DutyType, error)
	GetDutyType(id uuid.UUID) (*models.DutyType, error)
	GetDutyEvent(id uuid.UUID) (*models.DutyEvent, error)
	GetAssignmentsByEvent(eventID uuid.UUID) ([]models.DutyAssignment, error)
	GetAllConstraints() ([]models.SoldierConstraint, error)
	GetAllExemptions() ([]models.SoldierExemption, error)
	SumPointsSince(soldierID uuid.UUID, since time.Time) (float64, error)
	CreateEvent(event *models.DutyEvent) error
	CreateAssignment(assignment *models.DutyAssignment) error
}

// SchedulerService runs the fairness-ranked duty assignment engine
type SchedulerService struct {
	store        SchedulerStore
	validator    *validator.Validate
	windowDays   int
	dayStartHour int
	now          func() time.Time
}

// NewSchedulerService creates a new scheduler service. windowDays is the
// trailing fairness window; dayStartHour anchors whole-day events.
func NewSchedulerService(store SchedulerStore, validator *validator.Validate, windowDays, dayStartHour int) *SchedulerService {
	return &SchedulerService{
		store:        store,
		validator:    validator,
		windowDays:   windowDays,
		dayStartHour: dayStartHour,
		now:          time.Now,
	}
}

// AutoScheduleRequest represents the request to bulk-plan a date range
type AutoScheduleRequest struct {
	FromDate        string      `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate          string      `json:"to_date" validate:"required,datetime=2006-01-02"`
	DutyTypeIDs     []uuid.UUID `json:"duty_type_ids,omitempty"`
	ExcludeOptedOut bool        `json:"exclude_opted_out"`
}

// PlannedEvent summarizes one created event in a bulk run
type PlannedEvent struct {
	Date     string   `json:"date"`
	DutyType string   `json:"duty_type"`
	Soldiers []string `json:"soldiers"`
}

// AutoScheduleResponse represents the result of a bulk planning run
type AutoScheduleResponse struct {
	Message           string         `json:"message"`
	CreatedEventCount int            `json:"created_event_count"`
	Created           []PlannedEvent `json:"created"`
}

// AutoAssignRequest represents the request to fill a single existing event
type AutoAssignRequest struct {
	// ExcludeOptedOut defaults to true when omitted.
	ExcludeOptedOut *bool `json:"exclude_opted_out,omitempty"`
}

// AutoAssignResponse represents the result of filling a single event
type AutoAssignResponse struct {
	Message  string   `json:"message"`
	Assigned int      `json:"assigned"`
	Soldiers []string `json:"soldiers"`
}

// AutoSchedule plans duty events over a date range. Days, duty types and
// slots are walked strictly in order; the working-load accumulator carries
// across the whole run, so reordering would change who gets assigned.
func (s *SchedulerService) AutoSchedule(req *AutoScheduleRequest, createdBy string) (*AutoScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	from, err := time.Parse("2006-01-02", req.FromDate)
	if err != nil {
		return nil, apperrors.ErrMissingDateRange
	}
	to, err := time.Parse("2006-01-02", req.ToDate)
	if err != nil {
		return nil, apperrors.ErrMissingDateRange
	}
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	dutyTypes, err := s.store.GetActiveDutyTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load duty types: %w", err)
	}
	if len(req.DutyTypeIDs) > 0 {
		wanted := make(map[uuid.UUID]bool, len(req.DutyTypeIDs))
		for _, id := range req.DutyTypeIDs {
			wanted[id] = true
		}
		filtered := dutyTypes[:0]
		for _, t := range dutyTypes {
			if wanted[t.ID] {
				filtered = append(filtered, t)
			}
		}
		dutyTypes = filtered
	}

	pool, ctx, err := s.loadPool(req.ExcludeOptedOut)
	if err != nil {
		return nil, err
	}

	constraintsBySoldier, exemptionsBySoldier, err := s.loadFilters()
	if err != nil {
		return nil, err
	}

	log := logger.New().WithFields(map[string]interface{}{
		"from": req.FromDate,
		"to":   req.ToDate,
	})
	log.Infof("starting bulk planning run over %d duty types", len(dutyTypes))

	var created []PlannedEvent
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for i := range dutyTypes {
			dutyType := &dutyTypes[i]
			if !occursOn(dutyType, day) {
				continue
			}

			eligible := make([]models.Soldier, 0, len(pool))
			for _, soldier := range pool {
				if isEligible(&soldier, exemptionsBySoldier[soldier.ID], constraintsBySoldier[soldier.ID], dutyType, day) {
					eligible = append(eligible, soldier)
				}
			}
			if len(eligible) == 0 {
				log.Debugf("no eligible soldiers for %s on %s", dutyType.Name, day.Format("2006-01-02"))
				continue
			}

			planned, err := s.planEvent(ctx, dutyType, day, eligible, createdBy)
			if err != nil {
				return nil, err
			}
			created = append(created, *planned)
		}
	}

	return &AutoScheduleResponse{
		Message:           fmt.Sprintf("created %d duty events", len(created)),
		CreatedEventCount: len(created),
		Created:           created,
	}, nil
}

// planEvent materializes one event and its assignments for a single
// (date, duty type) pair, consuming and updating the run's working loads.
func (s *SchedulerService) planEvent(ctx *planContext, dutyType *models.DutyType, day time.Time, eligible []models.Soldier, createdBy string) (*PlannedEvent, error) {
	ranked := ctx.rankByLoad(eligible)

	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		Status:     models.EventStatusPlanned,
		CreatedBy:  createdBy,
	}

	var slots []SlotWindow
	if dutyType.IsHourly() {
		start := atHour(day, dutyType.DefaultStartHour)
		end := atHour(day, dutyType.DefaultEndHour)
		slots = generateSlots(start, end, dutyType.RotationIntervalHours)
		event.StartAt = start
		event.EndAt = &end
	} else {
		event.StartAt = atHour(day, s.dayStartHour)
	}

	if err := s.store.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create duty event: %w", err)
	}

	needed := dutyType.DefaultRequiredPeople
	if dutyType.IsHourly() {
		needed = len(slots)
	}
	if needed > len(ranked) {
		needed = len(ranked)
	}

	var names []string
	for i := 0; i < needed; i++ {
		soldier := ranked[i]
		assignment := &models.DutyAssignment{
			DutyEventID: event.ID,
			SoldierID:   soldier.ID,
		}
		if dutyType.IsHourly() {
			slot := slots[i]
			assignment.SlotStartAt = &slot.Start
			assignment.SlotEndAt = &slot.End
		}
		if err := s.store.CreateAssignment(assignment); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
		ctx.addLoad(soldier.ID, dutyType.WeightPoints)
		names = append(names, soldier.FullName)
	}

	return &PlannedEvent{
		Date:     day.Format("2006-01-02"),
		DutyType: dutyType.Name,
		Soldiers: names,
	}, nil
}

// AutoAssign fills the open slots of an existing event with the
// lowest-load eligible soldiers not already assigned to it.
func (s *SchedulerService) AutoAssign(eventID uuid.UUID, req *AutoAssignRequest) (*AutoAssignResponse, error) {
	excludeOptedOut := true
	if req != nil && req.ExcludeOptedOut != nil {
		excludeOptedOut = *req.ExcludeOptedOut
	}

	event, err := s.store.GetDutyEvent(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyEventNotFound
		}
		return nil, fmt.Errorf("failed to get duty event: %w", err)
	}

	dutyType, err := s.store.GetDutyType(event.DutyTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDutyTypeNotFound
		}
		return nil, fmt.Errorf("failed to get duty type: %w", err)
	}

	pool, ctx, err := s.loadPool(excludeOptedOut)
	if err != nil {
		return nil, err
	}

	constraintsBySoldier, exemptionsBySoldier, err := s.loadFilters()
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetAssignmentsByEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	// Soldiers already on the event count their weight toward the working
	// load and are excluded from the candidate pool.
	alreadyAssigned := make(map[uuid.UUID]bool, len(existing))
	for i := range existing {
		alreadyAssigned[existing[i].SoldierID] = true
		ctx.addLoad(existing[i].SoldierID, dutyType.WeightPoints)
	}

	day := event.StartAt
	candidates := make([]models.Soldier, 0, len(pool))
	for _, soldier := range pool {
		if alreadyAssigned[soldier.ID] {
			continue
		}
		if isEligible(&soldier, exemptionsBySoldier[soldier.ID], constraintsBySoldier[soldier.ID], dutyType, day) {
			candidates = append(candidates, soldier)
		}
	}
	ranked := ctx.rankByLoad(candidates)

	var slots []SlotWindow
	hasSlotWindows := dutyType.IsHourly() && event.EndAt != nil
	if hasSlotWindows {
		slots = openSlots(generateSlots(event.StartAt, *event.EndAt, dutyType.RotationIntervalHours), existing)
	} else {
		needed := dutyType.DefaultRequiredPeople - len(existing)
		for i := 0; i < needed; i++ {
			slots = append(slots, SlotWindow{})
		}
	}

	toAssign := len(slots)
	if toAssign > len(ranked) {
		toAssign = len(ranked)
	}

	var names []string
	for i := 0; i < toAssign; i++ {
		soldier := ranked[i]
		assignment := &models.DutyAssignment{
			DutyEventID: eventID,
			SoldierID:   soldier.ID,
		}
		if hasSlotWindows {
			slot := slots[i]
			assignment.SlotStartAt = &slot.Start
			assignment.SlotEndAt = &slot.End
		}
		if err := s.store.CreateAssignment(assignment); err != nil {
			return nil, fmt.Errorf("failed to create assignment: %w", err)
		}
		ctx.addLoad(soldier.ID, dutyType.WeightPoints)
		names = append(names, soldier.FullName)
	}

	message := "no open slots to fill"
	if toAssign > 0 {
		message = fmt.Sprintf("assigned %d soldiers: %s", toAssign, strings.Join(names, ", "))
	}

	return &AutoAssignResponse{
		Message:  message,
		Assigned: toAssign,
		Soldiers: names,
	}, nil
}

// loadPool fetches the active roster and seeds a planning context with
// each soldier's trailing-window ledger sum.
func (s *SchedulerService) loadPool(excludeOptedOut bool) ([]models.Soldier, *planContext, error) {
	soldiers, err := s.store.GetActiveSoldiers()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load soldiers: %w", err)
	}
	if excludeOptedOut {
		kept := soldiers[:0]
		for _, soldier := range soldiers {
			if !soldier.ExcludeFromAutoSchedule {
				kept = append(kept, soldier)
			}
		}
		soldiers = kept
	}
	if len(soldiers) == 0 {
		return nil, nil, apperrors.ErrNoActiveSoldiers
	}

	cutoff := s.now().AddDate(0, 0, -s.windowDays)
	ctx := newPlanContext()
	for _, soldier := range soldiers {
		load, err := s.store.SumPointsSince(soldier.ID, cutoff)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute load for soldier %s: %w", soldier.ID, err)
		}
		ctx.setLoad(soldier.ID, load)
	}
	return soldiers, ctx, nil
}

// loadFilters fetches all constraints and exemptions keyed by soldier
func (s *SchedulerService) loadFilters() (map[uuid.UUID][]models.SoldierConstraint, map[uuid.UUID][]models.ExemptionCode, error) {
	constraints, err := s.store.GetAllConstraints()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load constraints: %w", err)
	}
	constraintsBySoldier := make(map[uuid.UUID][]models.SoldierConstraint)
	for _, c := range constraints {
		constraintsBySoldier[c.SoldierID] = append(constraintsBySoldier[c.SoldierID], c)
	}

	exemptions, err := s.store.GetAllExemptions()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load exemptions: %w", err)
	}
	exemptionsBySoldier := make(map[uuid.UUID][]models.ExemptionCode)
	for _, e := range exemptions {
		exemptionsBySoldier[e.SoldierID] = append(exemptionsBySoldier[e.SoldierID], e.ExemptionCode)
	}

	return constraintsBySoldier, exemptionsBySoldier, nil
}

func atHour(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
