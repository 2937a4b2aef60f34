package service

import (
	"sort"
	"time"

	"duty-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// slotStartMatchTolerance decides whether an existing assignment already
// covers a generated rotation window, matched by slot-start proximity.
const slotStartMatchTolerance = 60 * time.Second

// SlotWindow is one rotation window within an hourly event, needing
// exactly one soldier.
type SlotWindow struct {
	Start time.Time
	End   time.Time
}

// planContext is the run-scoped accumulator for one planning run. Working
// loads start from the trailing-window ledger sums and are incremented as
// slots are provisionally bound, so later occurrences in the same run see
// the effect of earlier ones. It is discarded when the run ends.
type planContext struct {
	loads map[uuid.UUID]float64
}

func newPlanContext() *planContext {
	return &planContext{loads: make(map[uuid.UUID]float64)}
}

func (p *planContext) load(soldierID uuid.UUID) float64 {
	return p.loads[soldierID]
}

func (p *planContext) setLoad(soldierID uuid.UUID, load float64) {
	p.loads[soldierID] = load
}

func (p *planContext) addLoad(soldierID uuid.UUID, delta float64) {
	p.loads[soldierID] += delta
}

// rankByLoad returns the pool sorted ascending by current working load.
// The sort is stable, so equal loads keep roster order and runs are
// reproducible for the same inputs.
func (p *planContext) rankByLoad(pool []models.Soldier) []models.Soldier {
	ranked := make([]models.Soldier, len(pool))
	copy(ranked, pool)
	sort.SliceStable(ranked, func(i, j int) bool {
		return p.load(ranked[i].ID) < p.load(ranked[j].ID)
	})
	return ranked
}

// isEligible decides whether a soldier may take the given duty type on the
// given date. Pure predicate over the supplied state.
func isEligible(
	soldier *models.Soldier,
	exemptions []models.ExemptionCode,
	constraints []models.SoldierConstraint,
	dutyType *models.DutyType,
	date time.Time,
) bool {
	if soldier.Status != models.SoldierStatusActive {
		return false
	}
	for _, code := range exemptions {
		if code.Matches(dutyType) {
			return false
		}
	}
	for i := range constraints {
		if constraints[i].AppliesTo(date) {
			return false
		}
	}
	return true
}

// occursOn gates a duty type's frequency against a calendar date: weekly
// duties occur only on Sunday, monthly duties only on the first of the
// month, daily duties every day.
func occursOn(dutyType *models.DutyType, date time.Time) bool {
	switch dutyType.DefaultFrequency {
	case models.DutyFrequencyWeekly:
		return date.Weekday() == time.Sunday
	case models.DutyFrequencyMonthly:
		return date.Day() == 1
	}
	return true
}

// generateSlots expands an hourly duty type's rotation rule over [start,
// end) into concrete windows. The final window is truncated to the event
// end when the interval does not divide evenly; it is never dropped.
func generateSlots(start, end time.Time, intervalHours int) []SlotWindow {
	if intervalHours <= 0 || !start.Before(end) {
		return nil
	}
	interval := time.Duration(intervalHours) * time.Hour

	var slots []SlotWindow
	for t := start; t.Before(end); t = t.Add(interval) {
		slotEnd := t.Add(interval)
		if slotEnd.After(end) {
			slotEnd = end
		}
		slots = append(slots, SlotWindow{Start: t, End: slotEnd})
	}
	return slots
}

// openSlots filters generated windows down to those not already covered by
// an existing assignment, matched by slot-start proximity.
func openSlots(slots []SlotWindow, existing []models.DutyAssignment) []SlotWindow {
	var open []SlotWindow
	for _, slot := range slots {
		covered := false
		for i := range existing {
			if existing[i].SlotStartAt == nil {
				continue
			}
			diff := existing[i].SlotStartAt.Sub(slot.Start)
			if diff < 0 {
				diff = -diff
			}
			if diff < slotStartMatchTolerance {
				covered = true
				break
			}
		}
		if !covered {
			open = append(open, slot)
		}
	}
	return open
}
