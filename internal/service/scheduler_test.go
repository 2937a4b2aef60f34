package service_test

import (
	"testing"
	"time"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// fakeSchedulerStore is an in-memory SchedulerStore so engine behavior can
// be asserted without a database.
type fakeSchedulerStore struct {
	soldiers    []models.Soldier
	dutyTypes   []models.DutyType
	constraints []models.SoldierConstraint
	exemptions  []models.SoldierExemption
	points      map[uuid.UUID]float64

	events      []*models.DutyEvent
	assignments []models.DutyAssignment
}

func newFakeSchedulerStore() *fakeSchedulerStore {
	return &fakeSchedulerStore{points: make(map[uuid.UUID]float64)}
}

func (f *fakeSchedulerStore) GetActiveSoldiers() ([]models.Soldier, error) {
	var active []models.Soldier
	for _, s := range f.soldiers {
		if s.Status == models.SoldierStatusActive {
			active = append(active, s)
		}
	}
	return active, nil
}

func (f *fakeSchedulerStore) GetActiveDutyTypes() ([]models.DutyType, error) {
	var active []models.DutyType
	for _, t := range f.dutyTypes {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active, nil
}

func (f *fakeSchedulerStore) GetDutyType(id uuid.UUID) (*models.DutyType, error) {
	for i := range f.dutyTypes {
		if f.dutyTypes[i].ID == id {
			t := f.dutyTypes[i]
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSchedulerStore) GetDutyEvent(id uuid.UUID) (*models.DutyEvent, error) {
	for _, e := range f.events {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSchedulerStore) GetAssignmentsByEvent(eventID uuid.UUID) ([]models.DutyAssignment, error) {
	var out []models.DutyAssignment
	for _, a := range f.assignments {
		if a.DutyEventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeSchedulerStore) GetAllConstraints() ([]models.SoldierConstraint, error) {
	return f.constraints, nil
}

func (f *fakeSchedulerStore) GetAllExemptions() ([]models.SoldierExemption, error) {
	return f.exemptions, nil
}

func (f *fakeSchedulerStore) SumPointsSince(soldierID uuid.UUID, since time.Time) (float64, error) {
	return f.points[soldierID], nil
}

func (f *fakeSchedulerStore) CreateEvent(event *models.DutyEvent) error {
	event.ID = uuid.New()
	stored := *event
	f.events = append(f.events, &stored)
	return nil
}

func (f *fakeSchedulerStore) CreateAssignment(assignment *models.DutyAssignment) error {
	assignment.ID = uuid.New()
	f.assignments = append(f.assignments, *assignment)
	return nil
}

type SchedulerServiceTestSuite struct {
	suite.Suite
	store   *fakeSchedulerStore
	service *service.SchedulerService
}

func (s *SchedulerServiceTestSuite) SetupTest() {
	s.store = newFakeSchedulerStore()
	s.service = service.NewSchedulerService(s.store, validator.New(), 60, 8)
}

func (s *SchedulerServiceTestSuite) addSoldier(name string) models.Soldier {
	soldier := models.Soldier{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  name,
		Status:    models.SoldierStatusActive,
	}
	s.store.soldiers = append(s.store.soldiers, soldier)
	return soldier
}

func (s *SchedulerServiceTestSuite) addDailyDuty(name string, people int, weight float64) models.DutyType {
	dutyType := models.DutyType{
		BaseModel:             models.BaseModel{ID: uuid.New()},
		Name:                  name,
		Category:              "kitchen",
		WeightPoints:          weight,
		DefaultRequiredPeople: people,
		DefaultFrequency:      models.DutyFrequencyDaily,
		ScheduleKind:          models.ScheduleKindDaily,
		IsActive:              true,
	}
	s.store.dutyTypes = append(s.store.dutyTypes, dutyType)
	return dutyType
}

func (s *SchedulerServiceTestSuite) addHourlyDuty(name string, startHour, endHour, interval int) models.DutyType {
	dutyType := models.DutyType{
		BaseModel:             models.BaseModel{ID: uuid.New()},
		Name:                  name,
		Category:              "guards",
		WeightPoints:          1,
		DefaultRequiredPeople: 1,
		DefaultFrequency:      models.DutyFrequencyDaily,
		ScheduleKind:          models.ScheduleKindHourly,
		DefaultStartHour:      startHour,
		DefaultEndHour:        endHour,
		RotationIntervalHours: interval,
		IsActive:              true,
	}
	s.store.dutyTypes = append(s.store.dutyTypes, dutyType)
	return dutyType
}

func (s *SchedulerServiceTestSuite) TestAutoSchedulePicksLowestLoads() {
	a := s.addSoldier("Alice")
	b := s.addSoldier("Bob")
	c := s.addSoldier("Carol")
	d := s.addSoldier("Dave")
	s.store.points[a.ID] = 10
	s.store.points[c.ID] = 5

	s.addDailyDuty("Kitchen Morning", 2, 2)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Equal([]string{b.FullName, d.FullName}, resp.Created[0].Soldiers)
	s.Len(s.store.assignments, 2)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleSpreadsLoadAcrossRun() {
	names := []string{"Alice", "Bob", "Carol", "Dave"}
	counts := make(map[uuid.UUID]int)
	for _, name := range names {
		soldier := s.addSoldier(name)
		counts[soldier.ID] = 0
	}
	s.addDailyDuty("Latrines", 1, 1)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-05",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(4, resp.CreatedEventCount)
	for _, a := range s.store.assignments {
		counts[a.SoldierID]++
	}
	for id, count := range counts {
		s.Equal(1, count, "soldier %s should serve exactly once", id)
	}
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleLoadFeedbackAcrossDutyTypes() {
	a := s.addSoldier("Alice")
	b := s.addSoldier("Bob")
	s.addDailyDuty("Kitchen Morning", 1, 3)
	s.addDailyDuty("Kitchen Evening", 1, 3)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(2, resp.CreatedEventCount)
	// the first binding raises Alice's working load, so Bob gets the second
	s.Equal([]string{a.FullName}, resp.Created[0].Soldiers)
	s.Equal([]string{b.FullName}, resp.Created[1].Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleWeeklyOnSundayOnly() {
	s.addSoldier("Alice")
	s.addDailyDuty("Unit Cleaning", 1, 2)
	s.store.dutyTypes[0].DefaultFrequency = models.DutyFrequencyWeekly

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-08",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Equal("2026-03-08", resp.Created[0].Date)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleMonthlyOnFirstOnly() {
	s.addSoldier("Alice")
	s.addDailyDuty("Weekend Duty", 1, 2)
	s.store.dutyTypes[0].DefaultFrequency = models.DutyFrequencyMonthly

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-30",
		ToDate:          "2026-04-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Equal("2026-04-01", resp.Created[0].Date)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleHourlySlots() {
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		s.addSoldier(name)
	}
	s.addHourlyDuty("Day Guard", 8, 20, 3)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Require().Len(s.store.events, 1)
	s.Require().Len(s.store.assignments, 4)

	event := s.store.events[0]
	s.Equal(8, event.StartAt.Hour())
	s.Require().NotNil(event.EndAt)
	s.Equal(20, event.EndAt.Hour())

	seen := make(map[uuid.UUID]bool)
	for i, a := range s.store.assignments {
		s.Require().NotNil(a.SlotStartAt)
		s.Require().NotNil(a.SlotEndAt)
		s.Equal(8+3*i, a.SlotStartAt.Hour())
		s.False(seen[a.SoldierID], "each window goes to a distinct soldier")
		seen[a.SoldierID] = true
	}
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleClampsToRosterSize() {
	s.addSoldier("Alice")
	s.addSoldier("Bob")
	s.addDailyDuty("Kitchen Morning", 5, 1)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Len(resp.Created[0].Soldiers, 2)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleSkipsExemptSoldiers() {
	a := s.addSoldier("Alice")
	b := s.addSoldier("Bob")
	s.store.exemptions = append(s.store.exemptions, models.SoldierExemption{
		SoldierID:     a.ID,
		ExemptionCode: models.ExemptionGuards,
	})
	s.addHourlyDuty("Day Guard", 8, 12, 4)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Equal([]string{b.FullName}, resp.Created[0].Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleHonorsWeekdayConstraint() {
	a := s.addSoldier("Alice")
	b := s.addSoldier("Bob")
	friday := int(time.Friday)
	s.store.constraints = append(s.store.constraints, models.SoldierConstraint{
		SoldierID:      a.ID,
		DayOfWeek:      &friday,
		ConstraintType: models.ConstraintTypeNoAssign,
	})
	s.addDailyDuty("Latrines", 1, 1)

	// 2026-03-06 is a Friday, 2026-03-07 a Saturday
	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-06",
		ToDate:          "2026-03-07",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(2, resp.CreatedEventCount)
	s.Equal([]string{b.FullName}, resp.Created[0].Soldiers)
	// Saturday is unconstrained and Bob already carries the Friday load
	s.Equal([]string{a.FullName}, resp.Created[1].Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleSkipsEventWithNoEligibleSoldiers() {
	a := s.addSoldier("Alice")
	s.store.exemptions = append(s.store.exemptions, models.SoldierExemption{
		SoldierID:     a.ID,
		ExemptionCode: models.ExemptionCleaning,
	})
	s.addDailyDuty("Latrines", 1, 1)
	s.store.dutyTypes[0].Category = "cleaning"

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(0, resp.CreatedEventCount)
	s.Empty(s.store.events)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleExcludesOptedOut() {
	s.addSoldier("Alice")
	s.store.soldiers[0].ExcludeFromAutoSchedule = true
	b := s.addSoldier("Bob")
	s.addDailyDuty("Kitchen Morning", 2, 1)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal([]string{b.FullName}, resp.Created[0].Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleIncludesOptedOutWhenAsked() {
	a := s.addSoldier("Alice")
	s.store.soldiers[0].ExcludeFromAutoSchedule = true
	b := s.addSoldier("Bob")
	s.addDailyDuty("Kitchen Morning", 2, 1)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: false,
	}, "tester")

	s.Require().NoError(err)
	s.ElementsMatch([]string{a.FullName, b.FullName}, resp.Created[0].Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleFiltersDutyTypes() {
	s.addSoldier("Alice")
	kitchen := s.addDailyDuty("Kitchen Morning", 1, 1)
	s.addDailyDuty("Latrines", 1, 1)

	resp, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		DutyTypeIDs:     []uuid.UUID{kitchen.ID},
		ExcludeOptedOut: true,
	}, "tester")

	s.Require().NoError(err)
	s.Equal(1, resp.CreatedEventCount)
	s.Equal("Kitchen Morning", resp.Created[0].DutyType)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleRecordsCreator() {
	s.addSoldier("Alice")
	s.addDailyDuty("Kitchen Morning", 1, 1)

	_, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "Sgt. Example")

	s.Require().NoError(err)
	s.Require().Len(s.store.events, 1)
	s.Equal("Sgt. Example", s.store.events[0].CreatedBy)
	s.Equal(models.EventStatusPlanned, s.store.events[0].Status)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleDateValidation() {
	s.addSoldier("Alice")
	s.addDailyDuty("Kitchen Morning", 1, 1)

	testCases := []struct {
		name     string
		request  *service.AutoScheduleRequest
		expected error
	}{
		{
			name:    "Reversed range",
			request: &service.AutoScheduleRequest{FromDate: "2026-03-05", ToDate: "2026-03-02"},
		},
		{
			name:    "Missing to date",
			request: &service.AutoScheduleRequest{FromDate: "2026-03-02"},
		},
		{
			name:    "Malformed from date",
			request: &service.AutoScheduleRequest{FromDate: "02/03/2026", ToDate: "2026-03-05"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.AutoSchedule(tc.request, "tester")
			s.Error(err)
			s.Nil(resp)
		})
	}

	_, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate: "2026-03-05",
		ToDate:   "2026-03-02",
	}, "tester")
	s.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (s *SchedulerServiceTestSuite) TestAutoScheduleNoActiveSoldiers() {
	s.addDailyDuty("Kitchen Morning", 1, 1)

	_, err := s.service.AutoSchedule(&service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-02",
		ExcludeOptedOut: true,
	}, "tester")

	s.ErrorIs(err, apperrors.ErrNoActiveSoldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoAssignFillsOpenHourlySlots() {
	a := s.addSoldier("Alice")
	s.addSoldier("Bob")
	s.addSoldier("Carol")
	dutyType := s.addHourlyDuty("Day Guard", 8, 14, 2)

	start := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Hour)
	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		StartAt:    start,
		EndAt:      &end,
		Status:     models.EventStatusPlanned,
	}
	s.Require().NoError(s.store.CreateEvent(event))

	covered := start.Add(2 * time.Hour)
	coveredEnd := start.Add(4 * time.Hour)
	s.Require().NoError(s.store.CreateAssignment(&models.DutyAssignment{
		DutyEventID: event.ID,
		SoldierID:   a.ID,
		SlotStartAt: &covered,
		SlotEndAt:   &coveredEnd,
	}))

	resp, err := s.service.AutoAssign(event.ID, nil)

	s.Require().NoError(err)
	s.Equal(2, resp.Assigned)
	s.NotContains(resp.Soldiers, a.FullName)

	var starts []int
	for _, assignment := range s.store.assignments[1:] {
		s.Require().NotNil(assignment.SlotStartAt)
		starts = append(starts, assignment.SlotStartAt.Hour())
	}
	s.Equal([]int{8, 12}, starts)
}

func (s *SchedulerServiceTestSuite) TestAutoAssignHourlyEventWithoutEndTime() {
	s.addSoldier("Alice")
	s.addSoldier("Bob")
	dutyType := s.addHourlyDuty("Day Guard", 8, 14, 2)
	s.store.dutyTypes[0].DefaultRequiredPeople = 2

	// Manually created events may carry no end time, so there are no
	// rotation windows to fill.
	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		StartAt:    time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		Status:     models.EventStatusPlanned,
	}
	s.Require().NoError(s.store.CreateEvent(event))

	resp, err := s.service.AutoAssign(event.ID, nil)

	s.Require().NoError(err)
	s.Equal(2, resp.Assigned)
	s.Require().Len(s.store.assignments, 2)
	for _, assignment := range s.store.assignments {
		s.Nil(assignment.SlotStartAt)
		s.Nil(assignment.SlotEndAt)
	}
}

func (s *SchedulerServiceTestSuite) TestAutoAssignTopsUpDailyEvent() {
	a := s.addSoldier("Alice")
	s.addSoldier("Bob")
	s.addSoldier("Carol")
	dutyType := s.addDailyDuty("Kitchen Morning", 3, 2)

	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		StartAt:    time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		Status:     models.EventStatusPlanned,
	}
	s.Require().NoError(s.store.CreateEvent(event))
	s.Require().NoError(s.store.CreateAssignment(&models.DutyAssignment{
		DutyEventID: event.ID,
		SoldierID:   a.ID,
	}))

	resp, err := s.service.AutoAssign(event.ID, nil)

	s.Require().NoError(err)
	s.Equal(2, resp.Assigned)
	s.NotContains(resp.Soldiers, a.FullName)
	s.Len(s.store.assignments, 3)
}

func (s *SchedulerServiceTestSuite) TestAutoAssignFullyStaffedEvent() {
	a := s.addSoldier("Alice")
	dutyType := s.addDailyDuty("Kitchen Morning", 1, 2)

	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		StartAt:    time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		Status:     models.EventStatusPlanned,
	}
	s.Require().NoError(s.store.CreateEvent(event))
	s.Require().NoError(s.store.CreateAssignment(&models.DutyAssignment{
		DutyEventID: event.ID,
		SoldierID:   a.ID,
	}))

	resp, err := s.service.AutoAssign(event.ID, nil)

	s.Require().NoError(err)
	s.Equal(0, resp.Assigned)
	s.Equal("no open slots to fill", resp.Message)
	s.Len(s.store.assignments, 1)
}

func (s *SchedulerServiceTestSuite) TestAutoAssignOptedOutDefaultsToExcluded() {
	s.addSoldier("Alice")
	s.store.soldiers[0].ExcludeFromAutoSchedule = true
	b := s.addSoldier("Bob")
	dutyType := s.addDailyDuty("Kitchen Morning", 2, 1)

	event := &models.DutyEvent{
		DutyTypeID: dutyType.ID,
		StartAt:    time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		Status:     models.EventStatusPlanned,
	}
	s.Require().NoError(s.store.CreateEvent(event))

	resp, err := s.service.AutoAssign(event.ID, &service.AutoAssignRequest{})

	s.Require().NoError(err)
	s.Equal([]string{b.FullName}, resp.Soldiers)

	include := false
	resp, err = s.service.AutoAssign(event.ID, &service.AutoAssignRequest{ExcludeOptedOut: &include})
	s.Require().NoError(err)
	s.Equal(1, resp.Assigned)
	s.Equal([]string{"Alice"}, resp.Soldiers)
}

func (s *SchedulerServiceTestSuite) TestAutoAssignEventNotFound() {
	s.addSoldier("Alice")

	_, err := s.service.AutoAssign(uuid.New(), nil)

	s.ErrorIs(err, apperrors.ErrDutyEventNotFound)
}

func TestSchedulerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerServiceTestSuite))
}
