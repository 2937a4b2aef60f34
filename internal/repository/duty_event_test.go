//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// DutyEventRepositoryTestSuite tests the DutyEventRepository
type DutyEventRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *DutyEventRepository
	departments   *testutils.DepartmentFactory
	soldiers      *testutils.SoldierFactory
	dutyTypes     *testutils.DutyTypeFactory
	events        *testutils.DutyEventFactory
	assignments   *testutils.AssignmentFactory
}

// SetupSuite runs before all tests in the suite
func (suite *DutyEventRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewDutyEventRepository(suite.baseTestSuite.DB)
	suite.departments = testutils.NewDepartmentFactory()
	suite.soldiers = testutils.NewSoldierFactory()
	suite.dutyTypes = testutils.NewDutyTypeFactory()
	suite.events = testutils.NewDutyEventFactory()
	suite.assignments = testutils.NewAssignmentFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *DutyEventRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *DutyEventRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *DutyEventRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *DutyEventRepositoryTestSuite) createDutyType() *models.DutyType {
	dutyType := suite.dutyTypes.Create()
	suite.Require().NoError(NewDutyTypeRepository(suite.baseTestSuite.DB).Create(dutyType))
	return dutyType
}

func (suite *DutyEventRepositoryTestSuite) createEvent(dutyTypeID uuid.UUID, startAt time.Time) *models.DutyEvent {
	event := suite.events.Create(dutyTypeID, startAt)
	suite.Require().NoError(suite.repo.Create(event))
	return event
}

// TestCreate tests creating a new duty event
func (suite *DutyEventRepositoryTestSuite) TestCreate() {
	dutyType := suite.createDutyType()

	startAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	event := suite.createEvent(dutyType.ID, startAt)

	found, err := suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal(models.EventStatusPlanned, found.Status)
	suite.True(found.StartAt.Equal(startAt))
}

// TestGetByRange tests filtering events by start window
func (suite *DutyEventRepositoryTestSuite) TestGetByRange() {
	dutyType := suite.createDutyType()

	day := func(d int) time.Time { return time.Date(2026, 3, d, 8, 0, 0, 0, time.UTC) }
	before := suite.createEvent(dutyType.ID, day(1))
	inside1 := suite.createEvent(dutyType.ID, day(3))
	inside2 := suite.createEvent(dutyType.ID, day(5))
	after := suite.createEvent(dutyType.ID, day(9))

	from := day(2)
	to := day(6)
	events, err := suite.repo.GetByRange(&from, &to)
	suite.NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(inside1.ID, events[0].ID)
	suite.Equal(inside2.ID, events[1].ID)

	// Open-ended lower bound
	events, err = suite.repo.GetByRange(nil, &to)
	suite.NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal(before.ID, events[0].ID)

	// Open-ended upper bound
	events, err = suite.repo.GetByRange(&from, nil)
	suite.NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal(after.ID, events[2].ID)
}

// TestGetByRangePreloadsDutyType tests the range query eager loading
func (suite *DutyEventRepositoryTestSuite) TestGetByRangePreloadsDutyType() {
	dutyType := suite.createDutyType()
	suite.createEvent(dutyType.ID, time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))

	events, err := suite.repo.GetByRange(nil, nil)
	suite.NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal(dutyType.Name, events[0].DutyType.Name)
}

// TestGetWithDetails tests preloading assignments and their soldiers
func (suite *DutyEventRepositoryTestSuite) TestGetWithDetails() {
	dutyType := suite.createDutyType()
	event := suite.createEvent(dutyType.ID, time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))

	dept := suite.departments.Create()
	suite.Require().NoError(NewDepartmentRepository(suite.baseTestSuite.DB).Create(dept))
	soldier := suite.soldiers.Create(dept.ID)
	suite.Require().NoError(NewSoldierRepository(suite.baseTestSuite.DB).Create(soldier))

	assignment := suite.assignments.Create(event.ID, soldier.ID)
	suite.Require().NoError(NewDutyAssignmentRepository(suite.baseTestSuite.DB).Create(assignment))

	found, err := suite.repo.GetWithDetails(event.ID)
	suite.NoError(err)
	suite.Equal(dutyType.Name, found.DutyType.Name)
	suite.Require().Len(found.Assignments, 1)
	suite.Equal(soldier.FullName, found.Assignments[0].Soldier.FullName)
}

// TestUpdateStatus tests the status transition update
func (suite *DutyEventRepositoryTestSuite) TestUpdateStatus() {
	dutyType := suite.createDutyType()
	event := suite.createEvent(dutyType.ID, time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))

	suite.NoError(suite.repo.UpdateStatus(event.ID, models.EventStatusDone))

	found, err := suite.repo.GetByID(event.ID)
	suite.NoError(err)
	suite.Equal(models.EventStatusDone, found.Status)
}

// TestDeleteCascadesAssignments tests that deleting an event removes its assignments
func (suite *DutyEventRepositoryTestSuite) TestDeleteCascadesAssignments() {
	dutyType := suite.createDutyType()
	event := suite.createEvent(dutyType.ID, time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))

	dept := suite.departments.Create()
	suite.Require().NoError(NewDepartmentRepository(suite.baseTestSuite.DB).Create(dept))
	soldier := suite.soldiers.Create(dept.ID)
	suite.Require().NoError(NewSoldierRepository(suite.baseTestSuite.DB).Create(soldier))

	assignmentRepo := NewDutyAssignmentRepository(suite.baseTestSuite.DB)
	assignment := suite.assignments.Create(event.ID, soldier.ID)
	suite.Require().NoError(assignmentRepo.Create(assignment))

	suite.NoError(suite.repo.Delete(event.ID))

	_, err := suite.repo.GetByID(event.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = assignmentRepo.GetByID(assignment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDutyEventRepositoryTestSuite runs the test suite
func TestDutyEventRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(DutyEventRepositoryTestSuite))
}
