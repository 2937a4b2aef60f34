//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"duty-roster-backend/internal/database/models"
	"duty-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AttendanceRepositoryTestSuite tests the AttendanceRepository
type AttendanceRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AttendanceRepository
	departments   *testutils.DepartmentFactory
	soldiers      *testutils.SoldierFactory
	attendance    *testutils.AttendanceFactory
}

// SetupSuite runs before all tests in the suite
func (suite *AttendanceRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAttendanceRepository(suite.baseTestSuite.DB)
	suite.departments = testutils.NewDepartmentFactory()
	suite.soldiers = testutils.NewSoldierFactory()
	suite.attendance = testutils.NewAttendanceFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *AttendanceRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AttendanceRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AttendanceRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AttendanceRepositoryTestSuite) createSoldier() *models.Soldier {
	dept := suite.departments.Create()
	suite.Require().NoError(NewDepartmentRepository(suite.baseTestSuite.DB).Create(dept))
	soldier := suite.soldiers.Create(dept.ID)
	suite.Require().NoError(NewSoldierRepository(suite.baseTestSuite.DB).Create(soldier))
	return soldier
}

// TestUpsertInsert tests creating a fresh record
func (suite *AttendanceRepositoryTestSuite) TestUpsertInsert() {
	soldier := suite.createSoldier()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	record := suite.attendance.Create(soldier.ID, date)
	suite.NoError(suite.repo.Upsert(record))

	found, err := suite.repo.GetBySoldierAndDate(soldier.ID, date)
	suite.NoError(err)
	suite.Equal(models.AttendanceStatusPresent, found.Status)
}

// TestUpsertReplacesSameDay tests that a second report overwrites the first
func (suite *AttendanceRepositoryTestSuite) TestUpsertReplacesSameDay() {
	soldier := suite.createSoldier()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	first := suite.attendance.Create(soldier.ID, date)
	suite.Require().NoError(suite.repo.Upsert(first))

	second := suite.attendance.Create(soldier.ID, date)
	second.Status = models.AttendanceStatusLeave
	second.Notes = "family event"
	second.ReportedBy = "Sgt. Example"
	suite.NoError(suite.repo.Upsert(second))

	found, err := suite.repo.GetBySoldierAndDate(soldier.ID, date)
	suite.NoError(err)
	suite.Equal(first.ID, found.ID)
	suite.Equal(models.AttendanceStatusLeave, found.Status)
	suite.Equal("family event", found.Notes)
	suite.Equal("Sgt. Example", found.ReportedBy)
}

// TestGetByRange tests date filtering and ordering
func (suite *AttendanceRepositoryTestSuite) TestGetByRange() {
	soldier := suite.createSoldier()

	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	for _, d := range []int{1, 3, 5, 9} {
		suite.Require().NoError(suite.repo.Upsert(suite.attendance.Create(soldier.ID, day(d))))
	}

	found, err := suite.repo.GetByRange(day(2), day(6))
	suite.NoError(err)
	suite.Require().Len(found, 2)
	suite.True(found[0].Date.Before(found[1].Date))
}

// TestGetBySoldierAndDateNotFound tests a missing record lookup
func (suite *AttendanceRepositoryTestSuite) TestGetBySoldierAndDateNotFound() {
	soldier := suite.createSoldier()

	_, err := suite.repo.GetBySoldierAndDate(soldier.ID, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAttendanceRepositoryTestSuite runs the test suite
func TestAttendanceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceRepositoryTestSuite))
}
