package service_test

import (
	"testing"

	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/mocks"
	"duty-roster-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AttendanceServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	soldierRepo *mocks.MockSoldierRepositoryInterface
	service     *service.AttendanceService
}

func (s *AttendanceServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.soldierRepo = mocks.NewMockSoldierRepositoryInterface(s.ctrl)
	s.service = service.NewAttendanceService(nil, s.soldierRepo, validator.New())
}

func (s *AttendanceServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AttendanceServiceTestSuite) TestReportValidation() {
	testCases := []struct {
		name    string
		request *service.ReportAttendanceRequest
	}{
		{
			name: "Missing soldier",
			request: &service.ReportAttendanceRequest{
				Date:   "2026-03-02",
				Status: models.AttendanceStatusPresent,
			},
		},
		{
			name: "Malformed date",
			request: &service.ReportAttendanceRequest{
				SoldierID: uuid.New(),
				Date:      "03/02/2026",
				Status:    models.AttendanceStatusPresent,
			},
		},
		{
			name: "Missing status",
			request: &service.ReportAttendanceRequest{
				SoldierID: uuid.New(),
				Date:      "2026-03-02",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Report(tc.request, "tester")
			s.Error(err)
			s.Contains(err.Error(), "validation failed")
			s.Nil(resp)
		})
	}
}

func (s *AttendanceServiceTestSuite) TestReportRejectsUnknownStatus() {
	_, err := s.service.Report(&service.ReportAttendanceRequest{
		SoldierID: uuid.New(),
		Date:      "2026-03-02",
		Status:    "awol",
	}, "tester")

	s.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (s *AttendanceServiceTestSuite) TestReportUnknownSoldier() {
	soldierID := uuid.New()
	s.soldierRepo.EXPECT().GetByID(soldierID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Report(&service.ReportAttendanceRequest{
		SoldierID: soldierID,
		Date:      "2026-03-02",
		Status:    models.AttendanceStatusLeave,
	}, "tester")

	s.ErrorIs(err, apperrors.ErrSoldierNotFound)
}

func (s *AttendanceServiceTestSuite) TestWeeklyGridRejectsBadStart() {
	_, err := s.service.WeeklyGrid("next monday")
	s.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}
