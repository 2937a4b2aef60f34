package service_test

import (
	"testing"
	"time"

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

type DutyEventServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	eventRepo      *mocks.MockDutyEventRepositoryInterface
	dutyTypeRepo   *mocks.MockDutyTypeRepositoryInterface
	assignmentRepo *mocks.MockDutyAssignmentRepositoryInterface
	soldierRepo    *mocks.MockSoldierRepositoryInterface
	ledgerRepo     *mocks.MockPointsLedgerRepositoryInterface
	service        *service.DutyEventService
}

func (s *DutyEventServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.eventRepo = mocks.NewMockDutyEventRepositoryInterface(s.ctrl)
	s.dutyTypeRepo = mocks.NewMockDutyTypeRepositoryInterface(s.ctrl)
	s.assignmentRepo = mocks.NewMockDutyAssignmentRepositoryInterface(s.ctrl)
	s.soldierRepo = mocks.NewMockSoldierRepositoryInterface(s.ctrl)
	s.ledgerRepo = mocks.NewMockPointsLedgerRepositoryInterface(s.ctrl)
	s.service = service.NewDutyEventService(
		s.eventRepo,
		s.dutyTypeRepo,
		s.assignmentRepo,
		s.soldierRepo,
		s.ledgerRepo,
		validator.New(),
	)
}

func (s *DutyEventServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DutyEventServiceTestSuite) TestCreateDutyEvent() {
	dutyTypeID := uuid.New()
	startAt := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	s.dutyTypeRepo.EXPECT().GetByID(dutyTypeID).Return(&models.DutyType{}, nil)
	s.eventRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(event *models.DutyEvent) error {
		event.ID = uuid.New()
		return nil
	})

	resp, err := s.service.Create(&service.CreateDutyEventRequest{
		DutyTypeID: dutyTypeID,
		StartAt:    startAt,
		Notes:      "extra hands for inspection",
	}, "Sgt. Example")

	s.Require().NoError(err)
	s.Equal(dutyTypeID, resp.DutyTypeID)
	s.Equal(models.EventStatusPlanned, resp.Status)
	s.Equal("Sgt. Example", resp.CreatedBy)
	s.Equal("extra hands for inspection", resp.Notes)
}

func (s *DutyEventServiceTestSuite) TestCreateDutyEventValidation() {
	testCases := []struct {
		name    string
		request *service.CreateDutyEventRequest
	}{
		{
			name:    "Missing duty type",
			request: &service.CreateDutyEventRequest{StartAt: time.Now()},
		},
		{
			name:    "Missing start time",
			request: &service.CreateDutyEventRequest{DutyTypeID: uuid.New()},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.Create(tc.request, "tester")
			s.Error(err)
			s.Contains(err.Error(), "validation failed")
			s.Nil(resp)
		})
	}
}

func (s *DutyEventServiceTestSuite) TestCreateDutyEventEndBeforeStart() {
	dutyTypeID := uuid.New()
	startAt := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	endAt := startAt.Add(-time.Hour)

	s.dutyTypeRepo.EXPECT().GetByID(dutyTypeID).Return(&models.DutyType{}, nil)

	_, err := s.service.Create(&service.CreateDutyEventRequest{
		DutyTypeID: dutyTypeID,
		StartAt:    startAt,
		EndAt:      &endAt,
	}, "tester")

	s.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func (s *DutyEventServiceTestSuite) TestCreateDutyEventUnknownType() {
	dutyTypeID := uuid.New()
	s.dutyTypeRepo.EXPECT().GetByID(dutyTypeID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.Create(&service.CreateDutyEventRequest{
		DutyTypeID: dutyTypeID,
		StartAt:    time.Now(),
	}, "tester")

	s.ErrorIs(err, apperrors.ErrDutyTypeNotFound)
}

func (s *DutyEventServiceTestSuite) TestMarkDonePostsOneLedgerEntryPerAssignment() {
	eventID := uuid.New()
	dutyTypeID := uuid.New()
	soldierA := uuid.New()
	soldierB := uuid.New()

	event := &models.DutyEvent{
		BaseModel:  models.BaseModel{ID: eventID},
		DutyTypeID: dutyTypeID,
		Status:     models.EventStatusPlanned,
	}
	dutyType := &models.DutyType{
		BaseModel:    models.BaseModel{ID: dutyTypeID},
		Name:         "Kitchen Morning",
		WeightPoints: 2.5,
	}
	assignments := []models.DutyAssignment{
		{BaseModel: models.BaseModel{ID: uuid.New()}, DutyEventID: eventID, SoldierID: soldierA},
		{BaseModel: models.BaseModel{ID: uuid.New()}, DutyEventID: eventID, SoldierID: soldierB},
	}

	s.eventRepo.EXPECT().GetByID(eventID).Return(event, nil)
	s.eventRepo.EXPECT().UpdateStatus(eventID, models.EventStatusDone).Return(nil)
	s.dutyTypeRepo.EXPECT().GetByID(dutyTypeID).Return(dutyType, nil)
	s.assignmentRepo.EXPECT().GetByEventID(eventID).Return(assignments, nil)
	s.assignmentRepo.EXPECT().MarkDone(assignments[0].ID, gomock.Any()).Return(nil)
	s.assignmentRepo.EXPECT().MarkDone(assignments[1].ID, gomock.Any()).Return(nil)

	var posted []*models.PointsLedgerEntry
	s.ledgerRepo.EXPECT().Create(gomock.Any()).Times(2).DoAndReturn(func(entry *models.PointsLedgerEntry) error {
		posted = append(posted, entry)
		return nil
	})

	err := s.service.UpdateStatus(eventID, &service.UpdateStatusRequest{Status: models.EventStatusDone})

	s.Require().NoError(err)
	s.Require().Len(posted, 2)
	s.Equal(soldierA, posted[0].SoldierID)
	s.Equal(soldierB, posted[1].SoldierID)
	for _, entry := range posted {
		s.Equal(2.5, entry.PointsDelta)
		s.Equal("duty completed: Kitchen Morning", entry.Reason)
		s.Require().NotNil(entry.DutyEventID)
		s.Equal(eventID, *entry.DutyEventID)
	}
}

func (s *DutyEventServiceTestSuite) TestMarkDoneTwiceRejected() {
	eventID := uuid.New()
	event := &models.DutyEvent{
		BaseModel: models.BaseModel{ID: eventID},
		Status:    models.EventStatusDone,
	}

	s.eventRepo.EXPECT().GetByID(eventID).Return(event, nil)

	err := s.service.UpdateStatus(eventID, &service.UpdateStatusRequest{Status: models.EventStatusDone})

	s.ErrorIs(err, apperrors.ErrEventAlreadyDone)
}

func (s *DutyEventServiceTestSuite) TestUpdateStatusRejectsUnknownValue() {
	err := s.service.UpdateStatus(uuid.New(), &service.UpdateStatusRequest{Status: "archived"})
	s.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (s *DutyEventServiceTestSuite) TestNonDoneTransitionSkipsLedger() {
	eventID := uuid.New()
	event := &models.DutyEvent{
		BaseModel: models.BaseModel{ID: eventID},
		Status:    models.EventStatusPlanned,
	}

	s.eventRepo.EXPECT().GetByID(eventID).Return(event, nil)
	s.eventRepo.EXPECT().UpdateStatus(eventID, models.EventStatusCanceled).Return(nil)

	err := s.service.UpdateStatus(eventID, &service.UpdateStatusRequest{Status: models.EventStatusCanceled})

	s.NoError(err)
}

func (s *DutyEventServiceTestSuite) TestAssignSoldier() {
	eventID := uuid.New()
	soldierID := uuid.New()

	s.eventRepo.EXPECT().GetByID(eventID).Return(&models.DutyEvent{}, nil)
	s.soldierRepo.EXPECT().GetByID(soldierID).Return(&models.Soldier{}, nil)
	s.assignmentRepo.EXPECT().GetByEventID(eventID).Return(nil, nil)
	s.assignmentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(assignment *models.DutyAssignment) error {
		assignment.ID = uuid.New()
		return nil
	})

	resp, err := s.service.AssignSoldier(eventID, &service.AssignSoldierRequest{
		SoldierID: soldierID,
		RoleLabel: "lead",
	})

	s.Require().NoError(err)
	s.Equal(soldierID, resp.SoldierID)
	s.Equal("lead", resp.RoleLabel)
}

func (s *DutyEventServiceTestSuite) TestAssignSoldierAlreadyAssigned() {
	eventID := uuid.New()
	soldierID := uuid.New()

	s.eventRepo.EXPECT().GetByID(eventID).Return(&models.DutyEvent{}, nil)
	s.soldierRepo.EXPECT().GetByID(soldierID).Return(&models.Soldier{}, nil)
	s.assignmentRepo.EXPECT().GetByEventID(eventID).Return([]models.DutyAssignment{
		{DutyEventID: eventID, SoldierID: soldierID},
	}, nil)

	_, err := s.service.AssignSoldier(eventID, &service.AssignSoldierRequest{SoldierID: soldierID})

	s.ErrorIs(err, apperrors.ErrSoldierAssigned)
}

func (s *DutyEventServiceTestSuite) TestAssignSoldierUnknownSoldier() {
	eventID := uuid.New()
	soldierID := uuid.New()

	s.eventRepo.EXPECT().GetByID(eventID).Return(&models.DutyEvent{}, nil)
	s.soldierRepo.EXPECT().GetByID(soldierID).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.AssignSoldier(eventID, &service.AssignSoldierRequest{SoldierID: soldierID})

	s.ErrorIs(err, apperrors.ErrSoldierNotFound)
}

func (s *DutyEventServiceTestSuite) TestRemoveAssignment() {
	eventID := uuid.New()
	assignmentID := uuid.New()

	s.assignmentRepo.EXPECT().GetByID(assignmentID).Return(&models.DutyAssignment{
		BaseModel:   models.BaseModel{ID: assignmentID},
		DutyEventID: eventID,
	}, nil)
	s.assignmentRepo.EXPECT().Delete(assignmentID).Return(nil)

	s.NoError(s.service.RemoveAssignment(eventID, assignmentID))
}

func (s *DutyEventServiceTestSuite) TestRemoveAssignmentFromOtherEvent() {
	assignmentID := uuid.New()

	s.assignmentRepo.EXPECT().GetByID(assignmentID).Return(&models.DutyAssignment{
		BaseModel:   models.BaseModel{ID: assignmentID},
		DutyEventID: uuid.New(),
	}, nil)

	err := s.service.RemoveAssignment(uuid.New(), assignmentID)

	s.ErrorIs(err, apperrors.ErrAssignmentNotFound)
}

func (s *DutyEventServiceTestSuite) TestDeleteDutyEventNotFound() {
	eventID := uuid.New()
	s.eventRepo.EXPECT().GetByID(eventID).Return(nil, gorm.ErrRecordNotFound)

	err := s.service.Delete(eventID)

	s.ErrorIs(err, apperrors.ErrDutyEventNotFound)
}

func TestDutyEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DutyEventServiceTestSuite))
}
