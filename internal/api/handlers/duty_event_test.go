package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"duty-roster-backend/internal/api/handlers"
	"duty-roster-backend/internal/database/models"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/mocks"
	"duty-roster-backend/internal/service"
	"duty-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DutyEventHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	dutyEventService *mocks.MockDutyEventServiceInterface
	httpSuite        *testutils.HTTPTestSuite
}

func (s *DutyEventHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.dutyEventService = mocks.NewMockDutyEventServiceInterface(s.ctrl)
	handler := handlers.NewDutyEventHandler(s.dutyEventService)

	s.httpSuite = testutils.SetupHTTPTest()
	s.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user", "Sgt. Example")
		c.Next()
	})
	s.httpSuite.Router.POST("/duty-events", handler.CreateDutyEvent)
	s.httpSuite.Router.GET("/duty-events", handler.ListDutyEvents)
	s.httpSuite.Router.GET("/duty-events/:id", handler.GetDutyEvent)
	s.httpSuite.Router.PATCH("/duty-events/:id/status", handler.UpdateDutyEventStatus)
	s.httpSuite.Router.POST("/duty-events/:id/assignments", handler.AssignSoldier)
	s.httpSuite.Router.DELETE("/duty-events/:id/assignments/:assignmentId", handler.RemoveAssignment)
	s.httpSuite.Router.DELETE("/duty-events/:id", handler.DeleteDutyEvent)
}

func (s *DutyEventHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DutyEventHandlerTestSuite) TestCreateDutyEvent() {
	dutyTypeID := uuid.New()
	expected := &service.DutyEventResponse{
		ID:         uuid.New(),
		DutyTypeID: dutyTypeID,
		Status:     models.EventStatusPlanned,
		CreatedBy:  "Sgt. Example",
	}
	s.dutyEventService.EXPECT().Create(gomock.Any(), "Sgt. Example").Return(expected, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events", service.CreateDutyEventRequest{
		DutyTypeID: dutyTypeID,
		StartAt:    time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
	})

	var response service.DutyEventResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &response)
	s.Equal(expected.ID, response.ID)
	s.Equal("Sgt. Example", response.CreatedBy)
}

func (s *DutyEventHandlerTestSuite) TestCreateDutyEventUnknownType() {
	s.dutyEventService.EXPECT().Create(gomock.Any(), "Sgt. Example").Return(nil, apperrors.ErrDutyTypeNotFound)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events", service.CreateDutyEventRequest{
		DutyTypeID: uuid.New(),
		StartAt:    time.Now(),
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "duty type not found")
}

func (s *DutyEventHandlerTestSuite) TestListDutyEventsWithRange() {
	s.dutyEventService.EXPECT().GetByRange(gomock.Any(), gomock.Any()).Return([]service.DutyEventResponse{
		{ID: uuid.New()},
		{ID: uuid.New()},
	}, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/duty-events?from=2026-03-01&to=2026-03-07", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(float64(2), response["total"])
}

func (s *DutyEventHandlerTestSuite) TestListDutyEventsBadFromDate() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/duty-events?from=yesterday", nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Invalid 'from' date")
}

func (s *DutyEventHandlerTestSuite) TestUpdateStatusDone() {
	eventID := uuid.New()
	s.dutyEventService.EXPECT().UpdateStatus(eventID, gomock.Any()).Return(nil)

	recorder := s.httpSuite.MakeRequest(http.MethodPatch, "/duty-events/"+eventID.String()+"/status", service.UpdateStatusRequest{
		Status: models.EventStatusDone,
	})

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *DutyEventHandlerTestSuite) TestUpdateStatusAlreadyDone() {
	eventID := uuid.New()
	s.dutyEventService.EXPECT().UpdateStatus(eventID, gomock.Any()).Return(apperrors.ErrEventAlreadyDone)

	recorder := s.httpSuite.MakeRequest(http.MethodPatch, "/duty-events/"+eventID.String()+"/status", service.UpdateStatusRequest{
		Status: models.EventStatusDone,
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "already marked done")
}

func (s *DutyEventHandlerTestSuite) TestAssignSoldierConflict() {
	eventID := uuid.New()
	s.dutyEventService.EXPECT().AssignSoldier(eventID, gomock.Any()).Return(nil, apperrors.ErrSoldierAssigned)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events/"+eventID.String()+"/assignments", service.AssignSoldierRequest{
		SoldierID: uuid.New(),
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusConflict, "already exists")
}

func (s *DutyEventHandlerTestSuite) TestRemoveAssignment() {
	eventID := uuid.New()
	assignmentID := uuid.New()
	s.dutyEventService.EXPECT().RemoveAssignment(eventID, assignmentID).Return(nil)

	recorder := s.httpSuite.MakeRequest(http.MethodDelete, "/duty-events/"+eventID.String()+"/assignments/"+assignmentID.String(), nil)

	s.Equal(http.StatusOK, recorder.Code)
}

func (s *DutyEventHandlerTestSuite) TestDeleteDutyEventNotFound() {
	eventID := uuid.New()
	s.dutyEventService.EXPECT().Delete(eventID).Return(apperrors.ErrDutyEventNotFound)

	recorder := s.httpSuite.MakeRequest(http.MethodDelete, "/duty-events/"+eventID.String(), nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "duty event not found")
}

func (s *DutyEventHandlerTestSuite) TestGetDutyEventInvalidID() {
	recorder := s.httpSuite.MakeRequest(http.MethodGet, "/duty-events/abc", nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Invalid event ID")
}

func TestDutyEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DutyEventHandlerTestSuite))
}
