package handlers_test

import (
	"net/http"
	"testing"

	"duty-roster-backend/internal/api/handlers"
	apperrors "duty-roster-backend/internal/errors"
	"duty-roster-backend/internal/mocks"
	"duty-roster-backend/internal/service"
	"duty-roster-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulerHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	schedulerService *mocks.MockSchedulerServiceInterface
	httpSuite        *testutils.HTTPTestSuite
}

func (s *SchedulerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.schedulerService = mocks.NewMockSchedulerServiceInterface(s.ctrl)
	handler := handlers.NewSchedulerHandler(s.schedulerService)

	s.httpSuite = testutils.SetupHTTPTest()
	// the auth middleware normally sets "user"
	s.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user", "Sgt. Example")
		c.Next()
	})
	s.httpSuite.Router.POST("/auto-schedule", handler.AutoSchedule)
	s.httpSuite.Router.POST("/duty-events/:id/auto-assign", handler.AutoAssign)
}

func (s *SchedulerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerHandlerTestSuite) TestAutoSchedule() {
	request := service.AutoScheduleRequest{
		FromDate:        "2026-03-02",
		ToDate:          "2026-03-08",
		ExcludeOptedOut: true,
	}
	expected := &service.AutoScheduleResponse{
		Message:           "created 7 duty events",
		CreatedEventCount: 7,
	}
	s.schedulerService.EXPECT().AutoSchedule(gomock.Any(), "Sgt. Example").Return(expected, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/auto-schedule", request)

	var response service.AutoScheduleResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(7, response.CreatedEventCount)
}

func (s *SchedulerHandlerTestSuite) TestAutoScheduleNoActiveSoldiers() {
	s.schedulerService.EXPECT().AutoSchedule(gomock.Any(), "Sgt. Example").Return(nil, apperrors.ErrNoActiveSoldiers)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/auto-schedule", service.AutoScheduleRequest{
		FromDate: "2026-03-02",
		ToDate:   "2026-03-08",
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "no active soldiers")
}

func (s *SchedulerHandlerTestSuite) TestAutoScheduleInvalidRange() {
	s.schedulerService.EXPECT().AutoSchedule(gomock.Any(), "Sgt. Example").Return(nil, apperrors.ErrInvalidDateRange)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/auto-schedule", service.AutoScheduleRequest{
		FromDate: "2026-03-08",
		ToDate:   "2026-03-02",
	})

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "invalid date range")
}

func (s *SchedulerHandlerTestSuite) TestAutoScheduleMalformedBody() {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/auto-schedule", "not an object")

	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *SchedulerHandlerTestSuite) TestAutoAssign() {
	eventID := uuid.New()
	expected := &service.AutoAssignResponse{
		Message:  "assigned 2 soldiers: Alice, Bob",
		Assigned: 2,
		Soldiers: []string{"Alice", "Bob"},
	}
	s.schedulerService.EXPECT().AutoAssign(eventID, gomock.Any()).Return(expected, nil)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events/"+eventID.String()+"/auto-assign", nil)

	var response service.AutoAssignResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &response)
	s.Equal(2, response.Assigned)
}

func (s *SchedulerHandlerTestSuite) TestAutoAssignEventNotFound() {
	eventID := uuid.New()
	s.schedulerService.EXPECT().AutoAssign(eventID, gomock.Any()).Return(nil, apperrors.ErrDutyEventNotFound)

	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events/"+eventID.String()+"/auto-assign", nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "duty event not found")
}

func (s *SchedulerHandlerTestSuite) TestAutoAssignInvalidID() {
	recorder := s.httpSuite.MakeRequest(http.MethodPost, "/duty-events/not-a-uuid/auto-assign", nil)

	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "Invalid event ID")
}

func TestSchedulerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerHandlerTestSuite))
}
