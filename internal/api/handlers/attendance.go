package handlers

import (
	"errors"
	"net/http"

	"duty-roster-backend/internal/service"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles HTTP requests for attendance reporting
type AttendanceHandler struct {
	attendanceService service.AttendanceServiceInterface
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService service.AttendanceServiceInterface) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ReportAttendance records a soldier's attendance for a day
// @Summary Report attendance
// @Description Record a soldier's presence status for a day. Reporting the same soldier and day again overwrites the earlier record.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body service.ReportAttendanceRequest true "Attendance data"
// @Success 200 {object} service.AttendanceResponse "Attendance recorded"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Security BearerAuth
// @Router /attendance [post]
func (h *AttendanceHandler) ReportAttendance(c *gin.Context) {
	var req service.ReportAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.attendanceService.Report(&req, c.GetString("user"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetWeeklyGrid returns a week of attendance records per soldier
// @Summary Get weekly attendance grid
// @Description Get attendance for the seven days starting from the given date, grouped by soldier
// @Tags attendance
// @Accept json
// @Produce json
// @Param start query string true "Week start date (YYYY-MM-DD)"
// @Success 200 {object} service.WeeklyGridResponse "Successfully retrieved grid"
// @Failure 400 {object} map[string]interface{} "Invalid start date"
// @Security BearerAuth
// @Router /attendance/weekly [get]
func (h *AttendanceHandler) GetWeeklyGrid(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'start' is required (YYYY-MM-DD)"})
		return
	}

	grid, err := h.attendanceService.WeeklyGrid(start)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grid)
}
