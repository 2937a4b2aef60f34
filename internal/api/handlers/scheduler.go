package handlers

import (
	"errors"
	"net/http"

	"duty-roster-backend/internal/service"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchedulerHandler handles HTTP requests for the assignment engine
type SchedulerHandler struct {
	schedulerService service.SchedulerServiceInterface
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(schedulerService service.SchedulerServiceInterface) *SchedulerHandler {
	return &SchedulerHandler{schedulerService: schedulerService}
}

// AutoSchedule bulk-plans duty events over a date range
// @Summary Bulk-plan duty events
// @Description Plan duty events for every day in the range, assigning the lowest-load eligible soldiers. Within the run, working loads update after every binding, so distribution stays fair across days and duty types.
// @Tags scheduler
// @Accept json
// @Produce json
// @Param request body service.AutoScheduleRequest true "Planning range and options"
// @Success 200 {object} service.AutoScheduleResponse "Planning summary"
// @Failure 400 {object} map[string]interface{} "Missing date range or no active soldiers"
// @Security BearerAuth
// @Router /auto-schedule [post]
func (h *SchedulerHandler) AutoSchedule(c *gin.Context) {
	var req service.AutoScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.schedulerService.AutoSchedule(&req, c.GetString("user"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveSoldiers) ||
			errors.Is(err, apperrors.ErrMissingDateRange) ||
			errors.Is(err, apperrors.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AutoAssign fills the open slots of one existing event
// @Summary Auto-assign soldiers to an event
// @Description Fill the remaining slots of an existing event with the lowest-load eligible soldiers not already assigned to it
// @Tags scheduler
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Param request body service.AutoAssignRequest false "Options"
// @Success 200 {object} service.AutoAssignResponse "Assignment summary"
// @Failure 400 {object} map[string]interface{} "No active soldiers"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /duty-events/{id}/auto-assign [post]
func (h *SchedulerHandler) AutoAssign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	// Body is optional; exclude_opted_out defaults to true.
	var req service.AutoAssignRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.schedulerService.AutoAssign(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNoActiveSoldiers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
