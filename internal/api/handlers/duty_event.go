package handlers

import (
	"errors"
	"net/http"
	"time"

	"duty-roster-backend/internal/service"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DutyEventHandler handles HTTP requests for duty events
type DutyEventHandler struct {
	dutyEventService service.DutyEventServiceInterface
}

// NewDutyEventHandler creates a new duty event handler
func NewDutyEventHandler(dutyEventService service.DutyEventServiceInterface) *DutyEventHandler {
	return &DutyEventHandler{dutyEventService: dutyEventService}
}

// CreateDutyEvent creates a duty event manually
// @Summary Create a duty event
// @Description Create a single duty event without running the planner
// @Tags duty-events
// @Accept json
// @Produce json
// @Param event body service.CreateDutyEventRequest true "Event data"
// @Success 201 {object} service.DutyEventResponse "Successfully created event"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Duty type not found"
// @Security BearerAuth
// @Router /duty-events [post]
func (h *DutyEventHandler) CreateDutyEvent(c *gin.Context) {
	var req service.CreateDutyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.dutyEventService.Create(&req, c.GetString("user"))
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetDutyEvent retrieves a duty event by ID
// @Summary Get duty event by ID
// @Description Get a duty event with its duty type and assignments
// @Tags duty-events
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Success 200 {object} service.DutyEventResponse "Successfully retrieved event"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /duty-events/{id} [get]
func (h *DutyEventHandler) GetDutyEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	event, err := h.dutyEventService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, event)
}

// ListDutyEvents lists duty events, optionally filtered by date range
// @Summary List duty events
// @Description List duty events ordered by start time, optionally filtered by a from/to date range
// @Tags duty-events
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved events"
// @Failure 400 {object} map[string]interface{} "Invalid date parameter"
// @Security BearerAuth
// @Router /duty-events [get]
func (h *DutyEventHandler) ListDutyEvents(c *gin.Context) {
	var from, to *time.Time
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = &parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = &parsed
	}

	events, err := h.dutyEventService.GetByRange(from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"duty_events": events,
		"total":       len(events),
	})
}

// UpdateDutyEventStatus transitions the status of a duty event
// @Summary Update duty event status
// @Description Transition an event to planned, done, swapped, canceled or missed. Marking an event done credits its weight to every assigned soldier's points ledger; doing it twice is rejected.
// @Tags duty-events
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Param request body service.UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{} "Status updated"
// @Failure 400 {object} map[string]interface{} "Invalid status or event already done"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /duty-events/{id}/status [patch]
func (h *DutyEventHandler) UpdateDutyEventStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.dutyEventService.UpdateStatus(id, &req); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEventAlreadyDone) || errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

// AssignSoldier assigns a soldier to a duty event manually
// @Summary Assign a soldier to an event
// @Description Add a manual assignment to an existing duty event
// @Tags duty-events
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Param request body service.AssignSoldierRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} map[string]interface{} "Soldier already assigned"
// @Failure 404 {object} map[string]interface{} "Event or soldier not found"
// @Security BearerAuth
// @Router /duty-events/{id}/assignments [post]
func (h *DutyEventHandler) AssignSoldier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var req service.AssignSoldierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.dutyEventService.AssignSoldier(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrSoldierAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// RemoveAssignment removes an assignment from a duty event
// @Summary Remove an assignment
// @Description Remove a soldier's assignment from a duty event
// @Tags duty-events
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Param assignmentId path string true "Assignment ID (UUID)"
// @Success 200 {object} map[string]interface{} "Assignment removed"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Event or assignment not found"
// @Security BearerAuth
// @Router /duty-events/{id}/assignments/{assignmentId} [delete]
func (h *DutyEventHandler) RemoveAssignment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	assignmentID, err := uuid.Parse(c.Param("assignmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignment ID"})
		return
	}

	if err := h.dutyEventService.RemoveAssignment(id, assignmentID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Assignment removed successfully"})
}

// DeleteDutyEvent deletes a duty event
// @Summary Delete a duty event
// @Description Delete a duty event and its assignments
// @Tags duty-events
// @Accept json
// @Produce json
// @Param id path string true "Duty event ID (UUID)"
// @Success 200 {object} map[string]interface{} "Event deleted"
// @Failure 400 {object} map[string]interface{} "Invalid event ID"
// @Failure 404 {object} map[string]interface{} "Event not found"
// @Security BearerAuth
// @Router /duty-events/{id} [delete]
func (h *DutyEventHandler) DeleteDutyEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	if err := h.dutyEventService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Duty event deleted successfully"})
}
