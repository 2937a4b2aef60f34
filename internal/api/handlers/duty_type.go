package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"duty-roster-backend/internal/service"

	apperrors "duty-roster-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DutyTypeHandler handles HTTP requests for duty types
type DutyTypeHandler struct {
	dutyTypeService service.DutyTypeServiceInterface
}

// NewDutyTypeHandler creates a new duty type handler
func NewDutyTypeHandler(dutyTypeService service.DutyTypeServiceInterface) *DutyTypeHandler {
	return &DutyTypeHandler{dutyTypeService: dutyTypeService}
}

// CreateDutyType creates a new duty type
// @Summary Create a new duty type
// @Description Create a duty type with its fairness weight and schedule shape.
// @Description
// @Description Optional Fields with Defaults:
// @Description - default_frequency: Defaults to 'daily' (valid values: daily, weekly, monthly)
// @Description - schedule_kind: Defaults to 'daily' (valid values: daily, hourly)
// @Description - default_start_hour: Defaults to 8, default_end_hour: Defaults to 20
// @Description - rotation_interval_hours: Defaults to 2 (hourly duty types only)
// @Tags duty-types
// @Accept json
// @Produce json
// @Param dutyType body service.CreateDutyTypeRequest true "Duty type data"
// @Success 201 {object} service.DutyTypeResponse "Successfully created duty type"
// @Failure 400 {object} map[string]interface{} "Invalid request body or rotation window"
// @Security BearerAuth
// @Router /duty-types [post]
func (h *DutyTypeHandler) CreateDutyType(c *gin.Context) {
	var req service.CreateDutyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dutyType, err := h.dutyTypeService.Create(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dutyType)
}

// GetDutyType retrieves a duty type by ID
// @Summary Get duty type by ID
// @Description Get a specific duty type by its UUID
// @Tags duty-types
// @Accept json
// @Produce json
// @Param id path string true "Duty type ID (UUID)"
// @Success 200 {object} service.DutyTypeResponse "Successfully retrieved duty type"
// @Failure 400 {object} map[string]interface{} "Invalid duty type ID"
// @Failure 404 {object} map[string]interface{} "Duty type not found"
// @Security BearerAuth
// @Router /duty-types/{id} [get]
func (h *DutyTypeHandler) GetDutyType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duty type ID"})
		return
	}

	dutyType, err := h.dutyTypeService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dutyType)
}

// ListDutyTypes lists duty types with pagination
// @Summary List duty types
// @Description Get all duty types with pagination
// @Tags duty-types
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.DutyTypeListResponse "Successfully retrieved duty types"
// @Security BearerAuth
// @Router /duty-types [get]
func (h *DutyTypeHandler) ListDutyTypes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.dutyTypeService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateDutyType updates a duty type
// @Summary Update a duty type
// @Description Update duty type fields; omitted fields are left unchanged
// @Tags duty-types
// @Accept json
// @Produce json
// @Param id path string true "Duty type ID (UUID)"
// @Param dutyType body service.UpdateDutyTypeRequest true "Fields to update"
// @Success 200 {object} service.DutyTypeResponse "Successfully updated duty type"
// @Failure 400 {object} map[string]interface{} "Invalid request body or rotation window"
// @Failure 404 {object} map[string]interface{} "Duty type not found"
// @Security BearerAuth
// @Router /duty-types/{id} [put]
func (h *DutyTypeHandler) UpdateDutyType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duty type ID"})
		return
	}

	var req service.UpdateDutyTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dutyType, err := h.dutyTypeService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidRotation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dutyType)
}

// DeleteDutyType deletes a duty type
// @Summary Delete a duty type
// @Description Delete a duty type and its events
// @Tags duty-types
// @Accept json
// @Produce json
// @Param id path string true "Duty type ID (UUID)"
// @Success 200 {object} map[string]interface{} "Duty type deleted"
// @Failure 400 {object} map[string]interface{} "Invalid duty type ID"
// @Failure 404 {object} map[string]interface{} "Duty type not found"
// @Security BearerAuth
// @Router /duty-types/{id} [delete]
func (h *DutyTypeHandler) DeleteDutyType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid duty type ID"})
		return
	}

	if err := h.dutyTypeService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Duty type deleted successfully"})
}
