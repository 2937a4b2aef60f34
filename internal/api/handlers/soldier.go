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

// SoldierHandler handles HTTP requests for soldiers
type SoldierHandler struct {
	soldierService service.SoldierServiceInterface
}

// NewSoldierHandler creates a new soldier handler
func NewSoldierHandler(soldierService service.SoldierServiceInterface) *SoldierHandler {
	return &SoldierHandler{soldierService: soldierService}
}

// CreateSoldier creates a new soldier
// @Summary Create a new soldier
// @Description Create a new soldier in the roster.
// @Description
// @Description Optional Fields with Defaults:
// @Description - status: Defaults to 'active' (valid values: active, training, exempt, vacation)
// @Description - exclude_from_auto_schedule: Defaults to false
// @Tags soldiers
// @Accept json
// @Produce json
// @Param soldier body service.CreateSoldierRequest true "Soldier data"
// @Success 201 {object} service.SoldierResponse "Successfully created soldier"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Security BearerAuth
// @Router /soldiers [post]
func (h *SoldierHandler) CreateSoldier(c *gin.Context) {
	var req service.CreateSoldierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	soldier, err := h.soldierService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, soldier)
}

// GetSoldier retrieves a soldier by ID
// @Summary Get soldier by ID
// @Description Get a specific soldier with constraints and exemptions
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Success 200 {object} service.SoldierResponse "Successfully retrieved soldier"
// @Failure 400 {object} map[string]interface{} "Invalid soldier ID"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Security BearerAuth
// @Router /soldiers/{id} [get]
func (h *SoldierHandler) GetSoldier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	soldier, err := h.soldierService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, soldier)
}

// ListSoldiers lists soldiers with pagination
// @Summary List soldiers
// @Description Get all soldiers with pagination
// @Tags soldiers
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.SoldierListResponse "Successfully retrieved soldiers"
// @Security BearerAuth
// @Router /soldiers [get]
func (h *SoldierHandler) ListSoldiers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.soldierService.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateSoldier updates a soldier
// @Summary Update a soldier
// @Description Update soldier fields; omitted fields are left unchanged
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Param soldier body service.UpdateSoldierRequest true "Fields to update"
// @Success 200 {object} service.SoldierResponse "Successfully updated soldier"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Security BearerAuth
// @Router /soldiers/{id} [put]
func (h *SoldierHandler) UpdateSoldier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	var req service.UpdateSoldierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	soldier, err := h.soldierService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, soldier)
}

// DeleteSoldier deletes a soldier
// @Summary Delete a soldier
// @Description Delete a soldier and their constraints, exemptions and assignments
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Success 200 {object} map[string]interface{} "Soldier deleted"
// @Failure 400 {object} map[string]interface{} "Invalid soldier ID"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Security BearerAuth
// @Router /soldiers/{id} [delete]
func (h *SoldierHandler) DeleteSoldier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	if err := h.soldierService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Soldier deleted successfully"})
}

// AddConstraint adds a scheduling constraint to a soldier
// @Summary Add a constraint
// @Description Add a no-assign constraint for a weekday or an inclusive date range
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Param constraint body service.AddConstraintRequest true "Constraint data"
// @Success 201 {object} models.SoldierConstraint "Successfully created constraint"
// @Failure 400 {object} map[string]interface{} "Constraint needs a weekday or a date range"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Security BearerAuth
// @Router /soldiers/{id}/constraints [post]
func (h *SoldierHandler) AddConstraint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	var req service.AddConstraintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	constraint, err := h.soldierService.AddConstraint(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, constraint)
}

// RemoveConstraint removes a constraint from a soldier
// @Summary Remove a constraint
// @Description Remove a scheduling constraint from a soldier
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Param constraintId path string true "Constraint ID (UUID)"
// @Success 200 {object} map[string]interface{} "Constraint removed"
// @Failure 404 {object} map[string]interface{} "Soldier or constraint not found"
// @Security BearerAuth
// @Router /soldiers/{id}/constraints/{constraintId} [delete]
func (h *SoldierHandler) RemoveConstraint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	constraintID, err := uuid.Parse(c.Param("constraintId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid constraint ID"})
		return
	}

	if err := h.soldierService.RemoveConstraint(id, constraintID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Constraint removed successfully"})
}

// AddExemption adds a duty exemption to a soldier
// @Summary Add an exemption
// @Description Exempt a soldier from a duty category (night, guards or cleaning)
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Param exemption body service.AddExemptionRequest true "Exemption data"
// @Success 201 {object} models.SoldierExemption "Successfully created exemption"
// @Failure 400 {object} map[string]interface{} "Invalid exemption code"
// @Failure 404 {object} map[string]interface{} "Soldier not found"
// @Failure 409 {object} map[string]interface{} "Exemption already exists"
// @Security BearerAuth
// @Router /soldiers/{id}/exemptions [post]
func (h *SoldierHandler) AddExemption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	var req service.AddExemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exemption, err := h.soldierService.AddExemption(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrExemptionExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, exemption)
}

// RemoveExemption removes an exemption from a soldier
// @Summary Remove an exemption
// @Description Remove a duty exemption from a soldier
// @Tags soldiers
// @Accept json
// @Produce json
// @Param id path string true "Soldier ID (UUID)"
// @Param exemptionId path string true "Exemption ID (UUID)"
// @Success 200 {object} map[string]interface{} "Exemption removed"
// @Failure 404 {object} map[string]interface{} "Soldier or exemption not found"
// @Security BearerAuth
// @Router /soldiers/{id}/exemptions/{exemptionId} [delete]
func (h *SoldierHandler) RemoveExemption(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid soldier ID"})
		return
	}

	exemptionID, err := uuid.Parse(c.Param("exemptionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid exemption ID"})
		return
	}

	if err := h.soldierService.RemoveExemption(id, exemptionID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exemption removed successfully"})
}
