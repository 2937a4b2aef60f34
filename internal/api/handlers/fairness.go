package handlers

import (
	"net/http"
	"strconv"

	"duty-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FairnessHandler handles HTTP requests for the fairness report
type FairnessHandler struct {
	fairnessService service.FairnessServiceInterface
}

// NewFairnessHandler creates a new fairness handler
func NewFairnessHandler(fairnessService service.FairnessServiceInterface) *FairnessHandler {
	return &FairnessHandler{fairnessService: fairnessService}
}

// GetFairnessReport returns the per-soldier duty-load report
// @Summary Get fairness report
// @Description Get every soldier's accumulated points over a trailing window, with a per-category breakdown, sorted by total points descending
// @Tags fairness
// @Accept json
// @Produce json
// @Param range query int false "Window size in days" default(60)
// @Success 200 {object} map[string]interface{} "Successfully retrieved report"
// @Failure 400 {object} map[string]interface{} "Invalid range parameter"
// @Security BearerAuth
// @Router /fairness [get]
func (h *FairnessHandler) GetFairnessReport(c *gin.Context) {
	rangeDays := 60
	if rangeStr := c.Query("range"); rangeStr != "" {
		parsed, err := strconv.Atoi(rangeStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'range' parameter, expected a positive integer"})
			return
		}
		rangeDays = parsed
	}

	report, err := h.fairnessService.Report(rangeDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"range_days": rangeDays,
		"soldiers":   report,
	})
}
