package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gallegosdl/meal-planner-app-sub000/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Svc *services.ConsumptionService
}

func NewConsumptionController(svc *services.ConsumptionService) *ConsumptionController {
	return &ConsumptionController{Svc: svc}
}

// POST /api/meal-plan/consume-meal
//
// Marks a planned meal as eaten and reconciles its ingredients against the
// pantry. Partial matches and shortfalls are part of the 200 response; only a
// store failure produces a 500, and then no pantry mutation has happened.
func (h *ConsumptionController) ConsumeMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	var body struct {
		EventID string               `json:"eventId" binding:"required"` // "2024-01-15-breakfast"
		Meal    services.MealRequest `json:"meal" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: eventId, meal"})
		return
	}
	if body.Meal.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "meal.name is required"})
		return
	}

	result, err := h.Svc.ConsumeMeal(c.Request.Context(), userID, body.EventID, body.Meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process meal consumption"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "Meal marked as consumed",
		"eventId":           body.EventID,
		"reductionLog":      result.ReductionLog,
		"insufficientItems": result.InsufficientItems,
		"noMatchItems":      result.NoMatchItems,
		"unitConversionLog": result.UnitConversionLog,
		"summary":           result.Summary,
	})
}

// GET /api/consumption/history?limit=20
func (h *ConsumptionController) History(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := h.Svc.History(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch consumption history"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/consumption/stats?from=2024-01-01&to=2024-01-31
func (h *ConsumptionController) Stats(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"}); return }
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil { c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"}); return }
		end := t.AddDate(0, 0, 1).Add(-time.Second)
		to = &end
	}

	stats, err := h.Svc.Stats(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute consumption stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
