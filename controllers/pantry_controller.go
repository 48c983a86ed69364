package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gallegosdl/meal-planner-app-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PantryController struct {
	Svc *services.PantryService
}

func NewPantryController(svc *services.PantryService) *PantryController {
	return &PantryController{Svc: svc}
}

// GET /api/pantry — items grouped by category
func (h *PantryController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	grouped, err := h.Svc.ListGrouped(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry items"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// POST /api/pantry — add (upsert by user+name+category)
func (h *PantryController) Add(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	var body struct {
		ItemName string  `json:"item_name" binding:"required"`
		Category string  `json:"category"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Svc.AddItem(userID, body.ItemName, body.Category, body.Unit, body.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add pantry item"})
		return
	}

	// return the refreshed grouped list, the shape the modal re-renders from
	grouped, err := h.Svc.ListGrouped(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry items"})
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// PATCH /api/pantry/:id — set quantity (clamped at zero)
func (h *PantryController) UpdateQuantity(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var body struct {
		Quantity float64 `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Svc.UpdateQuantity(userID, uint(itemID), body.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pantry item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/pantry/:id
func (h *PantryController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok { c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"}); return }

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.Svc.DeleteItem(userID, uint(itemID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pantry item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
