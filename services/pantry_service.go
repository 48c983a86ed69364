package services

import (
	"errors"
	"strings"

	"github.com/gallegosdl/meal-planner-app-sub000/models"

	"gorm.io/gorm"
)

type PantryService struct {
	db *gorm.DB
}

func NewPantryService(db *gorm.DB) *PantryService {
	return &PantryService{db: db}
}

// ListGrouped returns the user's pantry keyed by category, items sorted by
// name, the shape the pantry modal renders directly.
func (s *PantryService) ListGrouped(userID uint) (map[string][]models.PantryItem, error) {
	var items []models.PantryItem
	err := s.db.
		Where("user_id = ?", userID).
		Order("item_name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.PantryItem)
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped, nil
}

// AddItem upserts by (user, name, category): adding "Eggs" twice tops up the
// quantity instead of creating a duplicate row.
func (s *PantryService) AddItem(userID uint, name, category, unit string, quantity float64) (*models.PantryItem, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(strings.ToLower(category))
	if category == "" {
		category = "other"
	}
	if unit == "" {
		unit = "each"
	}
	if quantity <= 0 {
		quantity = 1
	}

	var item models.PantryItem
	err := s.db.
		Where("user_id = ? AND LOWER(item_name) = LOWER(?) AND category = ?", userID, name, category).
		First(&item).Error
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.db.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
			return nil, err
		}
		return &item, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	item = models.PantryItem{
		UserID:   userID,
		ItemName: name,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets an item's quantity, clamped at zero.
func (s *PantryService) UpdateQuantity(userID, itemID uint, quantity float64) (*models.PantryItem, error) {
	var item models.PantryItem
	if err := s.db.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return nil, err
	}
	if quantity < 0 {
		quantity = 0
	}
	item.Quantity = quantity
	if err := s.db.Model(&item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *PantryService) DeleteItem(userID, itemID uint) error {
	var item models.PantryItem
	if err := s.db.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		return err
	}
	// Hard delete: a soft-deleted row would still occupy the
	// (user, item, category) unique index and block re-adding the item.
	return s.db.Unscoped().Delete(&item).Error
}
