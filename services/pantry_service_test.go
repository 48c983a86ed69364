package services

import (
	"errors"
	"testing"

	"github.com/gallegosdl/meal-planner-app-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAddItemUpserts(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)

	first, err := svc.AddItem(1, "Eggs", "other", "each", 6)
	require.NoError(t, err)
	assert.Equal(t, 6.0, first.Quantity)

	// same user+name+category tops up instead of duplicating
	second, err := svc.AddItem(1, "eggs", "other", "each", 6)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 12.0, second.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.PantryItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// a different user gets their own row
	_, err = svc.AddItem(2, "Eggs", "other", "each", 6)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.PantryItem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddItemDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)

	item, err := svc.AddItem(1, "Mystery Sauce", "", "", 0)
	require.NoError(t, err)
	assert.Equal(t, "other", item.Category)
	assert.Equal(t, "each", item.Unit)
	assert.Equal(t, 1.0, item.Quantity)
}

func TestUpdateQuantityClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)
	seedPantry(t, db, models.PantryItem{UserID: 1, ItemName: "Rice", Category: "grains", Quantity: 3, Unit: "cup"})

	item, err := svc.UpdateQuantity(1, 1, -5)
	require.NoError(t, err)
	assert.Equal(t, 0.0, item.Quantity)
}

func TestUpdateQuantityScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)
	seedPantry(t, db, models.PantryItem{UserID: 1, ItemName: "Rice", Category: "grains", Quantity: 3, Unit: "cup"})

	_, err := svc.UpdateQuantity(2, 1, 5)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestDeleteItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)
	seedPantry(t, db, models.PantryItem{UserID: 1, ItemName: "Rice", Category: "grains", Quantity: 3, Unit: "cup"})

	require.NoError(t, svc.DeleteItem(1, 1))

	grouped, err := svc.ListGrouped(1)
	require.NoError(t, err)
	assert.Empty(t, grouped)

	err = svc.DeleteItem(1, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestReAddAfterDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)

	first, err := svc.AddItem(1, "Eggs", "other", "each", 6)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(1, first.ID))

	// the same (user, name, category) must be creatable again
	again, err := svc.AddItem(1, "Eggs", "other", "each", 12)
	require.NoError(t, err)
	assert.Equal(t, 12.0, again.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.PantryItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListGrouped(t *testing.T) {
	db := newTestDB(t)
	svc := NewPantryService(db)
	seedPantry(t, db,
		models.PantryItem{UserID: 1, ItemName: "Chicken Breast", Category: "meat", Quantity: 500, Unit: "g"},
		models.PantryItem{UserID: 1, ItemName: "Rice", Category: "grains", Quantity: 3, Unit: "cup"},
		models.PantryItem{UserID: 1, ItemName: "Basmati Rice", Category: "grains", Quantity: 1, Unit: "cup"},
		models.PantryItem{UserID: 2, ItemName: "Beef", Category: "meat", Quantity: 1, Unit: "lb"},
	)

	grouped, err := svc.ListGrouped(1)
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped["grains"], 2)
	// sorted by name within a category
	assert.Equal(t, "Basmati Rice", grouped["grains"][0].ItemName)
	assert.Len(t, grouped["meat"], 1)
}
