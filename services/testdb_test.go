package services

import (
	"fmt"
	"testing"

	"github.com/gallegosdl/meal-planner-app-sub000/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.PantryItem{},
		&models.MealConsumption{},
	))
	return db
}

func seedPantry(t *testing.T, db *gorm.DB, items ...models.PantryItem) {
	t.Helper()
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
}
