package models

import (
	"time"

	"github.com/gallegosdl/meal-planner-app-sub000/utils"
)

// MealConsumption is the append-only audit record of one "mark consumed"
// action: the flattened summary plus the full reconciliation logs. Re-marking
// the same calendar event creates a new row; history is never rewritten.
type MealConsumption struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_consumption_event"`
	EventID    string    `gorm:"size:255;not null;index;uniqueIndex:idx_consumption_event"` // "2024-01-15-breakfast"
	MealName   string    `gorm:"size:255;not null"`
	ConsumedAt time.Time `gorm:"not null;index;uniqueIndex:idx_consumption_event;autoCreateTime"`

	TotalIngredients        int `gorm:"not null;default:0"`
	IngredientsReduced      int `gorm:"not null;default:0"`
	IngredientsInsufficient int `gorm:"not null;default:0"`
	IngredientsNoMatch      int `gorm:"not null;default:0"`
	SuccessRate             int `gorm:"not null;default:0"` // percent of ingredients deducted

	ReductionLog      []utils.ReductionEntry    `gorm:"serializer:json"`
	InsufficientItems []utils.InsufficientEntry `gorm:"serializer:json"`
	NoMatchItems      []utils.NoMatchEntry      `gorm:"serializer:json"`
	UnitConversionLog []utils.ConversionTrace   `gorm:"serializer:json"`
}
