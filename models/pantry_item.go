package models

import (
	"gorm.io/gorm"
)

// One pantry row per (user, item, category). Quantity never goes below zero;
// the reconciliation engine clamps and reports the shortfall instead.
type PantryItem struct {
	gorm.Model
	UserID   uint    `gorm:"not null;uniqueIndex:idx_pantry_user_item"`
	ItemName string  `gorm:"not null;uniqueIndex:idx_pantry_user_item"`
	Category string  `gorm:"not null;uniqueIndex:idx_pantry_user_item"` // "meat"|"spices"|"grains"|"vegetables"|"other"
	Quantity float64 `gorm:"not null;default:1"`
	Unit     string  `gorm:"default:each"` // free text; "each" when counted
}
