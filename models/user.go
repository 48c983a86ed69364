package models

import (
	"gorm.io/gorm"
)

// User exists here as the owner of pantry rows and consumption history.
// Registration, login and the OAuth providers live in a separate service;
// requests arrive already carrying a signed user token.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	FullName string
}
