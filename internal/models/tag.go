package models

import "gorm.io/gorm"

// Tag represents a game tag (e.g., "Pixel Art", "Co-op", "Roguelike").
type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
