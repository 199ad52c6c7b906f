package models

import (
	"gameatlas/backend/internal/discovery"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DiscoveryList is a named discovery filter saved by a user. The filter is
// stored verbatim as JSON.
type DiscoveryList struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index"`
	Name       string `gorm:"size:255;not null"`
	Slug       string `gorm:"size:255;index"`
	ShareToken string `gorm:"size:36;uniqueIndex;not null"`
	Filter     datatypes.JSONType[discovery.Filter]

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}
