package models

import "gorm.io/gorm"

const RoleAdmin = "admin"

// User is a developer account. Rows are provisioned by the identity provider;
// the service only reads them.
type User struct {
	gorm.Model
	Nickname      string  `gorm:"size:255;unique;not null"`
	Email         string  `gorm:"size:255;unique;not null"`
	Role          string  `gorm:"size:50;not null;default:'user';index"`
	FavoriteGames []*Game `gorm:"many2many:user_favorite_games;"`
}
