package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Game represents a game in the catalog.
// Numeric fields are nullable: nil means the value is not known.
type Game struct {
	gorm.Model
	Title       string `gorm:"size:255;not null;index"`
	Description string
	SteamURL    string `gorm:"size:512"`
	Genres      datatypes.JSONSlice[string]
	Platforms   datatypes.JSONSlice[string]
	Tags        []*Tag `gorm:"many2many:game_tags;"`

	Price       *float64
	Rating      *float64
	ReleaseYear *int
	Downloads   *int64
	Revenue     *float64
}

// TagNames returns the names of the preloaded tags.
func (g Game) TagNames() []string {
	names := make([]string, 0, len(g.Tags))
	for _, tag := range g.Tags {
		if tag != nil {
			names = append(names, tag.Name)
		}
	}
	return names
}
