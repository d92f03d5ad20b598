package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoritePlaceModel is the GORM-specific struct for the 'favorite_places' table.
// place_id is nullable, so the unique index only constrains rows that carry one.
type FavoritePlaceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorite_places_name_address,priority:1"`
	Address   string    `gorm:"type:varchar(500);not null;uniqueIndex:idx_favorite_places_name_address,priority:2"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Rating    *float64
	PlaceID   *string                  `gorm:"type:varchar(255);uniqueIndex:idx_favorite_places_place_id"`
	Types     []FavoritePlaceTypeModel `gorm:"foreignKey:FavoritePlaceID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoritePlaceModel) TableName() string {
	return "favorite_places"
}

// FavoritePlaceTypeModel is one category tag of a favorite. Position keeps submission order.
type FavoritePlaceTypeModel struct {
	FavoritePlaceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position        int       `gorm:"primaryKey;autoIncrement:false"`
	Type            string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (FavoritePlaceTypeModel) TableName() string {
	return "favorite_place_types"
}
