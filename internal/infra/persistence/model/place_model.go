package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceModel is the GORM-specific struct for the 'places' catalog table.
type PlaceModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	PlaceID   string              `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string              `gorm:"type:varchar(255);not null"`
	Address   string              `gorm:"type:varchar(500);not null"`
	Latitude  decimal.Decimal     `gorm:"type:numeric(10,7);not null;index:idx_places_lat_lon,priority:1"`
	Longitude decimal.Decimal     `gorm:"type:numeric(10,7);not null;index:idx_places_lat_lon,priority:2"`
	Rating    decimal.NullDecimal `gorm:"type:numeric(2,1)"`
	Types     []PlaceTypeModel    `gorm:"foreignKey:PlaceRowID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}

// PlaceTypeModel is one category tag of a catalog place.
type PlaceTypeModel struct {
	PlaceRowID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	Type       string    `gorm:"type:varchar(100);not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (PlaceTypeModel) TableName() string {
	return "place_types"
}
