package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/paulmach/orb"
)

// ErrPlaceNotFound is returned when the catalog has no place with the requested identifier.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the catalog of places stored in the relational store.
type PlaceRepository interface {
	// FindPlacesWithin returns catalog places whose great-circle distance from center is at most radiusKm,
	// nearest first. center is [lon, lat].
	FindPlacesWithin(ctx context.Context, center orb.Point, radiusKm float64) ([]*entity.Place, error)

	// FindPlaceByPlaceID retrieves a catalog place by its external identifier.
	FindPlaceByPlaceID(ctx context.Context, placeID string) (*entity.Place, error)

	// UpsertPlace inserts a place or replaces the one with the same external identifier.
	UpsertPlace(ctx context.Context, place *entity.Place) error
}
