package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// NearbySearchInput carries an already-bound nearby search request.
type NearbySearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Type      string // Optional category filter.
}

// PlaceUsecase defines the nearby search use case
type PlaceUsecase interface {
	// FindNearby returns places around the input point, narrowed to the requested category when one is given.
	FindNearby(ctx context.Context, input *NearbySearchInput) ([]*entity.Place, error)
}
