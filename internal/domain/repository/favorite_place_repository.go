// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/google/uuid"
)

// ErrFavoritePlaceNotFound is returned when no favorite matches the lookup.
var ErrFavoritePlaceNotFound = errors.New("favorite place not found")

// FavoritePlaceRepository defines the interface for favorite place database operations.
type FavoritePlaceRepository interface {
	// CreateFavoritePlace persists a new favorite together with its category tags.
	// A unique violation on place_id or (name, address) is reported as domain ErrFavoriteAlreadyExists.
	CreateFavoritePlace(ctx context.Context, favorite *entity.FavoritePlace) error

	// FindFavoritePlaceByNameAndAddress retrieves the favorite saved under an exact (name, address) pair.
	FindFavoritePlaceByNameAndAddress(ctx context.Context, name, address string) (*entity.FavoritePlace, error)

	// ExistsByPlaceID reports whether a favorite carries the given external place identifier.
	ExistsByPlaceID(ctx context.Context, placeID string) (bool, error)

	// ListFavoritePlaces returns every favorite ordered by name ascending.
	ListFavoritePlaces(ctx context.Context) ([]*entity.FavoritePlace, error)

	// DeleteFavoritePlace removes a favorite and its tags. Returns ErrFavoritePlaceNotFound when absent.
	DeleteFavoritePlace(ctx context.Context, id uuid.UUID) error
}
