package usecase

import (
	"context"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
)

// AddFavoriteInput represents a request to save a place
type AddFavoriteInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Types     []string
	Rating    *float64
	PlaceID   *string
}

// FavoriteUsecase defines the interface for favorite place management
type FavoriteUsecase interface {
	// AddFavorite saves a new favorite. It fails with ErrFavoriteAlreadyExists when the external
	// place identifier or the (name, address) pair is already saved.
	AddFavorite(ctx context.Context, input *AddFavoriteInput) (*entity.FavoritePlace, error)

	// ListFavorites returns all favorites ordered by name
	ListFavorites(ctx context.Context) ([]*entity.FavoritePlace, error)

	// DeleteFavorite removes a favorite, failing with ErrFavoriteNotFound when it does not exist
	DeleteFavorite(ctx context.Context, id uuid.UUID) error

	// IsFavorited reports whether a favorite carries placeID. An empty placeID is never favorited.
	IsFavorited(ctx context.Context, placeID string) (bool, error)
}
