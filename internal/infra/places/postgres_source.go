package places

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"

	"github.com/paulmach/orb"
)

// PostgresSource serves nearby search from the relational place catalog.
type PostgresSource struct {
	repo repository.PlaceRepository
}

// NewPostgresSource creates a source over the catalog repository.
func NewPostgresSource(repo repository.PlaceRepository) *PostgresSource {
	return &PostgresSource{repo: repo}
}

func (s *PostgresSource) Name() string {
	return config.PlacesProviderPostgres
}

// FindNearby returns catalog places within the radius, nearest first.
func (s *PostgresSource) FindNearby(ctx context.Context, query entity.PlaceQuery) ([]*entity.Place, error) {
	lat, _ := query.Latitude.Float64()
	lon, _ := query.Longitude.Float64()
	radiusKm, _ := query.RadiusKm.Float64()

	return s.repo.FindPlacesWithin(ctx, orb.Point{lon, lat}, radiusKm)
}
