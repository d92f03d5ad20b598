// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"github.com/shopspring/decimal"
)

// Bounds accepted for a nearby search.
const (
	MinSearchRadiusKm = 0.1
	MaxSearchRadiusKm = 50000
)

type placeService struct {
	source service.PlaceSource
	logger *slog.Logger
}

// NewPlaceService creates a nearby search service backed by source
func NewPlaceService(source service.PlaceSource, logger *slog.Logger) usecase.PlaceUsecase {
	return &placeService{
		source: source,
		logger: logger,
	}
}

func (srv *placeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearby asks the configured source for candidates and applies the category filter.
// The filter lowercases the requested type and matches tags exactly, whatever the source.
func (srv *placeService) FindNearby(ctx context.Context, input *usecase.NearbySearchInput) ([]*entity.Place, error) {
	if err := validateNearbySearch(input); err != nil {
		return nil, err
	}

	query := entity.PlaceQuery{
		Latitude:  decimal.NewFromFloat(input.Latitude),
		Longitude: decimal.NewFromFloat(input.Longitude),
		RadiusKm:  decimal.NewFromFloat(input.RadiusKm),
		Type:      strings.ToLower(input.Type),
	}

	srv.log(ctx).Debug("Searching nearby places",
		slog.String("source", srv.source.Name()),
		slog.String("latitude", query.Latitude.String()),
		slog.String("longitude", query.Longitude.String()),
		slog.String("radius_km", query.RadiusKm.String()),
		slog.String("type", query.Type),
	)

	candidates, err := srv.source.FindNearby(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Place source failed", slog.String("source", srv.source.Name()), slog.Any("error", err))

		return nil, domainerrors.ErrPlaceSearchFailed.WrapMessage(fmt.Sprintf("source %s", srv.source.Name()))
	}

	places := make([]*entity.Place, 0, len(candidates))
	for _, place := range candidates {
		if query.Type != "" && !place.HasType(query.Type) {
			continue
		}
		places = append(places, place)
	}

	srv.log(ctx).Debug("Nearby search finished", slog.Int("candidates", len(candidates)), slog.Int("count", len(places)))

	return places, nil
}

func validateNearbySearch(input *usecase.NearbySearchInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("search request is required")
	case !inRange(input.Latitude, -90, 90):
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	case !inRange(input.Longitude, -180, 180):
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	case !inRange(input.RadiusKm, MinSearchRadiusKm, MaxSearchRadiusKm):
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("radius must be between %g and %g km", MinSearchRadiusKm, float64(MaxSearchRadiusKm)))
	}

	return nil
}

// inRange reports whether lo <= v <= hi. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
