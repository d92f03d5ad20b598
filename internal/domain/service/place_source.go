package service

import (
	"context"

	"nearby/internal/domain/entity"
)

// PlaceSource produces candidate places for a nearby search.
// Implementations may or may not honour the radius; category filtering is left to the caller.
type PlaceSource interface {
	// FindNearby returns places around the query point in the source's natural order.
	FindNearby(ctx context.Context, query entity.PlaceQuery) ([]*entity.Place, error)

	// Name identifies the source in logs.
	Name() string
}
