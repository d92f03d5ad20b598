package usecase

import (
	"context"

	"nearby/internal/domain/entity"
)

// ReviewUsecase defines the review lookup use case.
// Lookups are best-effort: provider failures degrade to mock reviews instead of errors.
type ReviewUsecase interface {
	GetReviews(ctx context.Context, placeID string) ([]*entity.Review, error)
}
