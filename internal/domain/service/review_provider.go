package service

import (
	"context"

	"nearby/internal/domain/entity"
)

// ReviewProvider fetches reviews for an external place identifier from a third-party catalog.
type ReviewProvider interface {
	// FetchReviews returns the provider's reviews for placeID.
	// Any transport, status or decoding problem is returned as an error.
	FetchReviews(ctx context.Context, placeID string) ([]*entity.Review, error)
}

// Reasons a review lookup was answered from mock data.
const (
	ReviewFallbackNoCredential  = "no_credential"
	ReviewFallbackProviderError = "provider_error"
)

// ReviewFallbackRecorder observes lookups that fell back to mock reviews.
type ReviewFallbackRecorder interface {
	RecordReviewFallback(reason string)
}
