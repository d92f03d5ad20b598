package impl

import (
	"context"
	"log/slog"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	"nearby/internal/usecase"

	"go.uber.org/fx"
)

// ReviewServiceParams holds the dependencies of the review service.
// Provider is nil when no provider credential is configured.
type ReviewServiceParams struct {
	fx.In

	Provider service.ReviewProvider         `optional:"true"`
	Recorder service.ReviewFallbackRecorder `optional:"true"`
	Logger   *slog.Logger
}

type reviewService struct {
	provider service.ReviewProvider
	recorder service.ReviewFallbackRecorder
	logger   *slog.Logger
}

// NewReviewService creates the review lookup service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		provider: params.Provider,
		recorder: params.Recorder,
		logger:   params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetReviews never returns provider failures; they degrade to mock reviews for placeID.
func (srv *reviewService) GetReviews(ctx context.Context, placeID string) ([]*entity.Review, error) {
	srv.log(ctx).Info("Fetching reviews", slog.String("place_id", placeID))

	if srv.provider == nil {
		srv.log(ctx).Debug("No review provider configured, using mock reviews")
		srv.recordFallback(service.ReviewFallbackNoCredential)

		return mockReviews(placeID), nil
	}

	reviews, err := srv.provider.FetchReviews(ctx, placeID)
	if err != nil {
		srv.log(ctx).Warn("Review provider failed, using mock reviews",
			slog.String("place_id", placeID),
			slog.Any("error", err),
		)
		srv.recordFallback(service.ReviewFallbackProviderError)

		return mockReviews(placeID), nil
	}

	if reviews == nil {
		reviews = []*entity.Review{}
	}
	srv.log(ctx).Debug("Fetched provider reviews", slog.String("place_id", placeID), slog.Int("count", len(reviews)))

	return reviews, nil
}

func (srv *reviewService) recordFallback(reason string) {
	if srv.recorder != nil {
		srv.recorder.RecordReviewFallback(reason)
	}
}
