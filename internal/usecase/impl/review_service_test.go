package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/service"
	mockService "nearby/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReviewService_NoProvider_UsesMockReviews(t *testing.T) {
	recorder := mockService.NewMockReviewFallbackRecorder(t)
	recorder.EXPECT().RecordReviewFallback(service.ReviewFallbackNoCredential).Return().Times(2)

	srv := NewReviewService(ReviewServiceParams{Recorder: recorder, Logger: discardLogger()})

	reviews, err := srv.GetReviews(context.Background(), "mock_place_1")
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Sarah Johnson", reviews[0].AuthorName)
	assert.Equal(t, "Mike Chen", reviews[1].AuthorName)
	assert.Equal(t, "Emma Davis", reviews[2].AuthorName)
	assert.True(t, reviews[1].Rating.Valid)
	assert.True(t, reviews[1].Rating.Decimal.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "1 month ago", reviews[1].RelativeTimeDescription)

	reviews, err = srv.GetReviews(context.Background(), "some-unknown-place")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anonymous User", reviews[0].AuthorName)
	assert.Equal(t, "Good place overall. Worth visiting!", reviews[0].Text)
}

func TestMockReviews_KnownSets(t *testing.T) {
	tests := []struct {
		placeID string
		authors []string
	}{
		{"mock_place_1", []string{"Sarah Johnson", "Mike Chen", "Emma Davis"}},
		{"mock_place_2", []string{"John Smith", "Lisa Wang"}},
		{"mock_place_3", []string{"David Brown", "Maria Garcia"}},
		{"mock_place_4", []string{"Alex Thompson", "Jennifer Lee"}},
		{"mock_place_5", []string{"Anonymous User"}},
		{"", []string{"Anonymous User"}},
	}

	for _, tt := range tests {
		t.Run(tt.placeID, func(t *testing.T) {
			reviews := mockReviews(tt.placeID)

			authors := make([]string, 0, len(reviews))
			for _, r := range reviews {
				authors = append(authors, r.AuthorName)
				assert.True(t, r.Rating.Valid)
				assert.NotEmpty(t, r.Text)
			}
			assert.Equal(t, tt.authors, authors)
		})
	}
}

func TestReviewService_LastMockPlaceGetsGenericReview(t *testing.T) {
	srv := NewReviewService(ReviewServiceParams{Logger: discardLogger()})

	reviews, err := srv.GetReviews(context.Background(), "mock_place_5")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anonymous User", reviews[0].AuthorName)
	assert.Equal(t, "1 week ago", reviews[0].RelativeTimeDescription)
	assert.True(t, reviews[0].Rating.Decimal.Equal(decimal.NewFromInt(4)))
}

func TestMockReviews_ReturnsFreshSlices(t *testing.T) {
	first := mockReviews("mock_place_1")
	first[0].AuthorName = "changed"

	second := mockReviews("mock_place_1")
	assert.Equal(t, "Sarah Johnson", second[0].AuthorName)
}

func TestReviewService_ProviderSuccess(t *testing.T) {
	provider := mockService.NewMockReviewProvider(t)
	recorder := mockService.NewMockReviewFallbackRecorder(t)
	srv := NewReviewService(ReviewServiceParams{Provider: provider, Recorder: recorder, Logger: discardLogger()})

	ctx := context.Background()
	expected := []*entity.Review{
		{AuthorName: "Real Person", Text: "Lovely"},
		{Text: "no author"},
	}
	provider.EXPECT().FetchReviews(ctx, "ChIJ123").Return(expected, nil)

	reviews, err := srv.GetReviews(ctx, "ChIJ123")

	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}

func TestReviewService_ProviderEmptyResultIsNotAFallback(t *testing.T) {
	provider := mockService.NewMockReviewProvider(t)
	srv := NewReviewService(ReviewServiceParams{Provider: provider, Logger: discardLogger()})

	provider.EXPECT().FetchReviews(context.Background(), "ChIJ123").Return(nil, nil)

	reviews, err := srv.GetReviews(context.Background(), "ChIJ123")

	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewService_ProviderFailureFallsBackToMock(t *testing.T) {
	provider := mockService.NewMockReviewProvider(t)
	recorder := mockService.NewMockReviewFallbackRecorder(t)
	srv := NewReviewService(ReviewServiceParams{Provider: provider, Recorder: recorder, Logger: discardLogger()})

	provider.EXPECT().FetchReviews(context.Background(), "mock_place_2").Return(nil, errors.New("timeout"))
	recorder.EXPECT().RecordReviewFallback(service.ReviewFallbackProviderError).Return().Once()

	reviews, err := srv.GetReviews(context.Background(), "mock_place_2")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "John Smith", reviews[0].AuthorName)
	assert.Equal(t, "Lisa Wang", reviews[1].AuthorName)
}

func TestReviewService_WithoutRecorder(t *testing.T) {
	srv := NewReviewService(ReviewServiceParams{Logger: discardLogger()})

	reviews, err := srv.GetReviews(context.Background(), "mock_place_3")

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
