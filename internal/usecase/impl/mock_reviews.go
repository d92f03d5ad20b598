package impl

import (
	"nearby/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type mockReview struct {
	author string
	rating string
	when   string
	text   string
}

// Hand-written reviews for the mock catalog. mock_place_5 and any other identifier get defaultMockReviews.
var mockReviewSets = map[string][]mockReview{
	"mock_place_1": {
		{"Sarah Johnson", "4.0", "2 weeks ago", "Great coffee and friendly staff. The atmosphere is perfect for working on my laptop. WiFi is fast and reliable."},
		{"Mike Chen", "5.0", "1 month ago", "Best Starbucks location in the area! Always clean, quick service, and my order is always correct."},
		{"Emma Davis", "3.0", "3 days ago", "Coffee is good but can get quite crowded during peak hours. Limited seating available."},
	},
	"mock_place_2": {
		{"John Smith", "4.0", "1 week ago", "Fast service and food was hot. Drive-thru was efficient even during lunch rush."},
		{"Lisa Wang", "2.0", "4 days ago", "Food was cold when I received it. Had to wait longer than expected for a simple order."},
	},
	"mock_place_3": {
		{"David Brown", "5.0", "2 months ago", "Excellent library with a great selection of books. Staff is very helpful and knowledgeable."},
		{"Maria Garcia", "4.0", "1 week ago", "Quiet study areas and good computer access. Perfect place for research and reading."},
	},
	"mock_place_4": {
		{"Alex Thompson", "5.0", "3 weeks ago", "Beautiful park with well-maintained trails. Great for jogging and family picnics."},
		{"Jennifer Lee", "4.0", "5 days ago", "Nice playground for kids and plenty of green space. Could use more benches though."},
	},
}

var defaultMockReviews = []mockReview{
	{"Anonymous User", "4.0", "1 week ago", "Good place overall. Worth visiting!"},
}

// mockReviews builds a fresh slice on every call so callers may mutate the result.
func mockReviews(placeID string) []*entity.Review {
	set, ok := mockReviewSets[placeID]
	if !ok {
		set = defaultMockReviews
	}

	reviews := make([]*entity.Review, 0, len(set))
	for _, r := range set {
		reviews = append(reviews, &entity.Review{
			AuthorName:              r.author,
			Rating:                  decimal.NewNullDecimal(decimal.RequireFromString(r.rating)),
			RelativeTimeDescription: r.when,
			Text:                    r.text,
		})
	}

	return reviews
}
