// Package places provides the data sources behind nearby search.
package places

import (
	"context"

	"nearby/config"
	"nearby/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type mockTemplate struct {
	latOffset string
	lonOffset string
	name      string
	address   string
	rating    string
	placeID   string
	types     []string
}

// mockCatalog is laid out around the query point; order is the response order.
var mockCatalog = []mockTemplate{
	{"0.001", "0.001", "Starbucks Coffee", "123 Main Street, Downtown", "4.2", "mock_place_1", []string{"cafe", "food", "establishment"}},
	{"-0.002", "0.003", "McDonald's", "456 Oak Avenue, Shopping District", "3.8", "mock_place_2", []string{"restaurant", "food", "establishment"}},
	{"0.003", "-0.001", "Local Library", "789 Pine Street, Cultural District", "4.5", "mock_place_3", []string{"library", "establishment", "point_of_interest"}},
	{"-0.001", "-0.002", "City Park", "321 Elm Street, Recreation Area", "4.7", "mock_place_4", []string{"park", "establishment", "point_of_interest"}},
	{"0.004", "0.002", "Gas Station", "654 Maple Drive, Highway Exit", "3.5", "mock_place_5", []string{"gas_station", "establishment", "point_of_interest"}},
}

// MockSource generates the fixed five-place catalog relative to the query point.
// The radius is accepted but not applied.
type MockSource struct{}

// NewMockSource creates the mock place source.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Name identifies the source in logs.
func (s *MockSource) Name() string {
	return config.PlacesProviderMock
}

// FindNearby returns the whole catalog offset from the query point.
func (s *MockSource) FindNearby(_ context.Context, query entity.PlaceQuery) ([]*entity.Place, error) {
	places := make([]*entity.Place, 0, len(mockCatalog))
	for _, tmpl := range mockCatalog {
		places = append(places, &entity.Place{
			Name:      tmpl.name,
			Address:   tmpl.address,
			Latitude:  query.Latitude.Add(decimal.RequireFromString(tmpl.latOffset)),
			Longitude: query.Longitude.Add(decimal.RequireFromString(tmpl.lonOffset)),
			Rating:    decimal.NewNullDecimal(decimal.RequireFromString(tmpl.rating)),
			PlaceID:   tmpl.placeID,
			Types:     append([]string(nil), tmpl.types...),
		})
	}

	return places, nil
}
