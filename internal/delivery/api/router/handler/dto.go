package handler

import (
	"encoding/json"

	"nearby/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceResponse is the wire form of a search result. Decimals are written as bare JSON numbers.
type PlaceResponse struct {
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Latitude  json.Number  `json:"latitude"`
	Longitude json.Number  `json:"longitude"`
	Rating    *json.Number `json:"rating"`
	PlaceID   string       `json:"placeId"`
	Types     []string     `json:"types"`
}

// ReviewResponse is the wire form of a review. Fields the provider did not send are omitted.
type ReviewResponse struct {
	AuthorName              string       `json:"authorName,omitempty"`
	Rating                  *json.Number `json:"rating,omitempty"`
	RelativeTimeDescription string       `json:"relativeTimeDescription,omitempty"`
	Text                    string       `json:"text,omitempty"`
}

// FavoritePlaceResponse is the wire form of a saved place
type FavoritePlaceResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Types     []string  `json:"types"`
	Rating    *float64  `json:"rating"`
	PlaceID   *string   `json:"placeId"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

func toPlaceResponses(places []*entity.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, PlaceResponse{
			Name:      place.Name,
			Address:   place.Address,
			Latitude:  decimalNumber(place.Latitude),
			Longitude: decimalNumber(place.Longitude),
			Rating:    nullDecimalNumber(place.Rating),
			PlaceID:   place.PlaceID,
			Types:     nonNilStrings(place.Types),
		})
	}

	return out
}

func toReviewResponses(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, ReviewResponse{
			AuthorName:              review.AuthorName,
			Rating:                  nullDecimalNumber(review.Rating),
			RelativeTimeDescription: review.RelativeTimeDescription,
			Text:                    review.Text,
		})
	}

	return out
}

func toFavoriteResponse(favorite *entity.FavoritePlace) FavoritePlaceResponse {
	return FavoritePlaceResponse{
		ID:        favorite.ID,
		Name:      favorite.Name,
		Address:   favorite.Address,
		Latitude:  favorite.Latitude,
		Longitude: favorite.Longitude,
		Types:     nonNilStrings(favorite.Types),
		Rating:    favorite.Rating,
		PlaceID:   favorite.PlaceID,
	}
}

func toFavoriteResponses(favorites []*entity.FavoritePlace) []FavoritePlaceResponse {
	out := make([]FavoritePlaceResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, toFavoriteResponse(favorite))
	}

	return out
}

func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func nullDecimalNumber(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}
	n := decimalNumber(d.Decimal)

	return &n
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}
