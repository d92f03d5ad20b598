package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlace_HasType(t *testing.T) {
	place := &Place{Types: []string{"cafe", "food", "Establishment"}}

	tests := []struct {
		name string
		tag  string
		want bool
	}{
		{name: "exact match", tag: "cafe", want: true},
		{name: "substring does not match", tag: "caf", want: false},
		{name: "case differs from stored tag", tag: "establishment", want: false},
		{name: "stored casing", tag: "Establishment", want: true},
		{name: "empty tag", tag: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, place.HasType(tt.tag))
		})
	}
}

func TestFavoritePlace_ExternalID(t *testing.T) {
	id := "mock_place_1"

	assert.Equal(t, "", (&FavoritePlace{}).ExternalID())
	assert.Equal(t, id, (&FavoritePlace{PlaceID: &id}).ExternalID())
}
