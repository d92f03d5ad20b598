// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FavoritePlace is a place the user saved, independent of any external catalog.
// Records are created and deleted but never updated in place.
type FavoritePlace struct {
	ID        uuid.UUID // Generated at insertion time, immutable.
	Name      string    // Display name, required.
	Address   string    // Human-readable address, required. Unique together with Name.
	Latitude  float64   // In [-90, 90].
	Longitude float64   // In [-180, 180].
	Types     []string  // Category tags in the order they were submitted.
	Rating    *float64  // Optional, in [0, 5].
	PlaceID   *string   // Optional external place identifier, unique when present.
	CreatedAt time.Time
}

// ExternalID returns the external place identifier or "" when absent.
func (f *FavoritePlace) ExternalID() string {
	if f.PlaceID == nil {
		return ""
	}

	return *f.PlaceID
}
