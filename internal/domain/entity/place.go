package entity

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Place is a search result. It is built per request and never persisted by the search flow.
// Coordinates and rating are exact decimals so offsets and round-trips keep their digits.
type Place struct {
	Name      string
	Address   string
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	Rating    decimal.NullDecimal
	PlaceID   string
	Types     []string
}

// HasType reports whether the tag list contains t verbatim.
func (p *Place) HasType(t string) bool {
	return slices.Contains(p.Types, t)
}

// PlaceQuery describes a nearby search.
type PlaceQuery struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
	RadiusKm  decimal.Decimal
	Type      string // Optional category filter, empty means no filter.
}
