package main

import (
	"strings"

	"nearby/internal/domain/entity"
	"nearby/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// catalogFile is the YAML layout of an importable place catalog:
//
//	places:
//	  - placeId: nyc_cafe_1
//	    name: Starbucks Coffee
//	    address: 123 Main St
//	    latitude: 40.7138
//	    longitude: -74.005
//	    rating: 4.2
//	    types: [cafe, food]
type catalogFile struct {
	Places []catalogEntry `koanf:"places"`
}

// Coordinates are decoded as text so their digits reach decimal.Decimal unchanged.
type catalogEntry struct {
	PlaceID   string   `koanf:"placeId"`
	Name      string   `koanf:"name"`
	Address   string   `koanf:"address"`
	Latitude  string   `koanf:"latitude"`
	Longitude string   `koanf:"longitude"`
	Rating    string   `koanf:"rating"`
	Types     []string `koanf:"types"`
}

var (
	minLatitude  = decimal.NewFromInt(-90)
	maxLatitude  = decimal.NewFromInt(90)
	minLongitude = decimal.NewFromInt(-180)
	maxLongitude = decimal.NewFromInt(180)
	maxRating    = decimal.NewFromInt(5)
)

// loadCatalog reads and validates a catalog file.
func loadCatalog(path string) ([]*entity.Place, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	var catalog catalogFile
	if err := k.UnmarshalWithConf("", &catalog, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &catalog,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to decode catalog %s", path)
	}

	return parseCatalog(catalog.Places)
}

// parseCatalog converts entries into places, reporting every problem at once.
func parseCatalog(entries []catalogEntry) ([]*entity.Place, error) {
	places := make([]*entity.Place, 0, len(entries))
	seen := make(map[string]int, len(entries))
	var problems []error

	for i, entry := range entries {
		place, err := parseEntry(entry)
		if err != nil {
			problems = append(problems, errors.Wrapf(err, "entry %d (%s)", i, entry.PlaceID))

			continue
		}

		if first, dup := seen[place.PlaceID]; dup {
			problems = append(problems, errors.Errorf("entry %d: placeId %q already used by entry %d", i, place.PlaceID, first))

			continue
		}
		seen[place.PlaceID] = i
		places = append(places, place)
	}

	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	return places, nil
}

func parseEntry(entry catalogEntry) (*entity.Place, error) {
	place := &entity.Place{
		PlaceID: strings.TrimSpace(entry.PlaceID),
		Name:    strings.TrimSpace(entry.Name),
		Address: strings.TrimSpace(entry.Address),
		Types:   make([]string, 0, len(entry.Types)),
	}

	switch {
	case place.PlaceID == "":
		return nil, errors.New("placeId is required")
	case place.Name == "":
		return nil, errors.New("name is required")
	case place.Address == "":
		return nil, errors.New("address is required")
	}

	var err error
	if place.Latitude, err = parseBounded("latitude", entry.Latitude, minLatitude, maxLatitude); err != nil {
		return nil, err
	}
	if place.Longitude, err = parseBounded("longitude", entry.Longitude, minLongitude, maxLongitude); err != nil {
		return nil, err
	}

	if strings.TrimSpace(entry.Rating) != "" {
		rating, err := parseBounded("rating", entry.Rating, decimal.Zero, maxRating)
		if err != nil {
			return nil, err
		}
		place.Rating = decimal.NewNullDecimal(rating)
	}

	for _, t := range entry.Types {
		if t = strings.TrimSpace(t); t != "" {
			place.Types = append(place.Types, t)
		}
	}

	return place, nil
}

func parseBounded(field, raw string, lo, hi decimal.Decimal) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errors.Errorf("%s is required", field)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "%s %q is not a number", field, raw)
	}

	if value.LessThan(lo) || value.GreaterThan(hi) {
		return decimal.Zero, errors.Errorf("%s %s is outside [%s, %s]", field, value, lo, hi)
	}

	return value, nil
}
