package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	repomocks "nearby/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "places.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalog(t, `
places:
  - placeId: nyc_cafe_1
    name: Starbucks Coffee
    address: 123 Main St
    latitude: 40.7138
    longitude: -74.005
    rating: 4.2
    types: [cafe, food]
  - placeId: nyc_park_1
    name: City Park
    address: 321 Park Ave
    latitude: "40.7118"
    longitude: "-74.0080"
    types: [park]
`)

	catalog, err := loadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	cafe := catalog[0]
	assert.Equal(t, "nyc_cafe_1", cafe.PlaceID)
	assert.Equal(t, "Starbucks Coffee", cafe.Name)
	assert.Equal(t, "40.7138", cafe.Latitude.String())
	assert.Equal(t, "-74.005", cafe.Longitude.String())
	require.True(t, cafe.Rating.Valid)
	assert.Equal(t, "4.2", cafe.Rating.Decimal.String())
	assert.Equal(t, []string{"cafe", "food"}, cafe.Types)

	park := catalog[1]
	assert.Equal(t, "-74.008", park.Longitude.String())
	assert.False(t, park.Rating.Valid)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := loadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseCatalog_Rejects(t *testing.T) {
	valid := catalogEntry{PlaceID: "p1", Name: "N", Address: "A", Latitude: "1", Longitude: "2"}

	tests := []struct {
		name    string
		mutate  func(e *catalogEntry)
		wantErr string
	}{
		{"missing place id", func(e *catalogEntry) { e.PlaceID = " " }, "placeId is required"},
		{"missing name", func(e *catalogEntry) { e.Name = "" }, "name is required"},
		{"missing address", func(e *catalogEntry) { e.Address = "" }, "address is required"},
		{"missing latitude", func(e *catalogEntry) { e.Latitude = "" }, "latitude is required"},
		{"latitude not numeric", func(e *catalogEntry) { e.Latitude = "north" }, "latitude \"north\" is not a number"},
		{"latitude out of range", func(e *catalogEntry) { e.Latitude = "90.5" }, "latitude 90.5 is outside [-90, 90]"},
		{"longitude out of range", func(e *catalogEntry) { e.Longitude = "-180.01" }, "longitude -180.01 is outside [-180, 180]"},
		{"rating out of range", func(e *catalogEntry) { e.Rating = "5.5" }, "rating 5.5 is outside [0, 5]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := valid
			tt.mutate(&entry)

			_, err := parseCatalog([]catalogEntry{entry})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseCatalog_ReportsEveryProblem(t *testing.T) {
	entries := []catalogEntry{
		{PlaceID: "p1", Name: "N", Address: "A", Latitude: "1", Longitude: "2"},
		{PlaceID: "p1", Name: "Other", Address: "B", Latitude: "1", Longitude: "2"},
		{PlaceID: "p2", Name: "", Address: "C", Latitude: "1", Longitude: "2"},
	}

	_, err := parseCatalog(entries)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `placeId "p1" already used by entry 0`)
	assert.Contains(t, err.Error(), "name is required")
}

func TestParseCatalog_DropsBlankTypes(t *testing.T) {
	catalog, err := parseCatalog([]catalogEntry{
		{PlaceID: "p1", Name: "N", Address: "A", Latitude: "0", Longitude: "0", Types: []string{"cafe", " ", "food "}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"cafe", "food"}, catalog[0].Types)
}

func TestUpsertPlaces(t *testing.T) {
	ctx := context.Background()
	repo := repomocks.NewMockPlaceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	existing := &entity.Place{PlaceID: "p1"}
	fresh := &entity.Place{PlaceID: "p2"}

	repo.EXPECT().FindPlaceByPlaceID(mock.Anything, "p1").Return(existing, nil)
	repo.EXPECT().FindPlaceByPlaceID(mock.Anything, "p2").Return(nil, repository.ErrPlaceNotFound)
	repo.EXPECT().UpsertPlace(mock.Anything, existing).Return(nil)
	repo.EXPECT().UpsertPlace(mock.Anything, fresh).Return(nil)

	require.NoError(t, upsertPlaces(ctx, repo, []*entity.Place{existing, fresh}, logger))
}

func TestUpsertPlaces_StopsOnLookupFailure(t *testing.T) {
	repo := repomocks.NewMockPlaceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo.EXPECT().FindPlaceByPlaceID(mock.Anything, "p1").Return(nil, errors.New("connection refused"))

	err := upsertPlaces(context.Background(), repo, []*entity.Place{{PlaceID: "p1"}, {PlaceID: "p2"}}, logger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up p1")
}

func TestRunImport_UnknownTarget(t *testing.T) {
	err := runImport(context.Background(), "places.yaml", "s3")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown target "s3"`)
}
