package postgres

import (
	"cmp"
	"context"
	"slices"
	"time"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"
	"nearby/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// placeRepository implements the repository.PlaceRepository interface over the 'places' catalog.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{
		db: db,
	}
}

// FindPlacesWithin narrows by a bounding box in SQL and applies the exact great-circle test in Go.
// Results are ordered by distance, then name.
func (repo *placeRepository) FindPlacesWithin(ctx context.Context, center orb.Point, radiusKm float64) ([]*entity.Place, error) {
	bound := util.BoundAround(center, radiusKm)

	query := repo.db.WithContext(ctx).
		Preload("Types", orderTypesByPosition).
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat())

	// a box that wraps past the antimeridian or a pole spans every longitude
	if bound.Min.Lon() > -180 && bound.Max.Lon() < 180 {
		query = query.Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon())
	}

	var placeModels []*model.PlaceModel
	if err := query.Find(&placeModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find places within radius")
	}

	type candidate struct {
		place    *entity.Place
		distance float64
	}

	candidates := make([]candidate, 0, len(placeModels))
	for _, placeM := range placeModels {
		lat, _ := placeM.Latitude.Float64()
		lon, _ := placeM.Longitude.Float64()

		distance := util.PointDistanceKm(center, orb.Point{lon, lat})
		if distance > radiusKm {
			continue
		}
		candidates = append(candidates, candidate{place: toPlaceDomain(placeM), distance: distance})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if c := cmp.Compare(a.distance, b.distance); c != 0 {
			return c
		}

		return cmp.Compare(a.place.Name, b.place.Name)
	})

	places := make([]*entity.Place, 0, len(candidates))
	for _, c := range candidates {
		places = append(places, c.place)
	}

	return places, nil
}

// FindPlaceByPlaceID retrieves a catalog place by its external identifier.
func (repo *placeRepository) FindPlaceByPlaceID(ctx context.Context, placeID string) (*entity.Place, error) {
	var placeM model.PlaceModel

	if err := repo.db.WithContext(ctx).
		Preload("Types", orderTypesByPosition).
		Where("place_id = ?", placeID).
		First(&placeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find place by place id")
	}

	return toPlaceDomain(&placeM), nil
}

// UpsertPlace inserts the place or overwrites the row with the same external identifier, tags included.
func (repo *placeRepository) UpsertPlace(ctx context.Context, place *entity.Place) error {
	if place == nil || place.PlaceID == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("place id is required for upsert")
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.PlaceModel
		err := tx.Select("id", "created_at").Where("place_id = ?", place.PlaceID).First(&existing).Error

		now := time.Now()
		placeM := fromPlaceDomain(place)
		switch {
		case err == nil:
			placeM.ID = existing.ID
			placeM.CreatedAt = existing.CreatedAt
		case errors.Is(err, gorm.ErrRecordNotFound):
			placeM.ID = uuid.New()
			placeM.CreatedAt = now
		default:
			return err
		}
		placeM.UpdatedAt = now
		for i := range placeM.Types {
			placeM.Types[i].PlaceRowID = placeM.ID
		}

		if err := tx.Omit(clause.Associations).Save(placeM).Error; err != nil {
			return err
		}
		if err := tx.Where("place_row_id = ?", placeM.ID).Delete(&model.PlaceTypeModel{}).Error; err != nil {
			return err
		}
		if len(placeM.Types) == 0 {
			return nil
		}

		return tx.Create(&placeM.Types).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert place "+place.PlaceID)
	}

	return nil
}

// --- Mapper Functions ---

func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	types := make([]string, 0, len(data.Types))
	for _, t := range data.Types {
		types = append(types, t.Type)
	}

	return &entity.Place{
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Rating:    data.Rating,
		PlaceID:   data.PlaceID,
		Types:     types,
	}
}

func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	types := make([]model.PlaceTypeModel, 0, len(data.Types))
	for i, t := range data.Types {
		types = append(types, model.PlaceTypeModel{Position: i, Type: t})
	}

	return &model.PlaceModel{
		PlaceID:   data.PlaceID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Rating:    data.Rating,
		Types:     types,
	}
}
