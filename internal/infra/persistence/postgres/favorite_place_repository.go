// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// favoritePlaceRepository implements the repository.FavoritePlaceRepository interface.
type favoritePlaceRepository struct {
	db *gorm.DB
}

// NewFavoritePlaceRepository is the constructor for favoritePlaceRepository.
func NewFavoritePlaceRepository(db *gorm.DB) repository.FavoritePlaceRepository {
	return &favoritePlaceRepository{
		db: db,
	}
}

// CreateFavoritePlace inserts the favorite row and its tag rows together.
func (repo *favoritePlaceRepository) CreateFavoritePlace(ctx context.Context, favorite *entity.FavoritePlace) error {
	favoriteM := fromFavoritePlaceDomain(favorite)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(favoriteM).Error; err != nil {
			return err
		}
		if len(favoriteM.Types) == 0 {
			return nil
		}

		return tx.Create(&favoriteM.Types).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteAlreadyExists.WrapMessage("unique constraint violation")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required favorite place information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite place")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// FindFavoritePlaceByNameAndAddress retrieves the favorite saved under the exact (name, address) pair.
func (repo *favoritePlaceRepository) FindFavoritePlaceByNameAndAddress(ctx context.Context, name, address string) (*entity.FavoritePlace, error) {
	var favoriteM model.FavoritePlaceModel

	if err := repo.db.WithContext(ctx).
		Preload("Types", orderTypesByPosition).
		Where("name = ? AND address = ?", name, address).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoritePlaceNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find favorite place")
	}

	return toFavoritePlaceDomain(&favoriteM), nil
}

// ExistsByPlaceID reports whether a favorite carries the given external identifier.
func (repo *favoritePlaceRepository) ExistsByPlaceID(ctx context.Context, placeID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.FavoritePlaceModel{}).
		Where("place_id = ?", placeID).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check favorite place id")
	}

	return count > 0, nil
}

// ListFavoritePlaces returns every favorite ordered by name ascending.
func (repo *favoritePlaceRepository) ListFavoritePlaces(ctx context.Context) ([]*entity.FavoritePlace, error) {
	var favoriteModels []*model.FavoritePlaceModel

	if err := repo.db.WithContext(ctx).
		Preload("Types", orderTypesByPosition).
		Order("name ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorite places")
	}

	favorites := make([]*entity.FavoritePlace, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoritePlaceDomain(favoriteM))
	}

	return favorites, nil
}

// DeleteFavoritePlace removes the tag rows and the favorite.
func (repo *favoritePlaceRepository) DeleteFavoritePlace(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("favorite_place_id = ?", id).Delete(&model.FavoritePlaceTypeModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete favorite place types")
		}

		result := tx.Where("id = ?", id).Delete(&model.FavoritePlaceModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete favorite place")
		}
		if result.RowsAffected == 0 {
			return repository.ErrFavoritePlaceNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrFavoritePlaceNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite place")
	}

	return nil
}

func orderTypesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// --- Mapper Functions ---

func toFavoritePlaceDomain(data *model.FavoritePlaceModel) *entity.FavoritePlace {
	if data == nil {
		return nil
	}

	types := make([]string, 0, len(data.Types))
	for _, t := range data.Types {
		types = append(types, t.Type)
	}

	return &entity.FavoritePlace{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Types:     types,
		Rating:    data.Rating,
		PlaceID:   data.PlaceID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoritePlaceDomain(data *entity.FavoritePlace) *model.FavoritePlaceModel {
	if data == nil {
		return nil
	}

	id := data.ID
	if id == uuid.Nil {
		id = uuid.New()
		data.ID = id
	}

	types := make([]model.FavoritePlaceTypeModel, 0, len(data.Types))
	for i, t := range data.Types {
		types = append(types, model.FavoritePlaceTypeModel{
			FavoritePlaceID: id,
			Position:        i,
			Type:            t,
		})
	}

	placeID := data.PlaceID
	if placeID != nil && *placeID == "" {
		placeID = nil
	}

	return &model.FavoritePlaceModel{
		ID:        id,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Rating:    data.Rating,
		PlaceID:   placeID,
		Types:     types,
		CreatedAt: data.CreatedAt,
	}
}
