package postgres

import (
	"context"

	"nearby/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the favorites and catalog tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.FavoritePlaceModel{},
		&model.FavoritePlaceTypeModel{},
		&model.PlaceModel{},
		&model.PlaceTypeModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
