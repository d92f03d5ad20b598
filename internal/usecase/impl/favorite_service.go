package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type favoriteService struct {
	favoriteRepo repository.FavoritePlaceRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoritePlaceRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite validates the input, rejects duplicates and stores a new favorite.
func (srv *favoriteService) AddFavorite(ctx context.Context, input *usecase.AddFavoriteInput) (*entity.FavoritePlace, error) {
	favorite, err := newFavoriteFromInput(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Adding favorite place",
		slog.String("name", favorite.Name),
		slog.String("place_id", favorite.ExternalID()),
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoritePlaceRepository()

		// 1. External identifier must be unused
		if favorite.PlaceID != nil {
			exists, err := favoriteRepo.ExistsByPlaceID(ctx, *favorite.PlaceID)
			if err != nil {
				return errors.Wrap(err, "failed to check place id")
			}
			if exists {
				return domainerrors.ErrFavoriteAlreadyExists.WithDetails("placeId " + *favorite.PlaceID + " is already saved")
			}
		}

		// 2. (name, address) must be unused
		_, err := favoriteRepo.FindFavoritePlaceByNameAndAddress(ctx, favorite.Name, favorite.Address)
		switch {
		case err == nil:
			return domainerrors.ErrFavoriteAlreadyExists.WithDetails("a favorite with the same name and address is already saved")
		case !errors.Is(err, repository.ErrFavoritePlaceNotFound):
			return errors.Wrap(err, "failed to check name and address")
		}

		// 3. Insert; the unique indexes catch writers racing past the checks above
		if err := favoriteRepo.CreateFavoritePlace(ctx, favorite); err != nil {
			return errors.Wrap(err, "failed to create favorite place")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrFavoriteAlreadyExists) {
			srv.log(ctx).Warn("Favorite place already exists", slog.String("name", favorite.Name), slog.String("place_id", favorite.ExternalID()))
		} else {
			srv.log(ctx).Error("Failed to add favorite place", slog.Any("error", err))
		}

		return nil, errors.Wrap(err, "failed to add favorite place")
	}

	srv.log(ctx).Info("Favorite place added", slog.String("id", favorite.ID.String()))

	return favorite, nil
}

// ListFavorites returns all favorites ordered by name.
func (srv *favoriteService) ListFavorites(ctx context.Context) ([]*entity.FavoritePlace, error) {
	favorites, err := srv.favoriteRepo.ListFavoritePlaces(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorite places", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list favorite places")
	}

	if favorites == nil {
		favorites = []*entity.FavoritePlace{}
	}

	return favorites, nil
}

// DeleteFavorite removes a favorite and its tags in one transaction.
func (srv *favoriteService) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	srv.log(ctx).Info("Deleting favorite place", slog.String("id", id.String()))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.NewFavoritePlaceRepository().DeleteFavoritePlace(ctx, id)
		if errors.Is(err, repository.ErrFavoritePlaceNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return err
	})
	if err != nil {
		if !errors.Is(err, domainerrors.ErrFavoriteNotFound) {
			srv.log(ctx).Error("Failed to delete favorite place", slog.Any("error", err), slog.String("id", id.String()))
		}

		return errors.Wrap(err, "failed to delete favorite place")
	}

	return nil
}

// IsFavorited reports whether placeID is saved. Blank identifiers are never favorited.
func (srv *favoriteService) IsFavorited(ctx context.Context, placeID string) (bool, error) {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return false, nil
	}

	exists, err := srv.favoriteRepo.ExistsByPlaceID(ctx, placeID)
	if err != nil {
		srv.log(ctx).Error("Failed to check favorite place", slog.Any("error", err), slog.String("place_id", placeID))

		return false, errors.Wrap(err, "failed to check favorite place")
	}

	return exists, nil
}

// newFavoriteFromInput validates input and builds the record to insert.
func newFavoriteFromInput(input *usecase.AddFavoriteInput) (*entity.FavoritePlace, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("favorite place is required")
	}

	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)

	switch {
	case name == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	case address == "":
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	case !inRange(input.Latitude, -90, 90):
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude must be between -90 and 90")
	case !inRange(input.Longitude, -180, 180):
		return nil, domainerrors.ErrValidationFailed.WithDetails("longitude must be between -180 and 180")
	case input.Rating != nil && !inRange(*input.Rating, 0, 5):
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 0 and 5")
	}

	var placeID *string
	if input.PlaceID != nil {
		if trimmed := strings.TrimSpace(*input.PlaceID); trimmed != "" {
			placeID = &trimmed
		}
	}

	types := make([]string, 0, len(input.Types))
	types = append(types, input.Types...)

	return &entity.FavoritePlace{
		ID:        uuid.New(),
		Name:      name,
		Address:   address,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Types:     types,
		Rating:    input.Rating,
		PlaceID:   placeID,
		CreatedAt: time.Now().UTC(),
	}, nil
}
