package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/domain/repository"
	mockRepo "nearby/internal/mocks/repository"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoritePlaceRepository
	txRepo       *mockRepo.MockFavoritePlaceRepository
	txManager    *mockRepo.MockTransactionManager
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoritePlaceRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return favoriteServiceFixtures{
		service:      NewFavoriteService(favoriteRepo, txManager, logger),
		favoriteRepo: favoriteRepo,
		txRepo:       mockRepo.NewMockFavoritePlaceRepository(t),
		txManager:    txManager,
	}
}

// expectTransaction runs the transaction body against fx.txRepo and returns its result.
func (f favoriteServiceFixtures) expectTransaction(t *testing.T) {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockFactory.EXPECT().NewFavoritePlaceRepository().Return(f.txRepo)

			return fn(mockFactory)
		})
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	input := &usecase.AddFavoriteInput{
		Name:      "  Cafe X ",
		Address:   "1 St",
		Latitude:  10,
		Longitude: 20,
		Types:     []string{"cafe", "food"},
		Rating:    floatPtr(4.5),
		PlaceID:   strPtr("place-1"),
	}

	fx.txRepo.EXPECT().ExistsByPlaceID(ctx, "place-1").Return(false, nil)
	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Cafe X", "1 St").Return(nil, repository.ErrFavoritePlaceNotFound)
	fx.txRepo.EXPECT().CreateFavoritePlace(ctx, mock.AnythingOfType("*entity.FavoritePlace")).Return(nil)

	favorite, err := fx.service.AddFavorite(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, favorite.ID)
	assert.Equal(t, "Cafe X", favorite.Name)
	assert.Equal(t, "1 St", favorite.Address)
	assert.Equal(t, []string{"cafe", "food"}, favorite.Types)
	assert.Equal(t, "place-1", favorite.ExternalID())
	require.NotNil(t, favorite.Rating)
	assert.InDelta(t, 4.5, *favorite.Rating, 1e-9)
	assert.False(t, favorite.CreatedAt.IsZero())
}

func TestFavoriteService_AddFavorite_BlankPlaceIDSkipsIdentifierCheck(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	input := &usecase.AddFavoriteInput{
		Name:      "Cafe X",
		Address:   "1 St",
		Latitude:  10,
		Longitude: 20,
		PlaceID:   strPtr("   "),
	}

	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Cafe X", "1 St").Return(nil, repository.ErrFavoritePlaceNotFound)
	fx.txRepo.EXPECT().CreateFavoritePlace(ctx, mock.MatchedBy(func(f *entity.FavoritePlace) bool {
		return f.PlaceID == nil && f.Types != nil && len(f.Types) == 0
	})).Return(nil)

	favorite, err := fx.service.AddFavorite(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, favorite.PlaceID)
	assert.Empty(t, favorite.ExternalID())
}

func TestFavoriteService_AddFavorite_DuplicatePlaceID(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	fx.txRepo.EXPECT().ExistsByPlaceID(ctx, "place-1").Return(true, nil)

	favorite, err := fx.service.AddFavorite(ctx, &usecase.AddFavoriteInput{
		Name:      "Other Name",
		Address:   "Other Address",
		Latitude:  1,
		Longitude: 2,
		PlaceID:   strPtr("place-1"),
	})

	require.Error(t, err)
	assert.Nil(t, favorite)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteAlreadyExists))
}

func TestFavoriteService_AddFavorite_DuplicateNameAndAddress(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	existing := &entity.FavoritePlace{ID: uuid.New(), Name: "Cafe X", Address: "1 St", PlaceID: strPtr("place-1")}

	fx.txRepo.EXPECT().ExistsByPlaceID(ctx, "place-2").Return(false, nil)
	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Cafe X", "1 St").Return(existing, nil)

	_, err := fx.service.AddFavorite(ctx, &usecase.AddFavoriteInput{
		Name:      "Cafe X",
		Address:   "1 St",
		Latitude:  10,
		Longitude: 20,
		PlaceID:   strPtr("place-2"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.HTTPCode())
	assert.Equal(t, "Place already exists in favorites", appErr.Message())
}

func TestFavoriteService_AddFavorite_UniqueViolationOnInsert(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()

	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Cafe X", "1 St").Return(nil, repository.ErrFavoritePlaceNotFound)
	fx.txRepo.EXPECT().CreateFavoritePlace(ctx, mock.Anything).
		Return(domainerrors.ErrFavoriteAlreadyExists.WrapMessage("unique constraint violation"))

	_, err := fx.service.AddFavorite(ctx, &usecase.AddFavoriteInput{Name: "Cafe X", Address: "1 St", Latitude: 10, Longitude: 20})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteAlreadyExists))
}

func TestFavoriteService_AddFavorite_StorageFailure(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "find favorite")

	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Cafe X", "1 St").Return(nil, dbErr)

	_, err := fx.service.AddFavorite(ctx, &usecase.AddFavoriteInput{Name: "Cafe X", Address: "1 St", Latitude: 10, Longitude: 20})

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrFavoriteAlreadyExists))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestFavoriteService_AddFavorite_ValidationErrors(t *testing.T) {
	valid := func() *usecase.AddFavoriteInput {
		return &usecase.AddFavoriteInput{Name: "Cafe X", Address: "1 St", Latitude: 10, Longitude: 20}
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput
	}{
		{"nil input", func(*usecase.AddFavoriteInput) *usecase.AddFavoriteInput { return nil }},
		{"blank name", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Name = "  "; return in }},
		{"empty address", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Address = ""; return in }},
		{"latitude too high", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Latitude = 90.1; return in }},
		{"latitude too low", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Latitude = -91; return in }},
		{"longitude too high", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Longitude = 180.5; return in }},
		{"longitude too low", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Longitude = -181; return in }},
		{"rating too high", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Rating = floatPtr(5.1); return in }},
		{"negative rating", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Rating = floatPtr(-1); return in }},
		{"latitude NaN", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Latitude = math.NaN(); return in }},
		{"longitude NaN", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Longitude = math.NaN(); return in }},
		{"longitude infinite", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput { in.Longitude = math.Inf(1); return in }},
		{"rating NaN", func(in *usecase.AddFavoriteInput) *usecase.AddFavoriteInput {
			in.Rating = floatPtr(math.NaN())
			return in
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFavoriteService(t)

			_, err := fx.service.AddFavorite(context.Background(), tt.mutate(valid()))

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestFavoriteService_AddFavorite_BoundaryValuesAreAccepted(t *testing.T) {
	fx := createTestFavoriteService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	fx.txRepo.EXPECT().FindFavoritePlaceByNameAndAddress(ctx, "Pole", "North").Return(nil, repository.ErrFavoritePlaceNotFound)
	fx.txRepo.EXPECT().CreateFavoritePlace(ctx, mock.Anything).Return(nil)

	_, err := fx.service.AddFavorite(ctx, &usecase.AddFavoriteInput{
		Name:      "Pole",
		Address:   "North",
		Latitude:  90,
		Longitude: -180,
		Rating:    floatPtr(0),
	})

	require.NoError(t, err)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	favorites := []*entity.FavoritePlace{
		{ID: uuid.New(), Name: "A"},
		{ID: uuid.New(), Name: "B"},
	}
	fx.favoriteRepo.EXPECT().ListFavoritePlaces(ctx).Return(favorites, nil)

	got, err := fx.service.ListFavorites(ctx)

	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}

func TestFavoriteService_ListFavorites_EmptyIsNotNil(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	fx.favoriteRepo.EXPECT().ListFavoritePlaces(ctx).Return(nil, nil)

	got, err := fx.service.ListFavorites(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoriteService_DeleteFavorite(t *testing.T) {
	t.Run("removes existing favorite", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		fx.expectTransaction(t)

		id := uuid.New()
		fx.txRepo.EXPECT().DeleteFavoritePlace(mock.Anything, id).Return(nil)

		require.NoError(t, fx.service.DeleteFavorite(context.Background(), id))
	})

	t.Run("missing favorite is not found", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		fx.expectTransaction(t)

		id := uuid.New()
		fx.txRepo.EXPECT().DeleteFavoritePlace(mock.Anything, id).Return(repository.ErrFavoritePlaceNotFound)

		err := fx.service.DeleteFavorite(context.Background(), id)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, 404, appErr.HTTPCode())
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		fx := createTestFavoriteService(t)
		fx.expectTransaction(t)

		id := uuid.New()
		fx.txRepo.EXPECT().DeleteFavoritePlace(mock.Anything, id).Return(errors.New("disk full"))

		err := fx.service.DeleteFavorite(context.Background(), id)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))
	})
}

func TestFavoriteService_IsFavorited(t *testing.T) {
	t.Run("blank identifiers are never favorited", func(t *testing.T) {
		fx := createTestFavoriteService(t)

		for _, placeID := range []string{"", "   "} {
			ok, err := fx.service.IsFavorited(context.Background(), placeID)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		fx := createTestFavoriteService(t)

		ctx := context.Background()
		fx.favoriteRepo.EXPECT().ExistsByPlaceID(ctx, "place-1").Return(true, nil)
		fx.favoriteRepo.EXPECT().ExistsByPlaceID(ctx, "place-2").Return(false, nil)

		ok, err := fx.service.IsFavorited(ctx, "place-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = fx.service.IsFavorited(ctx, "place-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestFavoriteService(t)

		ctx := context.Background()
		fx.favoriteRepo.EXPECT().ExistsByPlaceID(ctx, "place-1").Return(false, errors.New("boom"))

		_, err := fx.service.IsFavorited(ctx, "place-1")
		require.Error(t, err)
	})
}
