package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearby/config"
	"nearby/internal/delivery/api/router"
	"nearby/internal/delivery/api/router/handler"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/infra/metrics"
	"nearby/internal/infra/persistence/postgres"
	"nearby/internal/infra/places"
	"nearby/internal/usecase/impl"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// newTestServer wires the real handlers, usecases and repositories over in-memory SQLite.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true, Path: "/metrics"}}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	collector := metrics.NewCollector()

	favoriteUC := impl.NewFavoriteService(postgres.NewFavoritePlaceRepository(db), postgres.NewTransactionManager(db), log)
	placeUC := impl.NewPlaceService(places.NewMockSource(), log)
	reviewUC := impl.NewReviewService(impl.ReviewServiceParams{Recorder: collector, Logger: log})

	return newEchoServer(ServerParams{
		Cfg:     cfg,
		Logger:  log,
		Metrics: collector,
		RouterParams: router.RouterParams{
			PlaceHandler:    handler.NewPlaceHandler(handler.PlaceHandlerParams{PlaceUC: placeUC, ReviewUC: reviewUC, Logger: log}),
			FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: log}),
			Metrics:         collector,
			Config:          cfg,
		},
	})
}

func serve(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func TestServer_FavoritesLifecycle(t *testing.T) {
	e := newTestServer(t)
	body := `{"name":"Cafe X","address":"1 St","latitude":10,"longitude":20,"placeId":"mock_place_1"}`

	rec, env := serve(t, e, http.MethodPost, "/api/favorites", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created handler.FavoritePlaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEqual(t, uuid.Nil, created.ID)

	rec, env = serve(t, e, http.MethodPost, "/api/favorites", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "FAVORITE_ALREADY_EXISTS", env.Error.Code)

	_, env = serve(t, e, http.MethodGet, "/api/favorites/check/mock_place_1", "")
	assert.JSONEq(t, `true`, string(env.Data))

	rec, _ = serve(t, e, http.MethodDelete, "/api/favorites/"+created.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	_, env = serve(t, e, http.MethodGet, "/api/favorites/check/mock_place_1", "")
	assert.JSONEq(t, `false`, string(env.Data))

	rec, env = serve(t, e, http.MethodDelete, "/api/favorites/"+created.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FAVORITE_NOT_FOUND", env.Error.Code)
}

func TestServer_DuplicateByNameAndAddressWithoutPlaceID(t *testing.T) {
	e := newTestServer(t)
	body := `{"name":"Cafe X","address":"1 St","latitude":10,"longitude":20}`

	rec, _ := serve(t, e, http.MethodPost, "/api/favorites", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = serve(t, e, http.MethodPost, "/api/favorites", body)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_FavoritesListedByName(t *testing.T) {
	e := newTestServer(t)
	serve(t, e, http.MethodPost, "/api/favorites", `{"name":"B","address":"2 St","latitude":1,"longitude":1}`)
	serve(t, e, http.MethodPost, "/api/favorites", `{"name":"A","address":"1 St","latitude":1,"longitude":1}`)

	rec, env := serve(t, e, http.MethodGet, "/api/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var favorites []handler.FavoritePlaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	require.Len(t, favorites, 2)
	assert.Equal(t, "A", favorites[0].Name)
	assert.Equal(t, "B", favorites[1].Name)
}

func TestServer_NearbyAndReviews(t *testing.T) {
	e := newTestServer(t)

	rec, env := serve(t, e, http.MethodGet, "/api/nearby?latitude=40.7128&longitude=-74.006&radius=5&type=CAFE", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var found []handler.PlaceResponse
	require.NoError(t, json.Unmarshal(env.Data, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "mock_place_1", found[0].PlaceID)

	_, env = serve(t, e, http.MethodGet, "/api/places/mock_place_1/reviews", "")
	var reviews []handler.ReviewResponse
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	assert.Len(t, reviews, 3)

	_, env = serve(t, e, http.MethodGet, "/api/places/unknown/reviews", "")
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "Anonymous User", reviews[0].AuthorName)
}

func TestServer_HealthAndRequestID(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "req-123", env.Meta.RequestID)
	assert.JSONEq(t, `"Nearby Places API is running!"`, string(env.Data))
}

func TestServer_UnknownRouteIsEnvelope(t *testing.T) {
	e := newTestServer(t)

	rec, env := serve(t, e, http.MethodGet, "/api/nope", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestServer_Metrics(t *testing.T) {
	e := newTestServer(t)
	serve(t, e, http.MethodGet, "/api/places/unknown/reviews", "")
	serve(t, e, http.MethodDelete, "/api/favorites/"+uuid.NewString(), "")

	rec, _ := serve(t, e, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `nearby_http_requests_total{method="GET",route="/api/places/:placeId/reviews",status="200"} 1`)
	assert.Contains(t, out, `nearby_http_requests_total{method="DELETE",route="/api/favorites/:id",status="404"} 1`)
	assert.Contains(t, out, `nearby_review_fallbacks_total{reason="no_credential"} 1`)
}
