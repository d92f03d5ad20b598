// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearby/config"
	"nearby/internal/delivery/api/router/handler"
	"nearby/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaceHandler    *handler.PlaceHandler
	FavoriteHandler *handler.FavoriteHandler
	Metrics         *metrics.Collector `optional:"true"`
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	placeHandler    *handler.PlaceHandler
	favoriteHandler *handler.FavoriteHandler
	metrics         *metrics.Collector
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		placeHandler:    params.PlaceHandler,
		favoriteHandler: params.FavoriteHandler,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Nearby search, as query parameters or as a JSON body
	api.GET("/nearby", r.placeHandler.SearchNearbyByQuery)
	api.POST("/nearby", r.placeHandler.SearchNearbyByBody)

	api.GET("/places/:placeId/reviews", r.placeHandler.GetReviews)

	// Favorite place routes
	favoritesGroup := api.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.POST("", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:id", r.favoriteHandler.DeleteFavorite)
		favoritesGroup.GET("/check/:placeId", r.favoriteHandler.CheckFavorite)
	}
}

// RegisterMetricsRoute exposes the Prometheus endpoint when enabled in config.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
