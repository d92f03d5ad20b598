package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/api/response"
	"nearby/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for saving a place
type AddFavoriteRequest struct {
	Name      string   `json:"name" validate:"required,notblank,max=255"`
	Address   string   `json:"address" validate:"required,notblank,max=500"`
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Types     []string `json:"types" validate:"omitempty,dive,notblank,max=100"`
	Rating    *float64 `json:"rating" validate:"omitempty,min=0,max=5"`
	PlaceID   *string  `json:"placeId" validate:"omitempty,max=255"`
}

// ListFavorites handles GET /favorites
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUC.ListFavorites(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponses(favorites))
}

// AddFavorite handles POST /favorites
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	var req AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite place input")
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), &usecase.AddFavoriteInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Types:     req.Types,
		Rating:    req.Rating,
		PlaceID:   req.PlaceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFavoriteResponse(favorite))
}

// DeleteFavorite handles DELETE /favorites/:id
func (h *FavoriteHandler) DeleteFavorite(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid favorite ID format")
	}

	if err := h.favoriteUC.DeleteFavorite(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{Message: "Favorite place deleted successfully"})
}

// CheckFavorite handles GET /favorites/check/:placeId
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	favorited, err := h.favoriteUC.IsFavorited(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorited)
}
