package handler

import (
	"log/slog"
	"net/http"

	"nearby/internal/delivery/api/response"
	"nearby/internal/delivery/api/validator"
	domainerrors "nearby/internal/domain/errors"
	"nearby/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlaceHandlerParams holds dependencies for PlaceHandler, injected by Fx.
type PlaceHandlerParams struct {
	fx.In

	PlaceUC  usecase.PlaceUsecase
	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// PlaceHandler serves nearby search and place reviews
type PlaceHandler struct {
	placeUC  usecase.PlaceUsecase
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewPlaceHandler is the constructor for PlaceHandler
func NewPlaceHandler(params PlaceHandlerParams) *PlaceHandler {
	return &PlaceHandler{
		placeUC:  params.PlaceUC,
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// NearbySearchRequest is accepted both as query parameters and as a JSON body.
// Pointers let "required" tell a missing coordinate from a zero one.
type NearbySearchRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Radius    *float64 `json:"radius" validate:"required,min=0.1,max=50000"`
	Type      string   `json:"type" validate:"omitempty,max=100"`
}

// SearchNearbyByQuery handles GET /nearby?latitude=&longitude=&radius=&type=
func (h *PlaceHandler) SearchNearbyByQuery(c echo.Context) error {
	req, err := bindNearbyQuery(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	return h.searchNearby(c, req)
}

// SearchNearbyByBody handles POST /nearby
func (h *PlaceHandler) SearchNearbyByBody(c echo.Context) error {
	var req NearbySearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search body")
	}

	return h.searchNearby(c, &req)
}

func (h *PlaceHandler) searchNearby(c echo.Context, req *NearbySearchRequest) error {
	if err := c.Validate(req); err != nil {
		return validationError(c, err)
	}

	places, err := h.placeUC.FindNearby(c.Request().Context(), &usecase.NearbySearchInput{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		RadiusKm:  *req.Radius,
		Type:      req.Type,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPlaceResponses(places))
}

// GetReviews handles GET /places/:placeId/reviews
func (h *PlaceHandler) GetReviews(c echo.Context) error {
	reviews, err := h.reviewUC.GetReviews(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewResponses(reviews))
}

// bindNearbyQuery reads the search from query parameters. Absent coordinates stay nil.
func bindNearbyQuery(c echo.Context) (*NearbySearchRequest, error) {
	req := &NearbySearchRequest{Type: c.QueryParam("type")}
	binder := echo.QueryParamsBinder(c)

	for _, param := range []struct {
		name string
		dst  **float64
	}{
		{"latitude", &req.Latitude},
		{"longitude", &req.Longitude},
		{"radius", &req.Radius},
	} {
		if c.QueryParam(param.name) == "" {
			continue
		}
		var value float64
		binder.Float64(param.name, &value)
		*param.dst = &value
	}

	return req, binder.BindError()
}

// validationError answers 400 with the rejected fields as details.
func validationError(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c,
		domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(),
		validator.Details(err),
	)
}
