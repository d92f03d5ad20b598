package handler

import (
	"net/http"

	"nearby/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthMessage is the liveness probe payload.
const HealthMessage = "Nearby Places API is running!"

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, HealthMessage)
}
