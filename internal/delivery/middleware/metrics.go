package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// RequestObserver receives one observation per served request
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports request counts and latency labelled by route pattern
type MetricsMiddleware struct {
	observer RequestObserver
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{
		observer: observer,
	}
}

// Handle observes the request after the handler chain has run
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the status is final
			c.Error(err)
		}

		// Use the route pattern so ids in the path do not explode label cardinality
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		m.observer.ObserveHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
