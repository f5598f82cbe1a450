package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/miramar/hotel-api/internal/api/metrics"
)

// Authorize gates a route on exact role equality. There is no role
// hierarchy: admin does not satisfy a user requirement and vice versa.
// An absent identity is rejected the same way as a mismatched one.
func Authorize(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != requiredRole {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
