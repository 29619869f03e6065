package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/tarefalabs/tarefas-api/internal/api/metrics"
	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// Require gates a route on an operation the access table resolves by role
// alone. Ownership-scoped decisions are taken by the services, which know
// the resource owner.
func Require(authService ports.AuthService, op auth.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFrom(c)
			if err != nil {
				return err
			}
			if err := authService.Authorize(claims, op, ""); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(string(op)).Inc()
				return err
			}
			return next(c)
		}
	}
}
