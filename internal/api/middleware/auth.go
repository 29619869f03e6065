package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tarefalabs/tarefas-api/internal/api/metrics"
	"github.com/tarefalabs/tarefas-api/internal/core/auth"
	"github.com/tarefalabs/tarefas-api/internal/core/domain"
	"github.com/tarefalabs/tarefas-api/internal/core/ports"
)

// ClaimsKey is the echo context key under which Auth stores the verified
// token claims.
const ClaimsKey = "auth_claims"

// Auth validates the bearer token and injects the verified claims into the
// request context. A missing credential and a rejected one are distinct
// conditions: the former maps to 401, the latter to 403.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrNoCredentials
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrNoCredentials
			}

			claims, err := authService.Authenticate(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return err
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom extracts the claims injected by Auth. Absence means the route
// was wired without the Auth middleware, which is a programming error
// surfaced as an unauthenticated request.
func ClaimsFrom(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get(ClaimsKey).(*auth.Claims)
	if !ok || claims == nil {
		return nil, domain.ErrNoCredentials
	}
	return claims, nil
}
